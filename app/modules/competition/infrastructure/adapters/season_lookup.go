package adapters

import (
	"context"
	"errors"

	seasonservice "github.com/Black-And-White-Club/pinball-bot/app/modules/season/application"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
)

// SeasonLookupAdapter adapts the season service to the competition service's SeasonLookup port.
type SeasonLookupAdapter struct {
	seasonService seasonservice.Service
}

func NewSeasonLookupAdapter(seasonService seasonservice.Service) *SeasonLookupAdapter {
	return &SeasonLookupAdapter{seasonService: seasonService}
}

// GetCurrentSeason returns nil, nil when the channel has no open season.
func (a *SeasonLookupAdapter) GetCurrentSeason(ctx context.Context, channel string) (*seasontypes.Season, error) {
	result, err := a.seasonService.GetCurrentSeason(ctx, channel)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		if errors.Is(*result.Failure, seasonservice.ErrNoActiveSeason) {
			return nil, nil
		}
		return nil, *result.Failure
	}
	return *result.Success, nil
}
