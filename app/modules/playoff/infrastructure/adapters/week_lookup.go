package adapters

import (
	"context"
	"errors"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// WeekLookupAdapter adapts the competition service to the playoff service's WeekLookup port.
type WeekLookupAdapter struct {
	competitionService competitionservice.Service
}

func NewWeekLookupAdapter(competitionService competitionservice.Service) *WeekLookupAdapter {
	return &WeekLookupAdapter{competitionService: competitionService}
}

// GetCurrentWeek returns nil, nil when the channel has no open week.
func (a *WeekLookupAdapter) GetCurrentWeek(ctx context.Context, channel string) (*competitiontypes.Week, error) {
	result, err := a.competitionService.GetCurrentWeek(ctx, channel)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		if errors.Is(*result.Failure, competitionservice.ErrNoActiveWeek) {
			return nil, nil
		}
		return nil, *result.Failure
	}
	return *result.Success, nil
}
