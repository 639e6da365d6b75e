package competitionservice

import (
	"context"

	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
)

// SeasonLookup finds the channel's open season. A nil season with a nil
// error means there is none.
type SeasonLookup interface {
	GetCurrentSeason(ctx context.Context, channel string) (*seasontypes.Season, error)
}
