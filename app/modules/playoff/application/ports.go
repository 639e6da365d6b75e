package playoffservice

import (
	"context"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// WeekLookup reads the channel's open week. A nil week with a nil error
// means there is none.
type WeekLookup interface {
	GetCurrentWeek(ctx context.Context, channel string) (*competitiontypes.Week, error)
}
