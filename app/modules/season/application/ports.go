package seasonservice

import (
	"context"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// WeekLookup reads the leaderboards of archived weeks whose period lies
// within [from, to], oldest first.
type WeekLookup interface {
	ListArchivedLeaderboards(ctx context.Context, channel, from, to string) ([]competitiontypes.Leaderboard, error)
}
