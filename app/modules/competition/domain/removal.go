package competitiondomain

import (
	"errors"
	"fmt"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// ErrInvalidRank is returned when a rank falls outside the leaderboard.
var ErrInvalidRank = errors.New("invalid rank")

// RemoveAtRank removes the entry at the 1-based rank and reassigns points to
// the remaining entries. The input is not modified.
func RemoveAtRank(lb competitiontypes.Leaderboard, rank int) (competitiontypes.Leaderboard, competitiontypes.ScoreEntry, error) {
	if rank < 1 || rank > len(lb) {
		return nil, competitiontypes.ScoreEntry{}, fmt.Errorf("%w: valid range is 1-%d", ErrInvalidRank, len(lb))
	}

	removed := lb[rank-1]
	out := make(competitiontypes.Leaderboard, 0, len(lb)-1)
	out = append(out, lb[:rank-1]...)
	out = append(out, lb[rank:]...)
	AssignPoints(out)
	return out, removed, nil
}
