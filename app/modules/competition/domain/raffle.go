package competitiondomain

import (
	"errors"
	"math/rand/v2"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// ErrNoEntries is returned when a raffle is drawn over an empty leaderboard.
var ErrNoEntries = errors.New("no entries to draw from")

// DrawRaffle picks one entry uniformly at random.
func DrawRaffle(lb competitiontypes.Leaderboard, rng *rand.Rand) (competitiontypes.ScoreEntry, error) {
	if len(lb) == 0 {
		return competitiontypes.ScoreEntry{}, ErrNoEntries
	}
	if rng == nil {
		return lb[rand.IntN(len(lb))], nil
	}
	return lb[rng.IntN(len(lb))], nil
}
