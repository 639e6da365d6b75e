// Package playoffdomain generates single-elimination brackets and advances
// their rounds from weekly scores.
package playoffdomain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedBracketSize is returned for entrant counts other than 8 or 16.
var ErrUnsupportedBracketSize = errors.New("playoffs support exactly 8 or 16 entrants")

const (
	FirstRound        = "1st Round"
	SecondRound       = "2nd Round"
	SemifinalRound    = "Semifinal Round"
	ChampionshipRound = "Championship Round"
	UnknownRound      = "Unknown Round"
)

var (
	bracket8  = []int{1, 8, 4, 5, 3, 6, 2, 7}
	bracket16 = []int{1, 16, 8, 9, 5, 12, 4, 13, 3, 14, 6, 11, 7, 10, 2, 15}
)

// GenerateBracket returns the opening seed order for n entrants, read in
// (away, home) pairs.
func GenerateBracket(n int) ([]int, error) {
	switch n {
	case 8:
		return append([]int(nil), bracket8...), nil
	case 16:
		return append([]int(nil), bracket16...), nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBracketSize, n)
	}
}

// RoundName names a round by how many seeds are still playing.
func RoundName(remaining int) string {
	switch remaining {
	case 16:
		return FirstRound
	case 8:
		return SecondRound
	case 4:
		return SemifinalRound
	case 2:
		return ChampionshipRound
	default:
		return UnknownRound
	}
}
