package playoffdomain

import (
	"fmt"
	"slices"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
)

// Degeneracy describes bracket state that needs a human look but does not
// stop the playoff from progressing.
type Degeneracy string

const (
	DegenerateNoScores     Degeneracy = "no_scores"
	DegenerateUnknownRound Degeneracy = "unknown_round"
)

// AdvanceOutcome is either the next round or the champion.
type AdvanceOutcome struct {
	NextRound  *playofftypes.PlayoffRound
	Champion   *playofftypes.MatchupSide
	Matchups   []playofftypes.Matchup
	Degenerate []Degeneracy
}

// IsDegenerate reports whether any degeneracy was flagged.
func (o AdvanceOutcome) IsDegenerate() bool { return len(o.Degenerate) > 0 }

// Matchups resolves every (away, home) pair in round against the live
// leaderboard. It panics on an odd game count or a seed missing from seeds.
func Matchups(lb competitiontypes.Leaderboard, seeds []playofftypes.BracketSeed, round playofftypes.PlayoffRound) []playofftypes.Matchup {
	if len(round.Games)%2 != 0 {
		panic(fmt.Sprintf("playoff: round %q has an odd number of games (%d)", round.RoundName, len(round.Games)))
	}

	bySeed := make(map[int]string, len(seeds))
	for _, s := range seeds {
		bySeed[s.Seed] = s.Username
	}

	matchups := make([]playofftypes.Matchup, 0, len(round.Games)/2)
	for i := 0; i < len(round.Games); i += 2 {
		matchups = append(matchups, playofftypes.Matchup{
			Away: resolveSide(lb, bySeed, round.Games[i]),
			Home: resolveSide(lb, bySeed, round.Games[i+1]),
		})
	}
	return matchups
}

func resolveSide(lb competitiontypes.Leaderboard, bySeed map[int]string, seed int) playofftypes.MatchupSide {
	username, ok := bySeed[seed]
	if !ok {
		panic(fmt.Sprintf("playoff: seed %d is not in the bracket", seed))
	}
	side := playofftypes.MatchupSide{Seed: seed, Username: username}
	if entry, found := lb.Lookup(username); found {
		score := entry.Score
		side.Score = &score
	}
	return side
}

// Winner returns the side that advances. A missing score counts as zero and
// home wins ties.
func Winner(m playofftypes.Matchup) playofftypes.MatchupSide {
	if scoreOf(m.Home) >= scoreOf(m.Away) {
		return m.Home
	}
	return m.Away
}

func scoreOf(side playofftypes.MatchupSide) int64 {
	if side.Score == nil {
		return 0
	}
	return *side.Score
}

// WinningSeeds collects the winner of each matchup in order.
func WinningSeeds(matchups []playofftypes.Matchup) []int {
	winners := make([]int, 0, len(matchups))
	for _, m := range matchups {
		winners = append(winners, Winner(m).Seed)
	}
	return winners
}

// IsComplete reports whether round is the championship game.
func IsComplete(round playofftypes.PlayoffRound) bool {
	return len(round.Games) == 2
}

// Champion returns the winner of a championship round.
func Champion(lb competitiontypes.Leaderboard, seeds []playofftypes.BracketSeed, final playofftypes.PlayoffRound) (playofftypes.MatchupSide, bool) {
	if !IsComplete(final) {
		return playofftypes.MatchupSide{}, false
	}
	return Winner(Matchups(lb, seeds, final)[0]), true
}

// Advance resolves the current round against the week's leaderboard.
func Advance(lb competitiontypes.Leaderboard, seeds []playofftypes.BracketSeed, current playofftypes.PlayoffRound) AdvanceOutcome {
	matchups := Matchups(lb, seeds, current)
	outcome := AdvanceOutcome{Matchups: matchups}

	for _, m := range matchups {
		if m.Home.Score == nil && m.Away.Score == nil {
			outcome.Degenerate = append(outcome.Degenerate, DegenerateNoScores)
			break
		}
	}

	if current.RoundName == UnknownRound {
		outcome.Degenerate = append(outcome.Degenerate, DegenerateUnknownRound)
	}

	if IsComplete(current) {
		champ := Winner(matchups[0])
		outcome.Champion = &champ
		return outcome
	}

	winners := WinningSeeds(matchups)
	next := playofftypes.PlayoffRound{RoundName: RoundName(len(winners)), Games: winners}
	if next.RoundName == UnknownRound && !slices.Contains(outcome.Degenerate, DegenerateUnknownRound) {
		outcome.Degenerate = append(outcome.Degenerate, DegenerateUnknownRound)
	}
	outcome.NextRound = &next
	return outcome
}
