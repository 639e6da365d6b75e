package playoffservice

import (
	"context"

	playoffdomain "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/domain"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
)

// PlayoffCreated is a new bracket with its opening round.
type PlayoffCreated struct {
	Playoff *playofftypes.Playoff
	Round   playofftypes.PlayoffRound
}

// PlayoffResult is the outcome of CreatePlayoff.
type PlayoffResult = results.OperationResult[*PlayoffCreated, error]

// RoundCreated is a manually created round.
type RoundCreated struct {
	Playoff     *playofftypes.Playoff
	Round       playofftypes.PlayoffRound
	RoundNumber int
}

// RoundResult is the outcome of CreatePlayoffRound.
type RoundResult = results.OperationResult[*RoundCreated, error]

// CurrentMatchups is the open round resolved against the open week.
type CurrentMatchups struct {
	Playoff    *playofftypes.Playoff     `json:"playoff"`
	Round      playofftypes.PlayoffRound `json:"round"`
	WeekNumber int                       `json:"weekNumber"`
	Matchups   []playofftypes.Matchup    `json:"matchups"`
}

// MatchupsResult is the outcome of GetCurrentMatchups.
type MatchupsResult = results.OperationResult[*CurrentMatchups, error]

// RoundAdvance describes what closing a week did to the bracket. Skipped is
// set when there was nothing to advance.
type RoundAdvance struct {
	Skipped      bool
	Playoff      *playofftypes.Playoff
	WeekNumber   int
	Closed       playofftypes.PlayoffRound
	Results      []playofftypes.Matchup
	NextRound    *playofftypes.PlayoffRound
	NextMatchups []playofftypes.Matchup
	Champion     *playofftypes.MatchupSide
	Degenerate   []playoffdomain.Degeneracy
}

// AdvanceResult is the outcome of AdvanceRound.
type AdvanceResult = results.OperationResult[*RoundAdvance, error]

// CreatePlayoffRequest seeds a bracket. Seeds are usernames in seed order.
type CreatePlayoffRequest struct {
	ChannelName  string
	SeasonNumber int
	Seeds        []string
}

// Service defines the playoff operations.
type Service interface {
	CreatePlayoff(ctx context.Context, req CreatePlayoffRequest) (PlayoffResult, error)
	CreatePlayoffRound(ctx context.Context, channel string, games []int) (RoundResult, error)
	GetCurrentMatchups(ctx context.Context, channel string) (MatchupsResult, error)
	AdvanceRound(ctx context.Context, channel string, weekNumber int, lb competitiontypes.Leaderboard) (AdvanceResult, error)
}
