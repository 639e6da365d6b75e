package playoffservice

import (
	"context"
	"fmt"

	playoffdomain "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/domain"
	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// AdvanceRound closes the open round with the leaderboard of the week that
// just ended. A championship round crowns the winner and archives the
// playoff; any other round is replaced by the round of its winners.
//
// A week only ever advances a playoff once, so a retried job is a no-op.
func (s *PlayoffService) AdvanceRound(ctx context.Context, channel string, weekNumber int, lb competitiontypes.Leaderboard) (AdvanceResult, error) {
	advanceTx := func(ctx context.Context, db bun.IDB) (AdvanceResult, error) {
		skipped := func(reason string) (AdvanceResult, error) {
			s.logger.InfoContext(ctx, "Playoff advance skipped",
				attr.ExtractCorrelationID(ctx),
				attr.Channel(channel),
				attr.Int("week_number", weekNumber),
				attr.String("reason", reason),
			)
			return results.SuccessResult[*RoundAdvance, error](&RoundAdvance{Skipped: true, WeekNumber: weekNumber}), nil
		}

		playoff, err := s.loadActivePlayoff(ctx, db, channel, true)
		if err != nil {
			if isBusinessError(err) {
				return skipped("no active playoff")
			}
			return AdvanceResult{}, err
		}
		round, err := s.loadActiveRound(ctx, db, channel, true)
		if err != nil {
			if isBusinessError(err) {
				return skipped("no active round")
			}
			return AdvanceResult{}, err
		}

		rounds, err := s.repo.ListRounds(ctx, db, playoff.ID)
		if err != nil {
			return AdvanceResult{}, err
		}
		for _, r := range rounds {
			if r.WeekNumber != nil && *r.WeekNumber == weekNumber {
				return skipped("week already advanced this playoff")
			}
		}

		if err := validateGames(playoff.Seeds, round.Games); err != nil {
			return results.FailureResult[*RoundAdvance, error](err), nil
		}

		current := round.ToType()
		outcome := playoffdomain.Advance(lb, playoff.Seeds, current)

		if err := s.repo.CloseRound(ctx, db, round.ID, weekNumber, outcome.Matchups); err != nil {
			return AdvanceResult{}, err
		}

		advance := &RoundAdvance{
			WeekNumber: weekNumber,
			Closed:     current,
			Results:    outcome.Matchups,
			Degenerate: outcome.Degenerate,
		}

		if outcome.Champion != nil {
			if err := s.repo.SetChampion(ctx, db, playoff.ID, *outcome.Champion); err != nil {
				return AdvanceResult{}, fmt.Errorf("failed to record champion: %w", err)
			}
			playoff.Champion = outcome.Champion
			playoff.IsArchived = true
			advance.Champion = outcome.Champion
			advance.Playoff = playoff.ToType()
			return results.SuccessResult[*RoundAdvance, error](advance), nil
		}

		next := &playoffdb.Round{
			PlayoffID:   playoff.ID,
			ChannelName: channel,
			RoundNumber: round.RoundNumber + 1,
			RoundName:   outcome.NextRound.RoundName,
			Games:       outcome.NextRound.Games,
		}
		if err := s.repo.InsertRound(ctx, db, next); err != nil {
			return AdvanceResult{}, err
		}

		nextRound := next.ToType()
		advance.Playoff = playoff.ToType()
		advance.NextRound = &nextRound
		advance.NextMatchups = playoffdomain.Matchups(competitiontypes.Leaderboard{}, playoff.Seeds, nextRound)
		return results.SuccessResult[*RoundAdvance, error](advance), nil
	}

	return withTelemetry(s, ctx, "AdvanceRound", channel, func(ctx context.Context) (AdvanceResult, error) {
		return runInTx(s, ctx, advanceTx)
	})
}
