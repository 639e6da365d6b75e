package playoffservice

import (
	"context"

	playoffdomain "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/domain"
	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// CreatePlayoffRound replaces the open round with a hand-built one.
func (s *PlayoffService) CreatePlayoffRound(ctx context.Context, channel string, games []int) (RoundResult, error) {
	createRoundTx := func(ctx context.Context, db bun.IDB) (RoundResult, error) {
		fail := func(err error) (RoundResult, error) {
			return results.FailureResult[*RoundCreated, error](err), nil
		}

		if channel == "" {
			return fail(ErrChannelRequired)
		}
		playoff, err := s.loadActivePlayoff(ctx, db, channel, true)
		if err != nil {
			if isBusinessError(err) {
				return fail(err)
			}
			return RoundResult{}, err
		}
		if err := validateGames(playoff.Seeds, games); err != nil {
			return fail(err)
		}

		number := 1
		current, err := s.loadActiveRound(ctx, db, channel, true)
		switch {
		case err == nil:
			number = current.RoundNumber + 1
		case !isBusinessError(err):
			return RoundResult{}, err
		}

		if err := s.repo.ArchiveActiveRound(ctx, db, channel); err != nil {
			return RoundResult{}, err
		}
		round := &playoffdb.Round{
			PlayoffID:   playoff.ID,
			ChannelName: channel,
			RoundNumber: number,
			RoundName:   playoffdomain.RoundName(len(games)),
			Games:       append([]int(nil), games...),
		}
		if err := s.repo.InsertRound(ctx, db, round); err != nil {
			return RoundResult{}, err
		}

		return results.SuccessResult[*RoundCreated, error](&RoundCreated{
			Playoff:     playoff.ToType(),
			Round:       round.ToType(),
			RoundNumber: number,
		}), nil
	}

	return withTelemetry(s, ctx, "CreatePlayoffRound", channel, func(ctx context.Context) (RoundResult, error) {
		return runInTx(s, ctx, createRoundTx)
	})
}

// GetCurrentMatchups resolves the open round against the open week. Without
// an open week every side is unscored.
func (s *PlayoffService) GetCurrentMatchups(ctx context.Context, channel string) (MatchupsResult, error) {
	return withTelemetry(s, ctx, "GetCurrentMatchups", channel, func(ctx context.Context) (MatchupsResult, error) {
		fail := func(err error) (MatchupsResult, error) {
			return results.FailureResult[*CurrentMatchups, error](err), nil
		}

		playoff, err := s.loadActivePlayoff(ctx, nil, channel, false)
		if err != nil {
			if isBusinessError(err) {
				return fail(err)
			}
			return MatchupsResult{}, err
		}
		round, err := s.loadActiveRound(ctx, nil, channel, false)
		if err != nil {
			if isBusinessError(err) {
				return fail(err)
			}
			return MatchupsResult{}, err
		}

		lb := competitiontypes.Leaderboard{}
		weekNumber := 0
		if s.weeks != nil {
			week, err := s.weeks.GetCurrentWeek(ctx, channel)
			if err != nil {
				return MatchupsResult{}, err
			}
			if week != nil {
				lb = week.Scores
				weekNumber = week.WeekNumber
			}
		}

		if err := validateGames(playoff.Seeds, round.Games); err != nil {
			return fail(err)
		}
		current := round.ToType()
		return results.SuccessResult[*CurrentMatchups, error](&CurrentMatchups{
			Playoff:    playoff.ToType(),
			Round:      current,
			WeekNumber: weekNumber,
			Matchups:   playoffdomain.Matchups(lb, playoff.Seeds, current),
		}), nil
	})
}
