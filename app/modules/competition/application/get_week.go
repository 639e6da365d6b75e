package competitionservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// GetCurrentWeek returns the channel's open week.
func (s *CompetitionService) GetCurrentWeek(ctx context.Context, channel string) (WeekResult, error) {
	getWeekTx := func(ctx context.Context, db bun.IDB) (WeekResult, error) {
		week, err := s.loadActiveWeek(ctx, db, channel)
		if err != nil {
			if errors.Is(err, ErrNoActiveWeek) {
				return results.FailureResult[*competitiontypes.Week, error](err), nil
			}
			return WeekResult{}, err
		}
		return results.SuccessResult[*competitiontypes.Week, error](week), nil
	}

	return withTelemetry(s, ctx, "GetCurrentWeek", channel, func(ctx context.Context) (WeekResult, error) {
		return runInTx(s, ctx, getWeekTx)
	})
}

// GetUserScore returns a player's entry on the open week. An exact username
// match wins over a case-insensitive one.
func (s *CompetitionService) GetUserScore(ctx context.Context, channel, username string) (UserScoreResult, error) {
	getUserScoreTx := func(ctx context.Context, db bun.IDB) (UserScoreResult, error) {
		week, err := s.loadActiveWeek(ctx, db, channel)
		if err != nil {
			if errors.Is(err, ErrNoActiveWeek) {
				return results.FailureResult[*UserScore, error](err), nil
			}
			return UserScoreResult{}, err
		}

		idx := week.Scores.IndexOf(username)
		if idx < 0 {
			for i := range week.Scores {
				if strings.EqualFold(week.Scores[i].Username, username) {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			return results.FailureResult[*UserScore, error](ErrUserNotFound), nil
		}

		return results.SuccessResult[*UserScore, error](&UserScore{
			Entry:    week.Scores[idx],
			Rank:     idx + 1,
			RankText: competitiondomain.RankText(idx+1, len(week.Scores)),
		}), nil
	}

	return withTelemetry(s, ctx, "GetUserScore", channel, func(ctx context.Context) (UserScoreResult, error) {
		return runInTx(s, ctx, getUserScoreTx)
	})
}

// RunRaffle draws a random participant of the open week.
func (s *CompetitionService) RunRaffle(ctx context.Context, channel string) (RaffleResult, error) {
	raffleTx := func(ctx context.Context, db bun.IDB) (RaffleResult, error) {
		week, err := s.loadActiveWeek(ctx, db, channel)
		if err != nil {
			if errors.Is(err, ErrNoActiveWeek) {
				return results.FailureResult[*RaffleDraw, error](err), nil
			}
			return RaffleResult{}, err
		}

		winner, err := competitiondomain.DrawRaffle(week.Scores, s.rng)
		if err != nil {
			return results.FailureResult[*RaffleDraw, error](err), nil
		}
		return results.SuccessResult[*RaffleDraw, error](&RaffleDraw{
			Week:         week,
			Winner:       winner,
			Participants: len(week.Scores),
		}), nil
	}

	return withTelemetry(s, ctx, "RunRaffle", channel, func(ctx context.Context) (RaffleResult, error) {
		return runInTx(s, ctx, raffleTx)
	})
}

func (s *CompetitionService) loadActiveWeek(ctx context.Context, db bun.IDB, channel string) (*competitiontypes.Week, error) {
	row, err := s.repo.GetActiveWeek(ctx, db, channel)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			return nil, ErrNoActiveWeek
		}
		return nil, fmt.Errorf("failed to load active week: %w", err)
	}
	return row.ToType(), nil
}
