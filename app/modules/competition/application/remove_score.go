package competitionservice

import (
	"context"
	"errors"
	"fmt"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	"github.com/uptrace/bun"
)

// RemoveScore takes the entry at a 1-based rank off the open week and
// withdraws it from the table's high scores.
func (s *CompetitionService) RemoveScore(ctx context.Context, channel string, rank int) (RemoveScoreResult, error) {
	removeTx := func(ctx context.Context, db bun.IDB) (RemoveScoreResult, error) {
		row, err := s.repo.GetActiveWeekForUpdate(ctx, db, channel)
		if err != nil {
			if errors.Is(err, competitiondb.ErrNotFound) {
				return results.FailureResult[*ScoreRemoved, error](ErrNoActiveWeek), nil
			}
			return RemoveScoreResult{}, fmt.Errorf("failed to load active week: %w", err)
		}

		remaining, removed, err := competitiondomain.RemoveAtRank(row.Scores, rank)
		if err != nil {
			return results.FailureResult[*ScoreRemoved, error](err), nil
		}

		if err := s.repo.UpdateScores(ctx, db, row.ID, remaining); err != nil {
			return RemoveScoreResult{}, fmt.Errorf("failed to save leaderboard: %w", err)
		}

		week := row.ToType()
		week.Scores = remaining
		return results.SuccessResult[*ScoreRemoved, error](&ScoreRemoved{Week: week, Removed: removed}), nil
	}

	result, err := withTelemetry(s, ctx, "RemoveScore", channel, func(ctx context.Context) (RemoveScoreResult, error) {
		return runInTx(s, ctx, removeTx)
	})
	if err != nil || !result.IsSuccess() {
		return result, err
	}

	removed := *result.Success
	if removed.Week.VPSID != "" {
		s.enqueue(ctx, queue.RemoveHighScoreJob{
			VPSID:    removed.Week.VPSID,
			Username: removed.Removed.Username,
			Score:    removed.Removed.Score,
		})
	}
	return result, nil
}
