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

// PostScore validates a submission and applies it to the channel's open week.
func (s *CompetitionService) PostScore(ctx context.Context, req PostScoreRequest) (ScoreResult, error) {
	postScoreTx := func(ctx context.Context, db bun.IDB) (ScoreResult, error) {
		return s.applyScore(ctx, db, req.ChannelName, req.User, req.RawScore)
	}

	result, err := withTelemetry(s, ctx, "PostScore", req.ChannelName, func(ctx context.Context) (ScoreResult, error) {
		return runInTx(s, ctx, postScoreTx)
	})
	if err != nil || !result.IsSuccess() {
		return result, err
	}

	posted := *result.Success
	if posted.Week.VPSID != "" {
		s.enqueue(ctx, crossPostJob(posted, req, s.cfg.HighScoreRankCutoff))
	}
	return result, nil
}

// ManualEditUserID identifies scores entered by an admin on a player's behalf.
const ManualEditUserID = "manual-edit"

// EditScore sets a player's score on the open week on their behalf.
func (s *CompetitionService) EditScore(ctx context.Context, channel, username, rawScore string) (ScoreResult, error) {
	editScoreTx := func(ctx context.Context, db bun.IDB) (ScoreResult, error) {
		if strings.TrimSpace(username) == "" {
			return results.FailureResult[*ScorePosted, error](ErrUserNotFound), nil
		}
		return s.applyScore(ctx, db, channel, competitiontypes.Identity{UserID: ManualEditUserID, Username: username}, rawScore)
	}

	return withTelemetry(s, ctx, "EditScore", channel, func(ctx context.Context) (ScoreResult, error) {
		return runInTx(s, ctx, editScoreTx)
	})
}

// applyScore runs the read-process-write cycle under a row lock on the week.
func (s *CompetitionService) applyScore(ctx context.Context, db bun.IDB, channel string, identity competitiontypes.Identity, rawScore string) (ScoreResult, error) {
	if channel == "" {
		return results.FailureResult[*ScorePosted, error](ErrChannelRequired), nil
	}

	score, err := competitiondomain.ValidateScore(rawScore)
	if err != nil {
		return results.FailureResult[*ScorePosted, error](err), nil
	}

	row, err := s.repo.GetActiveWeekForUpdate(ctx, db, channel)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			return results.FailureResult[*ScorePosted, error](ErrNoActiveWeek), nil
		}
		return ScoreResult{}, fmt.Errorf("failed to load active week: %w", err)
	}

	week := row.ToType()
	outcome := competitiondomain.ProcessScore(identity, score, week, s.now())

	if err := s.repo.UpdateScores(ctx, db, row.ID, outcome.Leaderboard); err != nil {
		return ScoreResult{}, fmt.Errorf("failed to save leaderboard: %w", err)
	}

	week.Scores = outcome.Leaderboard
	return results.SuccessResult[*ScorePosted, error](&ScorePosted{Week: week, ScoreResult: outcome}), nil
}
