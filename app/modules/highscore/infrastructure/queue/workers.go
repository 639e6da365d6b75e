// Package highscorequeue holds the River workers owned by the high score
// module.
package highscorequeue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	highscoreservice "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/application"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	highscoreevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/highscore"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/riverqueue/river"
)

func publish(publisher message.Publisher, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", topic, err)
	}
	if err := publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), body)); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}

// EnsureTableWorker registers the table of a newly created week.
type EnsureTableWorker struct {
	river.WorkerDefaults[queue.EnsureHighScoreTableJob]

	service   highscoreservice.Service
	publisher message.Publisher
	logger    *slog.Logger
}

func NewEnsureTableWorker(service highscoreservice.Service, publisher message.Publisher, logger *slog.Logger) *EnsureTableWorker {
	return &EnsureTableWorker{service: service, publisher: publisher, logger: logger}
}

// Work is safe to repeat: a second run finds the version already registered.
func (w *EnsureTableWorker) Work(ctx context.Context, job *river.Job[queue.EnsureHighScoreTableJob]) error {
	result, err := w.service.EnsureTable(ctx, job.Args.Table)
	if err != nil {
		return err
	}
	if result.IsFailure() {
		w.logger.WarnContext(ctx, "High score table not registered",
			attr.String("vps_id", job.Args.Table.VPSID),
			attr.Error(*result.Failure),
		)
		return nil
	}

	ensured := *result.Success
	return publish(w.publisher, highscoreevents.TableEnsuredV1, &highscoreevents.TableEnsuredPayloadV1{
		Table:   ensured.Table,
		Outcome: string(ensured.Outcome),
	})
}

// CrossPostWorker copies a weekly score to the table's high scores.
type CrossPostWorker struct {
	river.WorkerDefaults[queue.CrossPostHighScoreJob]

	service   highscoreservice.Service
	publisher message.Publisher
	logger    *slog.Logger
}

func NewCrossPostWorker(service highscoreservice.Service, publisher message.Publisher, logger *slog.Logger) *CrossPostWorker {
	return &CrossPostWorker{service: service, publisher: publisher, logger: logger}
}

func (w *CrossPostWorker) Work(ctx context.Context, job *river.Job[queue.CrossPostHighScoreJob]) error {
	args := job.Args
	result, err := w.service.CrossPostWeeklyScore(ctx, highscoreservice.CrossPostRequest{
		Table:     args.Table,
		UserID:    args.UserID,
		Username:  args.Username,
		Score:     args.Score,
		Mode:      args.Mode,
		PostURL:   args.PostURL,
		Subscript: args.Subscript,
		DoPost:    args.DoPost,
	})
	if err != nil {
		return err
	}
	if result.IsFailure() {
		w.logger.WarnContext(ctx, "Weekly score not cross-posted",
			attr.String("vps_id", args.Table.VPSID),
			attr.String("username", args.Username),
			attr.Error(*result.Failure),
		)
		return nil
	}

	crossPosted := *result.Success
	if crossPosted.Duplicate || !crossPosted.Announce {
		return nil
	}

	// The score is stored, so a retry would find a duplicate and publish
	// nothing. Publish failures are logged rather than returned.
	posted := crossPosted.Posted
	if err := publish(w.publisher, highscoreevents.PostedV1, &highscoreevents.PostedPayloadV1{
		Table:     posted.Table,
		Score:     posted.Score,
		TopScores: posted.TopScores,
		Subscript: crossPosted.Subscript,
		Announce:  true,
		NewTop:    posted.NewTop,
	}); err != nil {
		w.logger.ErrorContext(ctx, "Failed to announce cross-posted score",
			attr.String("vps_id", args.Table.VPSID),
			attr.Error(err),
		)
	}
	return nil
}

// RemoveWorker deletes a score that was taken off a weekly leaderboard.
type RemoveWorker struct {
	river.WorkerDefaults[queue.RemoveHighScoreJob]

	service   highscoreservice.Service
	publisher message.Publisher
	logger    *slog.Logger
}

func NewRemoveWorker(service highscoreservice.Service, publisher message.Publisher, logger *slog.Logger) *RemoveWorker {
	return &RemoveWorker{service: service, publisher: publisher, logger: logger}
}

func (w *RemoveWorker) Work(ctx context.Context, job *river.Job[queue.RemoveHighScoreJob]) error {
	args := job.Args
	result, err := w.service.RemoveHighScore(ctx, args.VPSID, args.Username, args.Score)
	if err != nil {
		return err
	}
	if result.IsFailure() {
		if errors.Is(*result.Failure, highscoreservice.ErrScoreNotFound) {
			w.logger.InfoContext(ctx, "No high score to remove",
				attr.String("vps_id", args.VPSID),
				attr.String("username", args.Username),
			)
			return nil
		}
		w.logger.WarnContext(ctx, "High score not removed",
			attr.String("vps_id", args.VPSID),
			attr.Error(*result.Failure),
		)
		return nil
	}

	removed := *result.Success
	if err := publish(w.publisher, highscoreevents.RemovedV1, &highscoreevents.RemovedPayloadV1{
		VPSID:    removed.VPSID,
		Username: removed.Username,
		Score:    removed.Score,
		Removed:  removed.Removed,
	}); err != nil {
		w.logger.ErrorContext(ctx, "Failed to announce high score removal",
			attr.String("vps_id", args.VPSID),
			attr.Error(err),
		)
	}
	return nil
}
