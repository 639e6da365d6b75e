// Package competitionqueue holds the River workers owned by the competition
// module.
package competitionqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	competitionevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/competition"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/riverqueue/river"
)

// BraggingRightsWorker announces the winner of a week that was just closed.
type BraggingRightsWorker struct {
	river.WorkerDefaults[queue.BraggingRightsJob]

	publisher         message.Publisher
	announceChannelID string
	logger            *slog.Logger
}

// NewBraggingRightsWorker creates the worker. announceChannelID may be empty,
// in which case the gateway posts to the competition channel itself.
func NewBraggingRightsWorker(publisher message.Publisher, announceChannelID string, logger *slog.Logger) *BraggingRightsWorker {
	return &BraggingRightsWorker{
		publisher:         publisher,
		announceChannelID: announceChannelID,
		logger:            logger,
	}
}

// Work publishes the announcement.
func (w *BraggingRightsWorker) Work(ctx context.Context, job *river.Job[queue.BraggingRightsJob]) error {
	args := job.Args
	if args.Winner.Username == "" {
		w.logger.WarnContext(ctx, "Skipping bragging rights without a winner",
			attr.Channel(args.ChannelName),
			attr.Int("week_number", args.WeekNumber),
		)
		return nil
	}

	body, err := json.Marshal(&competitionevents.BraggingRightsPayloadV1{
		ChannelName:       args.ChannelName,
		AnnounceChannelID: w.announceChannelID,
		WeekNumber:        args.WeekNumber,
		Table:             args.Table,
		Winner:            args.Winner,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal bragging rights: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	if err := w.publisher.Publish(competitionevents.BraggingRightsV1, msg); err != nil {
		return fmt.Errorf("failed to publish bragging rights: %w", err)
	}

	w.logger.InfoContext(ctx, "Bragging rights announced",
		attr.Channel(args.ChannelName),
		attr.Int("week_number", args.WeekNumber),
		attr.String("winner", args.Winner.Username),
		attr.Int64("job_id", job.ID),
	)
	return nil
}
