// Package playoffqueue holds the River workers owned by the playoff module.
package playoffqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	playoffservice "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/application"
	playoffdomain "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/domain"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	playoffevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/playoff"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/riverqueue/river"
)

// AdvanceRoundWorker moves a channel's playoff forward when a week closes.
type AdvanceRoundWorker struct {
	river.WorkerDefaults[queue.AdvancePlayoffRoundJob]

	service   playoffservice.Service
	publisher message.Publisher
	logger    *slog.Logger
}

func NewAdvanceRoundWorker(service playoffservice.Service, publisher message.Publisher, logger *slog.Logger) *AdvanceRoundWorker {
	return &AdvanceRoundWorker{
		service:   service,
		publisher: publisher,
		logger:    logger,
	}
}

// Work advances the round and publishes the outcome. Infrastructure errors
// are returned so River retries the job.
func (w *AdvanceRoundWorker) Work(ctx context.Context, job *river.Job[queue.AdvancePlayoffRoundJob]) error {
	args := job.Args
	result, err := w.service.AdvanceRound(ctx, args.ChannelName, args.WeekNumber, args.Leaderboard)
	if err != nil {
		return err
	}
	if result.IsFailure() {
		w.logger.WarnContext(ctx, "Playoff round could not be advanced",
			attr.Channel(args.ChannelName),
			attr.Int("week_number", args.WeekNumber),
			attr.Error(*result.Failure),
		)
		return nil
	}

	advance := *result.Success
	if advance.Skipped {
		return nil
	}

	// The round has already advanced, so a retry would find nothing to
	// publish. Publish failures are logged rather than returned.
	for _, out := range outcomeMessages(args.ChannelName, advance) {
		if err := w.publish(out.topic, out.payload); err != nil {
			w.logger.ErrorContext(ctx, "Failed to publish playoff outcome",
				attr.Channel(args.ChannelName),
				attr.String("topic", out.topic),
				attr.Error(err),
			)
		}
	}

	w.logger.InfoContext(ctx, "Playoff round advanced",
		attr.Channel(args.ChannelName),
		attr.Int("week_number", args.WeekNumber),
		attr.String("closed_round", advance.Closed.RoundName),
		attr.Bool("champion_crowned", advance.Champion != nil),
		attr.Int64("job_id", job.ID),
	)
	return nil
}

type outcomeMessage struct {
	topic   string
	payload any
}

func outcomeMessages(channel string, advance *playoffservice.RoundAdvance) []outcomeMessage {
	var out []outcomeMessage
	switch {
	case advance.Champion != nil:
		crowned := &playoffevents.ChampionCrownedPayloadV1{
			ChannelName: channel,
			WeekNumber:  advance.WeekNumber,
			Champion:    *advance.Champion,
		}
		if advance.Playoff != nil {
			crowned.SeasonNumber = advance.Playoff.SeasonNumber
		}
		if len(advance.Results) > 0 {
			crowned.Final = advance.Results[0]
		}
		out = append(out, outcomeMessage{playoffevents.ChampionCrownedV1, crowned})
	case advance.NextRound != nil:
		out = append(out, outcomeMessage{playoffevents.RoundAdvancedV1, &playoffevents.RoundAdvancedPayloadV1{
			ChannelName: channel,
			WeekNumber:  advance.WeekNumber,
			Results:     advance.Results,
			NextRound:   *advance.NextRound,
			NextMatches: advance.NextMatchups,
		}})
	}

	if len(advance.Degenerate) > 0 {
		out = append(out, outcomeMessage{playoffevents.BracketReviewV1, &playoffevents.BracketReviewPayloadV1{
			ChannelName: channel,
			RoundName:   advance.Closed.RoundName,
			Reasons:     reviewReasons(advance.Degenerate),
		}})
	}
	return out
}

func reviewReasons(flags []playoffdomain.Degeneracy) []string {
	reasons := make([]string, 0, len(flags))
	for _, f := range flags {
		switch f {
		case playoffdomain.DegenerateNoScores:
			reasons = append(reasons, "a matchup had no scores; the home seed advanced")
		case playoffdomain.DegenerateUnknownRound:
			reasons = append(reasons, "the bracket has a round size that is not 16, 8, 4 or 2")
		default:
			reasons = append(reasons, string(f))
		}
	}
	return reasons
}

func (w *AdvanceRoundWorker) publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", topic, err)
	}
	return w.publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), body))
}
