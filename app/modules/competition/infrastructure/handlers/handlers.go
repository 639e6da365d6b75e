package competitionhandlers

import (
	"log/slog"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	competitionevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/competition"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"go.opentelemetry.io/otel/trace"
)

// CompetitionHandlers implements the Handlers interface.
type CompetitionHandlers struct {
	service competitionservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewCompetitionHandlers creates a new CompetitionHandlers instance.
func NewCompetitionHandlers(
	service competitionservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &CompetitionHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// leaderboardUpdated is published on the channel-scoped leaderboard topic so
// the gateway can refresh the pinned board of one channel.
func leaderboardUpdated(week *competitiontypes.Week) handlerwrapper.Result {
	return handlerwrapper.Result{
		Topic: eventbus.FormatChannelScopedTopic(competitionevents.LeaderboardUpdatedV1, week.ChannelName),
		Payload: &competitionevents.LeaderboardUpdatedPayloadV1{
			ChannelName: week.ChannelName,
			WeekNumber:  week.WeekNumber,
			Table:       week.Table,
			Leaderboard: week.Scores,
		},
	}
}

func scoreFailed(topic, channel, username string, err error) []handlerwrapper.Result {
	return []handlerwrapper.Result{{
		Topic: topic,
		Payload: &competitionevents.ScoreFailedPayloadV1{
			ChannelName: channel,
			Username:    username,
			Reason:      err.Error(),
		},
	}}
}

func weekFailed(topic, channel string, err error) []handlerwrapper.Result {
	return []handlerwrapper.Result{{
		Topic: topic,
		Payload: &competitionevents.WeekFailedPayloadV1{
			ChannelName: channel,
			Reason:      err.Error(),
		},
	}}
}
