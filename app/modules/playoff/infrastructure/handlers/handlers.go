package playoffhandlers

import (
	"context"
	"log/slog"

	playoffservice "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/application"
	playoffevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/playoff"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// Handlers defines the interface for playoff event handlers.
type Handlers interface {
	HandlePlayoffCreateRequested(ctx context.Context, payload *playoffevents.PlayoffCreateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRoundCreateRequested(ctx context.Context, payload *playoffevents.RoundCreateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchupsRequested(ctx context.Context, payload *playoffevents.MatchupsRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// PlayoffHandlers implements the Handlers interface.
type PlayoffHandlers struct {
	service playoffservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewPlayoffHandlers creates a new PlayoffHandlers instance.
func NewPlayoffHandlers(service playoffservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &PlayoffHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandlePlayoffCreateRequested seeds a new bracket.
func (h *PlayoffHandlers) HandlePlayoffCreateRequested(ctx context.Context, payload *playoffevents.PlayoffCreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "PlayoffHandlers.HandlePlayoffCreateRequested")
	defer span.End()

	h.logger.InfoContext(ctx, "Playoff creation requested",
		attr.ExtractCorrelationID(ctx),
		attr.Channel(payload.ChannelName),
		attr.Int("seeds", len(payload.Seeds)),
	)

	result, err := h.service.CreatePlayoff(ctx, playoffservice.CreatePlayoffRequest{
		ChannelName:  payload.ChannelName,
		SeasonNumber: payload.SeasonNumber,
		Seeds:        payload.Seeds,
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(playoffevents.PlayoffCreateFailedV1, payload.ChannelName, *result.Failure), nil
	}

	created := *result.Success
	return []handlerwrapper.Result{{
		Topic: playoffevents.PlayoffCreatedV1,
		Payload: &playoffevents.PlayoffCreatedPayloadV1{
			ChannelName:  payload.ChannelName,
			SeasonNumber: created.Playoff.SeasonNumber,
			Seeds:        created.Playoff.Seeds,
			Round:        created.Round,
		},
	}}, nil
}

// HandleRoundCreateRequested replaces the current round.
func (h *PlayoffHandlers) HandleRoundCreateRequested(ctx context.Context, payload *playoffevents.RoundCreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "PlayoffHandlers.HandleRoundCreateRequested")
	defer span.End()

	result, err := h.service.CreatePlayoffRound(ctx, payload.ChannelName, payload.Games)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(playoffevents.RoundCreateFailedV1, payload.ChannelName, *result.Failure), nil
	}

	return []handlerwrapper.Result{{
		Topic: playoffevents.RoundCreatedV1,
		Payload: &playoffevents.RoundCreatedPayloadV1{
			ChannelName: payload.ChannelName,
			Round:       (*result.Success).Round,
		},
	}}, nil
}

// HandleMatchupsRequested returns the live matchups of the current round.
func (h *PlayoffHandlers) HandleMatchupsRequested(ctx context.Context, payload *playoffevents.MatchupsRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "PlayoffHandlers.HandleMatchupsRequested")
	defer span.End()

	result, err := h.service.GetCurrentMatchups(ctx, payload.ChannelName)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(playoffevents.MatchupsFailedV1, payload.ChannelName, *result.Failure), nil
	}

	current := *result.Success
	return []handlerwrapper.Result{{
		Topic: playoffevents.MatchupsRetrievedV1,
		Payload: &playoffevents.MatchupsRetrievedPayloadV1{
			ChannelName: payload.ChannelName,
			Round:       current.Round,
			Matchups:    current.Matchups,
		},
	}}, nil
}

func failed(topic, channel string, err error) []handlerwrapper.Result {
	return []handlerwrapper.Result{{
		Topic: topic,
		Payload: &playoffevents.PlayoffFailedPayloadV1{
			ChannelName: channel,
			Reason:      err.Error(),
		},
	}}
}
