package seasonhandlers

import (
	"context"
	"log/slog"

	seasonservice "github.com/Black-And-White-Club/pinball-bot/app/modules/season/application"
	seasonevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/season"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// Handlers defines the interface for season event handlers.
type Handlers interface {
	HandleSeasonCreateRequested(ctx context.Context, payload *seasonevents.SeasonCreateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSeasonEditRequested(ctx context.Context, payload *seasonevents.SeasonEditRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleStandingsRequested(ctx context.Context, payload *seasonevents.StandingsRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// SeasonHandlers implements the Handlers interface.
type SeasonHandlers struct {
	service seasonservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSeasonHandlers creates a new SeasonHandlers instance.
func NewSeasonHandlers(service seasonservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &SeasonHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleSeasonCreateRequested opens a new season.
func (h *SeasonHandlers) HandleSeasonCreateRequested(ctx context.Context, payload *seasonevents.SeasonCreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "SeasonHandlers.HandleSeasonCreateRequested")
	defer span.End()

	h.logger.InfoContext(ctx, "Season creation requested",
		attr.ExtractCorrelationID(ctx),
		attr.Channel(payload.ChannelName),
		attr.Int("season_number", payload.SeasonNumber),
	)

	result, err := h.service.CreateSeason(ctx, seasonservice.CreateSeasonRequest{
		ChannelName:  payload.ChannelName,
		SeasonNumber: payload.SeasonNumber,
		SeasonName:   payload.SeasonName,
		SeasonStart:  payload.SeasonStart,
		SeasonEnd:    payload.SeasonEnd,
	})
	if err != nil {
		return nil, err
	}
	return seasonResults(result, payload.ChannelName, seasonevents.SeasonCreatedV1, seasonevents.SeasonCreateFailedV1), nil
}

// HandleSeasonEditRequested changes fields of the current season.
func (h *SeasonHandlers) HandleSeasonEditRequested(ctx context.Context, payload *seasonevents.SeasonEditRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "SeasonHandlers.HandleSeasonEditRequested")
	defer span.End()

	result, err := h.service.EditCurrentSeason(ctx, payload.ChannelName, seasonservice.SeasonUpdate{
		SeasonNumber: payload.SeasonNumber,
		SeasonName:   payload.SeasonName,
		SeasonStart:  payload.SeasonStart,
		SeasonEnd:    payload.SeasonEnd,
	})
	if err != nil {
		return nil, err
	}
	return seasonResults(result, payload.ChannelName, seasonevents.SeasonEditedV1, seasonevents.SeasonEditFailedV1), nil
}

// HandleStandingsRequested returns a season's standings.
func (h *SeasonHandlers) HandleStandingsRequested(ctx context.Context, payload *seasonevents.StandingsRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "SeasonHandlers.HandleStandingsRequested")
	defer span.End()

	result, err := h.service.GetSeasonStandings(ctx, payload.ChannelName, payload.SeasonNumber)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(seasonevents.StandingsFailedV1, payload.ChannelName, *result.Failure), nil
	}

	st := *result.Success
	return []handlerwrapper.Result{{
		Topic: seasonevents.StandingsRetrievedV1,
		Payload: &seasonevents.StandingsRetrievedPayloadV1{
			Season:    *st.Season,
			Weeks:     st.Weeks,
			Standings: st.Standings,
		},
	}}, nil
}

func seasonResults(result seasonservice.SeasonResult, channel, successTopic, failureTopic string) []handlerwrapper.Result {
	if result.IsFailure() {
		return failed(failureTopic, channel, *result.Failure)
	}
	return []handlerwrapper.Result{{
		Topic:   successTopic,
		Payload: &seasonevents.SeasonPayloadV1{Season: *(*result.Success)},
	}}
}

func failed(topic, channel string, err error) []handlerwrapper.Result {
	return []handlerwrapper.Result{{
		Topic: topic,
		Payload: &seasonevents.SeasonFailedPayloadV1{
			ChannelName: channel,
			Reason:      err.Error(),
		},
	}}
}
