package seasonrouter

import (
	"context"
	"log/slog"

	seasonhandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/handlers"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	seasonevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/season"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// SeasonRouter handles Watermill handler registration for season events.
type SeasonRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewSeasonRouter creates a new SeasonRouter.
func NewSeasonRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *SeasonRouter {
	return &SeasonRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the season handlers on the shared router.
func (r *SeasonRouter) Configure(_ context.Context, handlers seasonhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, seasonevents.SeasonCreateRequestedV1, handlers.HandleSeasonCreateRequested)
	registerHandler(deps, seasonevents.SeasonEditRequestedV1, handlers.HandleSeasonEditRequested)
	registerHandler(deps, seasonevents.StandingsRequestedV1, handlers.HandleStandingsRequested)

	r.logger.Info("Season module handlers registered")
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	logger     *slog.Logger
	tracer     trace.Tracer
}

// registerHandler registers a typed transformation handler.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "season." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // each result carries its topic in metadata
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(handlerName, deps.logger, deps.tracer, handler),
	)
}

// Close stops the router.
func (r *SeasonRouter) Close() error {
	return r.Router.Close()
}
