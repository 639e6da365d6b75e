package playoffrouter

import (
	"context"
	"log/slog"

	playoffhandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/handlers"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	playoffevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/playoff"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// PlayoffRouter handles Watermill handler registration for playoff events.
type PlayoffRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewPlayoffRouter creates a new PlayoffRouter.
func NewPlayoffRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *PlayoffRouter {
	return &PlayoffRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the playoff handlers on the shared router.
func (r *PlayoffRouter) Configure(_ context.Context, handlers playoffhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, playoffevents.PlayoffCreateRequestedV1, handlers.HandlePlayoffCreateRequested)
	registerHandler(deps, playoffevents.RoundCreateRequestedV1, handlers.HandleRoundCreateRequested)
	registerHandler(deps, playoffevents.MatchupsRequestedV1, handlers.HandleMatchupsRequested)

	r.logger.Info("Playoff module handlers registered")
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
	handlerName := "playoff." + topic

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
func (r *PlayoffRouter) Close() error {
	return r.Router.Close()
}
