package highscorerouter

import (
	"context"
	"log/slog"

	highscorehandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/handlers"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	highscoreevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/highscore"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// HighScoreRouter handles Watermill handler registration for high score events.
type HighScoreRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewHighScoreRouter creates a new HighScoreRouter.
func NewHighScoreRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *HighScoreRouter {
	return &HighScoreRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the high score handlers on the shared router.
func (r *HighScoreRouter) Configure(_ context.Context, handlers highscorehandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, highscoreevents.PostRequestedV1, handlers.HandlePostRequested)
	registerHandler(deps, highscoreevents.SelectionSubmittedV1, handlers.HandleSelectionSubmitted)
	registerHandler(deps, highscoreevents.RemoveRequestedV1, handlers.HandleRemoveRequested)
	registerHandler(deps, highscoreevents.TableEnsureRequestedV1, handlers.HandleTableEnsureRequested)

	r.logger.Info("High score module handlers registered")
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
	handlerName := "highscore." + topic

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
func (r *HighScoreRouter) Close() error {
	return r.Router.Close()
}
