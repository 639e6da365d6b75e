package competitionrouter

import (
	"context"
	"log/slog"

	competitionhandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/handlers"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	competitionevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/competition"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// CompetitionRouter handles Watermill handler registration for competition events.
type CompetitionRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewCompetitionRouter creates a new CompetitionRouter.
func NewCompetitionRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *CompetitionRouter {
	return &CompetitionRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the competition handlers on the shared router.
func (r *CompetitionRouter) Configure(_ context.Context, handlers competitionhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, competitionevents.ScorePostRequestedV1, handlers.HandleScorePostRequested)
	registerHandler(deps, competitionevents.ScoreEditRequestedV1, handlers.HandleScoreEditRequested)
	registerHandler(deps, competitionevents.ScoreRemoveRequestedV1, handlers.HandleScoreRemoveRequested)
	registerHandler(deps, competitionevents.WeekCreateRequestedV1, handlers.HandleWeekCreateRequested)
	registerHandler(deps, competitionevents.WeekEditRequestedV1, handlers.HandleWeekEditRequested)
	registerHandler(deps, competitionevents.RaffleRequestedV1, handlers.HandleRaffleRequested)

	r.logger.Info("Competition module handlers registered")
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
	handlerName := "competition." + topic

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
func (r *CompetitionRouter) Close() error {
	return r.Router.Close()
}
