package playoff

import (
	"context"
	"fmt"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	playoffservice "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/application"
	"github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/adapters"
	playoffhandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/handlers"
	playoffqueue "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/queue"
	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	playoffrouter "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/router"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Module represents the playoff module.
type Module struct {
	PlayoffService playoffservice.Service
	PlayoffRouter  *playoffrouter.PlayoffRouter
	observability  observability.Observability
}

// NewPlayoffModule creates and initializes the playoff module. Live matchups
// read the open week through the competition service, and rounds advance
// from the jobs competition enqueues when a week closes.
func NewPlayoffModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	router *message.Router,
	routerCtx context.Context,
	db *bun.DB,
	competition competitionservice.Service,
	jobs *queue.Service,
) (*Module, error) {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "playoff.NewPlayoffModule initializing")

	service := playoffservice.NewPlayoffService(
		playoffdb.NewRepository(db),
		adapters.NewWeekLookupAdapter(competition),
		logger,
		obs.ModuleMetrics("playoff"),
		tracer,
		db,
	)

	if err := queue.AddWorker(jobs, playoffqueue.NewAdvanceRoundWorker(service, eventBus, logger)); err != nil {
		return nil, fmt.Errorf("failed to register advance round worker: %w", err)
	}

	handlers := playoffhandlers.NewPlayoffHandlers(service, logger, tracer)

	playoffRouter := playoffrouter.NewPlayoffRouter(logger, router, eventBus, eventBus, tracer)
	if err := playoffRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure playoff router: %w", err)
	}

	return &Module{
		PlayoffService: service,
		PlayoffRouter:  playoffRouter,
		observability:  obs,
	}, nil
}

// Close shuts down the playoff module.
func (m *Module) Close() error {
	if m.PlayoffRouter != nil {
		if err := m.PlayoffRouter.Close(); err != nil {
			return fmt.Errorf("error closing PlayoffRouter: %w", err)
		}
	}
	m.observability.Provider.Logger.Info("Playoff module stopped")
	return nil
}
