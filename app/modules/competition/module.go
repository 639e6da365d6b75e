package competition

import (
	"context"
	"fmt"
	"sync"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitionhandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/handlers"
	competitionqueue "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/queue"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	competitionrouter "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/router"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Config carries the competition settings the module needs.
type Config struct {
	Service                 competitionservice.Config
	BraggingRightsChannelID string
}

// Module represents the competition module.
type Module struct {
	CompetitionService competitionservice.Service
	CompetitionRouter  *competitionrouter.CompetitionRouter
	cancelFunc         context.CancelFunc
	observability      observability.Observability
}

// NewCompetitionModule creates and initializes the competition module and
// registers its River workers on jobs.
func NewCompetitionModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	router *message.Router,
	routerCtx context.Context,
	db *bun.DB,
	repo competitiondb.Repository,
	seasons competitionservice.SeasonLookup,
	jobs *queue.Service,
	cfg Config,
) (*Module, error) {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "competition.NewCompetitionModule initializing")

	service := competitionservice.NewCompetitionService(
		repo,
		seasons,
		jobs,
		logger,
		obs.ModuleMetrics("competition"),
		tracer,
		db,
		cfg.Service,
	)

	if err := queue.AddWorker(jobs, competitionqueue.NewBraggingRightsWorker(eventBus, cfg.BraggingRightsChannelID, logger)); err != nil {
		return nil, fmt.Errorf("failed to register bragging rights worker: %w", err)
	}

	handlers := competitionhandlers.NewCompetitionHandlers(service, logger, tracer)

	competitionRouter := competitionrouter.NewCompetitionRouter(logger, router, eventBus, eventBus, tracer)
	if err := competitionRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure competition router: %w", err)
	}

	return &Module{
		CompetitionService: service,
		CompetitionRouter:  competitionRouter,
		observability:      obs,
	}, nil
}

// Run blocks until ctx is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Provider.Logger
	logger.InfoContext(ctx, "Starting competition module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Competition module goroutine stopped")
}

// Close shuts down the competition module.
func (m *Module) Close() error {
	logger := m.observability.Provider.Logger
	logger.Info("Stopping competition module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.CompetitionRouter != nil {
		if err := m.CompetitionRouter.Close(); err != nil {
			return fmt.Errorf("error closing CompetitionRouter: %w", err)
		}
	}

	logger.Info("Competition module stopped")
	return nil
}
