package highscore

import (
	"context"
	"fmt"

	highscoreservice "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/application"
	highscorehandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/handlers"
	highscorequeue "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/queue"
	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	highscorerouter "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/router"
	"github.com/Black-And-White-Club/pinball-bot/internal/correlation"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Module represents the high score module.
type Module struct {
	HighScoreService highscoreservice.Service
	HighScoreRouter  *highscorerouter.HighScoreRouter
	observability    observability.Observability
}

// NewHighScoreModule creates and initializes the high score module. Pending
// screenshot attachments live in the shared correlation store until the user
// picks a table.
func NewHighScoreModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	router *message.Router,
	routerCtx context.Context,
	db *bun.DB,
	pending *correlation.Store[string],
	jobs *queue.Service,
) (*Module, error) {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "highscore.NewHighScoreModule initializing")

	service := highscoreservice.NewHighScoreService(
		highscoredb.NewRepository(db),
		pending,
		logger,
		obs.ModuleMetrics("highscore"),
		tracer,
		db,
	)

	if err := queue.AddWorker(jobs, highscorequeue.NewEnsureTableWorker(service, eventBus, logger)); err != nil {
		return nil, fmt.Errorf("failed to register ensure table worker: %w", err)
	}
	if err := queue.AddWorker(jobs, highscorequeue.NewCrossPostWorker(service, eventBus, logger)); err != nil {
		return nil, fmt.Errorf("failed to register cross post worker: %w", err)
	}
	if err := queue.AddWorker(jobs, highscorequeue.NewRemoveWorker(service, eventBus, logger)); err != nil {
		return nil, fmt.Errorf("failed to register remove worker: %w", err)
	}

	handlers := highscorehandlers.NewHighScoreHandlers(service, logger, tracer)

	highScoreRouter := highscorerouter.NewHighScoreRouter(logger, router, eventBus, eventBus, tracer)
	if err := highScoreRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure high score router: %w", err)
	}

	return &Module{
		HighScoreService: service,
		HighScoreRouter:  highScoreRouter,
		observability:    obs,
	}, nil
}

// Close shuts down the high score module.
func (m *Module) Close() error {
	if m.HighScoreRouter != nil {
		if err := m.HighScoreRouter.Close(); err != nil {
			return fmt.Errorf("error closing HighScoreRouter: %w", err)
		}
	}
	m.observability.Provider.Logger.Info("High score module stopped")
	return nil
}
