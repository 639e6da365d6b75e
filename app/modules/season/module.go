package season

import (
	"context"
	"fmt"

	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	seasonservice "github.com/Black-And-White-Club/pinball-bot/app/modules/season/application"
	"github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/adapters"
	seasonhandlers "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/handlers"
	seasondb "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories"
	seasonrouter "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/router"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// Module represents the season module.
type Module struct {
	SeasonService seasonservice.Service
	SeasonRouter  *seasonrouter.SeasonRouter
	observability observability.Observability
}

// NewSeasonModule creates and initializes the season module. Standings read
// archived weeks straight from the week repository.
func NewSeasonModule(
	ctx context.Context,
	obs observability.Observability,
	eventBus eventbus.EventBus,
	router *message.Router,
	routerCtx context.Context,
	db *bun.DB,
	weeks competitiondb.Repository,
) (*Module, error) {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "season.NewSeasonModule initializing")

	service := seasonservice.NewSeasonService(
		seasondb.NewRepository(db),
		adapters.NewWeekLookupAdapter(weeks),
		logger,
		obs.ModuleMetrics("season"),
		tracer,
		db,
	)

	handlers := seasonhandlers.NewSeasonHandlers(service, logger, tracer)

	seasonRouter := seasonrouter.NewSeasonRouter(logger, router, eventBus, eventBus, tracer)
	if err := seasonRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure season router: %w", err)
	}

	return &Module{
		SeasonService: service,
		SeasonRouter:  seasonRouter,
		observability: obs,
	}, nil
}

// Close shuts down the season module.
func (m *Module) Close() error {
	if m.SeasonRouter != nil {
		if err := m.SeasonRouter.Close(); err != nil {
			return fmt.Errorf("error closing SeasonRouter: %w", err)
		}
	}
	m.observability.Provider.Logger.Info("Season module stopped")
	return nil
}
