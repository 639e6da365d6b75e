package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	appeventbus "github.com/Black-And-White-Club/pinball-bot/app/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/app/httpapi"
	"github.com/Black-And-White-Club/pinball-bot/app/modules/competition"
	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitionadapters "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/adapters"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/app/modules/highscore"
	"github.com/Black-And-White-Club/pinball-bot/app/modules/playoff"
	"github.com/Black-And-White-Club/pinball-bot/app/modules/season"
	"github.com/Black-And-White-Club/pinball-bot/config"
	"github.com/Black-And-White-Club/pinball-bot/db/bundb"
	"github.com/Black-And-White-Club/pinball-bot/internal/correlation"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// App holds the process-wide dependencies and the modules built on them.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Router        *message.Router
	Jobs          *queue.Service
	Pending       *correlation.Store[string]
	HTTPServer    *http.Server

	CompetitionModule *competition.Module
	SeasonModule      *season.Module
	PlayoffModule     *playoff.Module
	HighScoreModule   *highscore.Module

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApp connects Postgres, NATS and River and builds every module.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	logger := obs.Provider.Logger
	app := &App{Config: cfg, Observability: obs}

	db, err := bundb.NewBunDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		return nil, err
	}
	app.DB = db

	bus, err := eventbus.NewEventBus(ctx, eventbus.Config{URL: cfg.NATS.URL}, logger)
	if err != nil {
		app.closeInfra()
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}
	app.EventBus = bus

	if err := appeventbus.InitializeStreams(ctx, bus, logger); err != nil {
		app.closeInfra()
		return nil, err
	}

	router, err := NewMessageRouter(logger)
	if err != nil {
		app.closeInfra()
		return nil, err
	}
	app.Router = router

	jobs, err := queue.NewService(ctx, queue.Config{
		DSN:        cfg.Postgres.DSN,
		MaxWorkers: cfg.Queue.MaxWorkers,
	}, logger, obs.ModuleMetrics("queue"))
	if err != nil {
		app.closeInfra()
		return nil, fmt.Errorf("failed to create job queue: %w", err)
	}
	app.Jobs = jobs

	app.Pending = correlation.NewStore[string](cfg.Competition.PendingAttachmentTTL)

	if err := app.initializeModules(ctx); err != nil {
		app.closeInfra()
		return nil, err
	}

	app.HTTPServer = &http.Server{
		Addr: cfg.HTTP.Address,
		Handler: httpapi.NewRouter(
			httpapi.NewAPI(httpapi.Services{
				Competition: app.CompetitionModule.CompetitionService,
				Season:      app.SeasonModule.SeasonService,
				Playoff:     app.PlayoffModule.PlayoffService,
				HighScore:   app.HighScoreModule.HighScoreService,
			}, logger, obs.Registry.Tracer, bundb.Health{DB: db}, jobs),
			httpapi.NewClientLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst),
			obs.Registry.Prometheus,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// initializeModules builds the modules in dependency order: standings read
// weeks, weeks read the current season, playoffs read the current week.
func (app *App) initializeModules(ctx context.Context) error {
	weeks := competitiondb.NewRepository(app.DB)

	seasonModule, err := season.NewSeasonModule(ctx, app.Observability, app.EventBus, app.Router, ctx, app.DB, weeks)
	if err != nil {
		return fmt.Errorf("failed to initialize season module: %w", err)
	}
	app.SeasonModule = seasonModule

	competitionModule, err := competition.NewCompetitionModule(
		ctx,
		app.Observability,
		app.EventBus,
		app.Router,
		ctx,
		app.DB,
		weeks,
		competitionadapters.NewSeasonLookupAdapter(seasonModule.SeasonService),
		app.Jobs,
		competition.Config{
			Service: competitionservice.Config{
				DefaultMode:         app.Config.Competition.DefaultMode,
				HighScoreRankCutoff: app.Config.Competition.HighScoreRankCutoff,
			},
			BraggingRightsChannelID: app.Config.Competition.BraggingRightsChannelID,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize competition module: %w", err)
	}
	app.CompetitionModule = competitionModule

	playoffModule, err := playoff.NewPlayoffModule(ctx, app.Observability, app.EventBus, app.Router, ctx, app.DB,
		competitionModule.CompetitionService, app.Jobs)
	if err != nil {
		return fmt.Errorf("failed to initialize playoff module: %w", err)
	}
	app.PlayoffModule = playoffModule

	highScoreModule, err := highscore.NewHighScoreModule(ctx, app.Observability, app.EventBus, app.Router, ctx, app.DB,
		app.Pending, app.Jobs)
	if err != nil {
		return fmt.Errorf("failed to initialize high score module: %w", err)
	}
	app.HighScoreModule = highScoreModule

	return nil
}

func (app *App) closeInfra() {
	if app.Jobs != nil {
		_ = app.Jobs.Stop(context.Background())
	}
	if app.EventBus != nil {
		_ = app.EventBus.Close()
	}
	if app.DB != nil {
		_ = app.DB.Close()
	}
}
