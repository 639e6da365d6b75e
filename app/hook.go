package app

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Close stops accepting work, drains running jobs and closes connections.
// Each step runs even when an earlier one fails.
func (app *App) Close() error {
	logger := app.Observability.Provider.Logger
	logger.Info("Shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if app.cancel != nil {
		app.cancel()
	}

	var errs []error
	if app.HTTPServer != nil {
		if err := app.HTTPServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}

	var modules []interface{ Close() error }
	if app.CompetitionModule != nil {
		modules = append(modules, app.CompetitionModule)
	}
	if app.SeasonModule != nil {
		modules = append(modules, app.SeasonModule)
	}
	if app.PlayoffModule != nil {
		modules = append(modules, app.PlayoffModule)
	}
	if app.HighScoreModule != nil {
		modules = append(modules, app.HighScoreModule)
	}
	for _, m := range modules {
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if app.Router != nil {
		if err := app.Router.Close(); err != nil {
			errs = append(errs, fmt.Errorf("message router: %w", err))
		}
	}
	if app.Jobs != nil {
		if err := app.Jobs.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	app.wg.Wait()

	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event bus: %w", err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	logger.Info("Application shut down")
	return errors.Join(errs...)
}
