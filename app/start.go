package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
)

// Run starts the queue, the message router and the HTTP server, and blocks
// until ctx is cancelled or one of them fails.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Provider.Logger

	ctx, app.cancel = context.WithCancel(ctx)

	if err := app.Jobs.Start(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 2)

	app.wg.Add(1)
	go app.CompetitionModule.Run(ctx, &app.wg)

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.Pending.Run(ctx, time.Minute)
	}()

	go func() {
		if err := app.Router.Run(ctx); err != nil {
			errCh <- fmt.Errorf("message router stopped: %w", err)
		}
	}()

	go func() {
		logger.InfoContext(ctx, "HTTP server listening", attr.String("address", app.HTTPServer.Addr))
		if err := app.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server stopped: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		return nil
	case err := <-errCh:
		logger.Error("Component failed", attr.Error(err))
		return err
	}
}
