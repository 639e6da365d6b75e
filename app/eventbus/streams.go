package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
)

// StreamNames are the JetStream streams, one per module topic prefix.
var StreamNames = []string{"competition", "season", "playoff", "highscore"}

// InitializeStreams creates the necessary streams in JetStream during application startup.
func InitializeStreams(ctx context.Context, bus eventbus.EventBus, logger *slog.Logger) error {
	for _, name := range StreamNames {
		if err := bus.CreateStream(ctx, name); err != nil {
			logger.ErrorContext(ctx, "Failed to create JetStream stream", attr.String("stream", name), attr.Error(err))
			return fmt.Errorf("failed to initialize stream %s: %w", name, err)
		}
	}
	return nil
}
