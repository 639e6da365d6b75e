package competitionmigrations

import (
	"context"
	"fmt"

	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating weeks table...")
		if _, err := db.NewCreateTable().Model((*competitiondb.Week)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create weeks table: %w", err)
		}

		// One open week per channel.
		if _, err := db.NewRaw(`CREATE UNIQUE INDEX IF NOT EXISTS idx_weeks_channel_active ON weeks (channel_name) WHERE is_archived = false`).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create idx_weeks_channel_active: %w", err)
		}
		if _, err := db.NewRaw(`CREATE INDEX IF NOT EXISTS idx_weeks_channel_period ON weeks (channel_name, period_start, period_end) WHERE is_archived = true`).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create idx_weeks_channel_period: %w", err)
		}
		fmt.Println("weeks table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping weeks table...")
		if _, err := db.NewDropTable().Model((*competitiondb.Week)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop weeks table: %w", err)
		}
		return nil
	})
}
