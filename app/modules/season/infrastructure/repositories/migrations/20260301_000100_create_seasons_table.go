package seasonmigrations

import (
	"context"
	"fmt"

	seasondb "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating seasons table...")
		if _, err := db.NewCreateTable().Model((*seasondb.Season)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create seasons table: %w", err)
		}
		if _, err := db.NewRaw(`CREATE UNIQUE INDEX IF NOT EXISTS idx_seasons_channel_active ON seasons (channel_name) WHERE is_archived = false`).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create idx_seasons_channel_active: %w", err)
		}
		if _, err := db.NewRaw(`CREATE INDEX IF NOT EXISTS idx_seasons_channel_number ON seasons (channel_name, season_number)`).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create idx_seasons_channel_number: %w", err)
		}
		fmt.Println("seasons table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping seasons table...")
		if _, err := db.NewDropTable().Model((*seasondb.Season)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop seasons table: %w", err)
		}
		return nil
	})
}
