package playoffmigrations

import (
	"context"
	"fmt"

	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating playoff tables...")
		models := []interface{}{
			(*playoffdb.Playoff)(nil),
			(*playoffdb.Round)(nil),
		}
		for _, model := range models {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create table: %w", err)
			}
		}

		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_playoffs_channel_active ON playoffs (channel_name) WHERE is_archived = false`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_playoff_rounds_channel_active ON playoff_rounds (channel_name) WHERE is_archived = false`,
			`CREATE INDEX IF NOT EXISTS idx_playoff_rounds_playoff ON playoff_rounds (playoff_id, round_number)`,
		}
		for _, stmt := range indexes {
			if _, err := db.NewRaw(stmt).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}
		fmt.Println("playoff tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping playoff tables...")
		models := []interface{}{
			(*playoffdb.Round)(nil),
			(*playoffdb.Playoff)(nil),
		}
		for _, model := range models {
			if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}
		return nil
	})
}
