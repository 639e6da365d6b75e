package highscoremigrations

import (
	"context"
	"fmt"

	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating high score tables...")
		if _, err := db.NewCreateTable().Model((*highscoredb.TableVersion)(nil)).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create highscore_tables table: %w", err)
		}
		if _, err := db.NewCreateTable().
			Model((*highscoredb.HighScore)(nil)).
			IfNotExists().
			ForeignKey(`("table_id") REFERENCES "highscore_tables" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create highscores table: %w", err)
		}

		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_highscore_tables_version ON highscore_tables (vps_id, version_number)`,
			`CREATE INDEX IF NOT EXISTS idx_highscore_tables_slug ON highscore_tables (slug)`,
			`CREATE INDEX IF NOT EXISTS idx_highscores_table_score ON highscores (table_id, score DESC)`,
		}
		for _, stmt := range indexes {
			if _, err := db.NewRaw(stmt).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}
		fmt.Println("high score tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping high score tables...")
		if _, err := db.NewDropTable().Model((*highscoredb.HighScore)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop highscores table: %w", err)
		}
		if _, err := db.NewDropTable().Model((*highscoredb.TableVersion)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop highscore_tables table: %w", err)
		}
		return nil
	})
}
