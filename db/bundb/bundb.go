package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	seasondb "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// NewBunDB opens the Postgres pool and registers every module's models.
func NewBunDB(ctx context.Context, dsn string, logger *slog.Logger) (*bun.DB, error) {
	sqldb, err := pgConn(ctx, dsn)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to connect to PostgreSQL", attr.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := BunDB(sqldb)
	logger.InfoContext(ctx, "Database connected")
	return db, nil
}

// BunDB wraps an open sql.DB for the Postgres dialect.
func BunDB(sqldb *sql.DB) *bun.DB {
	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*competitiondb.Week)(nil),
		(*seasondb.Season)(nil),
		(*playoffdb.Playoff)(nil),
		(*playoffdb.Round)(nil),
		(*highscoredb.TableVersion)(nil),
		(*highscoredb.HighScore)(nil),
	)
	return db
}

// Health adapts a bun.DB to the HTTP health check.
type Health struct {
	DB *bun.DB
}

// HealthCheck pings the database.
func (h Health) HealthCheck(ctx context.Context) error {
	if err := h.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}
