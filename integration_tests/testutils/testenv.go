//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/pinball-bot/config"
	"github.com/Black-And-White-Club/pinball-bot/db/bundb"
	"github.com/Black-And-White-Club/pinball-bot/integration_tests/containers"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
)

// appTables are truncated between tests.
var appTables = []string{
	"highscores",
	"highscore_tables",
	"playoff_rounds",
	"playoffs",
	"seasons",
	"weeks",
	"river_job",
}

// TestEnvironment holds all resources needed for integration testing
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	NatsContainer *nats.NATSContainer
	DB            *bun.DB
	Config        *config.Config
}

// NewTestEnvironment starts Postgres and NATS and migrates the schema,
// River's tables included.
func NewTestEnvironment(t *testing.T) (*TestEnvironment, error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	env := &TestEnvironment{Ctx: ctx, CancelContext: cancel}

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
	if err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to setup nats container: %w", err)
	}
	env.NatsContainer = natsContainer

	sqlDB, err := sql.Open("pgx", pgConnStr)
	if err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	env.DB = bundb.BunDB(sqlDB)

	if err := runMigrations(ctx, env.DB, pgConnStr); err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	env.Config = &config.Config{
		Postgres: config.PostgresConfig{DSN: pgConnStr},
		NATS:     config.NATSConfig{URL: natsURL},
		HTTP:     config.HTTPConfig{Address: "127.0.0.1:0", RateLimit: 100, RateBurst: 100},
		Queue:    config.QueueConfig{MaxWorkers: 4},
		Competition: config.CompetitionConfig{
			DefaultMode:          "default",
			HighScoreRankCutoff:  10,
			PendingAttachmentTTL: 15 * time.Minute,
		},
	}
	return env, nil
}

func runMigrations(ctx context.Context, db *bun.DB, dsn string) error {
	if err := bundb.MigrateAll(ctx, bundb.Migrators(db), nil); err != nil {
		return err
	}
	if _, err := queue.MigrateDSN(ctx, dsn); err != nil {
		return err
	}
	log.Println("All migrations ran successfully")
	return nil
}

// ResetDatabase empties every application table.
func (env *TestEnvironment) ResetDatabase(ctx context.Context) error {
	_, err := env.DB.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(appTables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}

// Cleanup closes connections and terminates the containers.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		_ = env.DB.Close()
	}
	ctx := context.Background()
	if env.NatsContainer != nil {
		if err := env.NatsContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate NATS container: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate Postgres container: %v", err)
		}
	}
	env.CancelContext()
}
