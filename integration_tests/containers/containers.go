//go:build integration

// Package containers starts the Postgres and NATS instances the integration
// suites run against.
package containers

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	natsImage     = "nats:2.10-alpine"

	pgDatabase = "pinball"
	pgUser     = "pinball"
	pgPassword = "pinball"

	startupTimeout = 45 * time.Second
)

func pgURL(host string, port nat.Port) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgUser, pgPassword),
		Host:     fmt.Sprintf("%s:%s", host, port.Port()),
		Path:     pgDatabase,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// SetupPostgresContainer starts Postgres and returns it with a pgx DSN.
// The container is ready once a pgx connection succeeds.
func SetupPostgresContainer(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	c, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPassword),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "pgx", pgURL).WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		terminate(ctx, c)
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		terminate(ctx, c)
		return nil, "", fmt.Errorf("failed to get postgres host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		terminate(ctx, c)
		return nil, "", fmt.Errorf("failed to get postgres port: %w", err)
	}

	log.Printf("Postgres ready on %s:%s", host, port.Port())
	return c, pgURL(host, port), nil
}

// SetupNatsContainer starts a JetStream-enabled NATS server and returns it
// with its client URL.
func SetupNatsContainer(ctx context.Context) (*nats.NATSContainer, string, error) {
	c, err := nats.Run(ctx, natsImage,
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForLog("Server is ready"),
				wait.ForListeningPort("4222/tcp"),
			).WithDeadline(startupTimeout),
		),
	)
	if err != nil {
		terminate(ctx, c)
		return nil, "", fmt.Errorf("failed to start NATS container: %w", err)
	}

	natsURL, err := c.ConnectionString(ctx)
	if err != nil {
		terminate(ctx, c)
		return nil, "", fmt.Errorf("failed to get NATS connection string: %w", err)
	}

	log.Printf("NATS ready on %s", natsURL)
	return c, natsURL, nil
}

func terminate(ctx context.Context, c testcontainers.Container) {
	if c == nil {
		return
	}
	if err := c.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate container: %v", err)
	}
}
