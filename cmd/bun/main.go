// Command bun manages the database schema: every module's bun migrations
// plus River's job tables.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Black-And-White-Club/pinball-bot/config"
	"github.com/Black-And-White-Club/pinball-bot/db/bundb"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "bun",
		Usage: "pinball-bot database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{migrateCommand()},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// env is what every subcommand needs: an open database, its migrators and
// the DSN River migrates through.
type env struct {
	db        *bun.DB
	dsn       string
	migrators map[string]*migrate.Migrator
}

// withEnv loads config, connects, runs fn and closes the connection.
func withEnv(fn func(c *cli.Context, e env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		db, err := bundb.NewBunDB(c.Context, cfg.Postgres.DSN, observability.NoOpLogger)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(c, env{db: db, dsn: cfg.Postgres.DSN, migrators: bundb.Migrators(db)})
	}
}

// moduleArg resolves the first argument to a module's migrator.
func moduleArg(c *cli.Context, e env) (string, *migrate.Migrator, error) {
	name := c.Args().First()
	m, ok := e.migrators[name]
	if !ok {
		return "", nil, fmt.Errorf("unknown module %q (want one of %s)", name, strings.Join(bundb.ModuleOrder, ", "))
	}
	return name, m, nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withEnv(func(c *cli.Context, e env) error {
					for _, name := range bundb.Ordered(e.migrators) {
						if err := e.migrators[name].Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", name, err)
						}
						fmt.Printf("%s: migration tables ready\n", name)
					}
					return nil
				}),
			},
			{
				Name:  "migrate",
				Usage: "apply pending module migrations and the job queue schema",
				Action: withEnv(func(c *cli.Context, e env) error {
					err := bundb.MigrateAll(c.Context, e.migrators, func(name string, group *migrate.MigrationGroup) {
						if group.IsZero() {
							fmt.Printf("%s: up to date\n", name)
							return
						}
						fmt.Printf("%s: migrated to %s\n", name, group)
					})
					if err != nil {
						return err
					}
					return migrateQueue(c.Context, e.dsn)
				}),
			},
			{
				Name:  "queue",
				Usage: "apply only the job queue schema",
				Action: withEnv(func(c *cli.Context, e env) error {
					return migrateQueue(c.Context, e.dsn)
				}),
			},
			{
				Name:  "rollback",
				Usage: "roll back the last migration group of every module, newest module first",
				Action: withEnv(func(c *cli.Context, e env) error {
					names := bundb.Ordered(e.migrators)
					for i := len(names) - 1; i >= 0; i-- {
						group, err := e.migrators[names[i]].Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", names[i], err)
						}
						if group.IsZero() {
							fmt.Printf("%s: nothing to roll back\n", names[i])
						} else {
							fmt.Printf("%s: rolled back %s\n", names[i], group)
						}
					}
					return nil
				}),
			},
			{
				Name:      "create_go",
				Usage:     "create a Go migration for a module",
				ArgsUsage: "<module> <name...>",
				Action: withEnv(func(c *cli.Context, e env) error {
					name, m, err := moduleArg(c, e)
					if err != nil {
						return err
					}
					mf, err := m.CreateGoMigration(c.Context, strings.Join(c.Args().Tail(), "_"))
					if err != nil {
						return err
					}
					fmt.Printf("%s: created %s (%s)\n", name, mf.Name, mf.Path)
					return nil
				}),
			},
			{
				Name:      "create_sql",
				Usage:     "create up and down SQL migrations for a module",
				ArgsUsage: "<module> <name...>",
				Action: withEnv(func(c *cli.Context, e env) error {
					name, m, err := moduleArg(c, e)
					if err != nil {
						return err
					}
					files, err := m.CreateSQLMigrations(c.Context, strings.Join(c.Args().Tail(), "_"))
					if err != nil {
						return err
					}
					for _, mf := range files {
						fmt.Printf("%s: created %s (%s)\n", name, mf.Name, mf.Path)
					}
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print migration status per module",
				Action: withEnv(func(c *cli.Context, e env) error {
					for _, name := range bundb.Ordered(e.migrators) {
						ms, err := e.migrators[name].MigrationsWithStatus(c.Context)
						if err != nil {
							return fmt.Errorf("status %s: %w", name, err)
						}
						fmt.Printf("%s\n  applied:   %s\n  unapplied: %s\n", name, ms.Applied(), ms.Unapplied())
					}
					return nil
				}),
			},
		},
	}
}

func migrateQueue(ctx context.Context, dsn string) error {
	n, err := queue.MigrateDSN(ctx, dsn)
	if err != nil {
		return err
	}
	fmt.Printf("queue: applied %d migration(s)\n", n)
	return nil
}
