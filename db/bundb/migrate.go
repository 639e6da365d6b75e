package bundb

import (
	"context"
	"fmt"
	"sort"

	competitionmigrations "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories/migrations"
	highscoremigrations "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories/migrations"
	playoffmigrations "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories/migrations"
	seasonmigrations "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleOrder runs migrations so referenced tables exist first.
var ModuleOrder = []string{"competition", "season", "playoff", "highscore"}

// Migrators returns one migrator per module, each tracking its own
// migration table.
func Migrators(db *bun.DB) map[string]*migrate.Migrator {
	modules := map[string]*migrate.Migrations{
		"competition": competitionmigrations.Migrations,
		"season":      seasonmigrations.Migrations,
		"playoff":     playoffmigrations.Migrations,
		"highscore":   highscoremigrations.Migrations,
	}

	migrators := make(map[string]*migrate.Migrator, len(modules))
	for name, migrations := range modules {
		migrators[name] = migrate.NewMigrator(db, migrations,
			migrate.WithTableName("bun_migrations_"+name),
			migrate.WithLocksTableName("bun_migration_locks_"+name),
		)
	}
	return migrators
}

// Ordered lists migrator names in ModuleOrder, then any others by name.
func Ordered(migrators map[string]*migrate.Migrator) []string {
	names := make([]string, 0, len(migrators))
	seen := map[string]bool{}
	for _, name := range ModuleOrder {
		if _, ok := migrators[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range migrators {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// MigrateAll applies pending migrations module by module, holding each
// module's lock while it runs. report is called once per module.
func MigrateAll(ctx context.Context, migrators map[string]*migrate.Migrator, report func(module string, group *migrate.MigrationGroup)) error {
	for _, name := range Ordered(migrators) {
		m := migrators[name]
		if err := m.Init(ctx); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
		if err := m.Lock(ctx); err != nil {
			return fmt.Errorf("lock %s: %w", name, err)
		}
		group, err := m.Migrate(ctx)
		if unlockErr := m.Unlock(ctx); unlockErr != nil && err == nil {
			err = unlockErr
		}
		if err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
		if report != nil {
			report(name, group)
		}
	}
	return nil
}
