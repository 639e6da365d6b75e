package seasondb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for season persistence.
type Repository interface {
	GetActiveSeason(ctx context.Context, db bun.IDB, channel string) (*Season, error)
	GetActiveSeasonForUpdate(ctx context.Context, db bun.IDB, channel string) (*Season, error)
	// GetSeasonByNumber returns the most recent season with that number,
	// archived or not.
	GetSeasonByNumber(ctx context.Context, db bun.IDB, channel string, number int) (*Season, error)
	InsertSeason(ctx context.Context, db bun.IDB, season *Season) error
	UpdateSeason(ctx context.Context, db bun.IDB, season *Season) error
	ArchiveActiveSeason(ctx context.Context, db bun.IDB, channel string) error
}
