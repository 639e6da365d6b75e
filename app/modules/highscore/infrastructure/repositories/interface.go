package highscoredb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for high score persistence.
type Repository interface {
	GetTable(ctx context.Context, db bun.IDB, vpsID, versionNumber string) (*TableVersion, error)
	// ListTableVersions returns every version of a table, oldest first.
	ListTableVersions(ctx context.Context, db bun.IDB, vpsID string) ([]TableVersion, error)
	InsertTable(ctx context.Context, db bun.IDB, table *TableVersion) error
	// SearchTables matches term against table names and slugs without regard
	// to case. At most limit versions are returned.
	SearchTables(ctx context.Context, db bun.IDB, term string, limit int) ([]TableVersion, error)

	ListScores(ctx context.Context, db bun.IDB, tableID int64) ([]HighScore, error)
	InsertScore(ctx context.Context, db bun.IDB, score *HighScore) error
	// DeleteScores removes username's score from every version of a table
	// and returns how many rows were deleted.
	DeleteScores(ctx context.Context, db bun.IDB, vpsID, username string, score int64) (int, error)
}
