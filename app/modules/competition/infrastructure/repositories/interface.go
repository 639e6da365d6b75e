package competitiondb

import (
	"context"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// Repository defines the contract for week persistence.
type Repository interface {
	// GetActiveWeek returns the channel's unarchived week.
	GetActiveWeek(ctx context.Context, db bun.IDB, channel string) (*Week, error)

	// GetActiveWeekForUpdate is GetActiveWeek holding a row lock until the
	// surrounding transaction ends.
	GetActiveWeekForUpdate(ctx context.Context, db bun.IDB, channel string) (*Week, error)

	// InsertWeek creates a week and sets its id.
	InsertWeek(ctx context.Context, db bun.IDB, week *Week) error

	// UpdateWeek rewrites every editable column of a week.
	UpdateWeek(ctx context.Context, db bun.IDB, week *Week) error

	// UpdateScores replaces a week's leaderboard.
	UpdateScores(ctx context.Context, db bun.IDB, weekID int64, scores competitiontypes.Leaderboard) error

	// ArchiveActiveWeek archives the channel's unarchived week, if any.
	ArchiveActiveWeek(ctx context.Context, db bun.IDB, channel string) error

	// ListArchivedWeeks returns archived weeks whose period lies within
	// [from, to], oldest first.
	ListArchivedWeeks(ctx context.Context, db bun.IDB, channel, from, to string) ([]Week, error)
}
