package playoffdb

import (
	"context"

	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for playoff persistence.
type Repository interface {
	GetActivePlayoff(ctx context.Context, db bun.IDB, channel string) (*Playoff, error)
	GetActivePlayoffForUpdate(ctx context.Context, db bun.IDB, channel string) (*Playoff, error)
	InsertPlayoff(ctx context.Context, db bun.IDB, playoff *Playoff) error
	// SetChampion records the winner and archives the playoff.
	SetChampion(ctx context.Context, db bun.IDB, playoffID uuid.UUID, champion playofftypes.MatchupSide) error
	ArchiveActivePlayoff(ctx context.Context, db bun.IDB, channel string) error

	GetActiveRound(ctx context.Context, db bun.IDB, channel string) (*Round, error)
	GetActiveRoundForUpdate(ctx context.Context, db bun.IDB, channel string) (*Round, error)
	InsertRound(ctx context.Context, db bun.IDB, round *Round) error
	// CloseRound stores the resolved matchups and archives the round.
	CloseRound(ctx context.Context, db bun.IDB, roundID uuid.UUID, weekNumber int, results []playofftypes.Matchup) error
	ArchiveActiveRound(ctx context.Context, db bun.IDB, channel string) error
	ListRounds(ctx context.Context, db bun.IDB, playoffID uuid.UUID) ([]Round, error)
}
