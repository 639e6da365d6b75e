package playoffdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a playoff or round does not exist.
	ErrNotFound = errors.New("playoff not found")
	// ErrRoundNotFound is returned when the channel has no open round.
	ErrRoundNotFound = errors.New("playoff round not found")
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new playoff repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetActivePlayoff(ctx context.Context, db bun.IDB, channel string) (*Playoff, error) {
	return r.selectActivePlayoff(ctx, r.resolveDB(db), channel, false)
}

func (r *Impl) GetActivePlayoffForUpdate(ctx context.Context, db bun.IDB, channel string) (*Playoff, error) {
	return r.selectActivePlayoff(ctx, r.resolveDB(db), channel, true)
}

func (r *Impl) selectActivePlayoff(ctx context.Context, db bun.IDB, channel string, lock bool) (*Playoff, error) {
	playoff := new(Playoff)
	q := db.NewSelect().
		Model(playoff).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Order("created_at DESC").
		Limit(1)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active playoff: %w", err)
	}
	return playoff, nil
}

func (r *Impl) InsertPlayoff(ctx context.Context, db bun.IDB, playoff *Playoff) error {
	db = r.resolveDB(db)
	if playoff.ID == uuid.Nil {
		playoff.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(playoff).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert playoff: %w", err)
	}
	return nil
}

func (r *Impl) SetChampion(ctx context.Context, db bun.IDB, playoffID uuid.UUID, champion playofftypes.MatchupSide) error {
	db = r.resolveDB(db)
	body, err := json.Marshal(champion)
	if err != nil {
		return fmt.Errorf("failed to encode champion: %w", err)
	}
	res, err := db.NewUpdate().
		Model((*Playoff)(nil)).
		Set("champion = ?::jsonb", string(body)).
		Set("is_archived = true").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playoffID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set champion: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) ArchiveActivePlayoff(ctx context.Context, db bun.IDB, channel string) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model((*Playoff)(nil)).
		Set("is_archived = true").
		Set("updated_at = ?", time.Now()).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive playoff: %w", err)
	}
	return nil
}

func (r *Impl) GetActiveRound(ctx context.Context, db bun.IDB, channel string) (*Round, error) {
	return r.selectActiveRound(ctx, r.resolveDB(db), channel, false)
}

func (r *Impl) GetActiveRoundForUpdate(ctx context.Context, db bun.IDB, channel string) (*Round, error) {
	return r.selectActiveRound(ctx, r.resolveDB(db), channel, true)
}

func (r *Impl) selectActiveRound(ctx context.Context, db bun.IDB, channel string, lock bool) (*Round, error) {
	round := new(Round)
	q := db.NewSelect().
		Model(round).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Order("created_at DESC").
		Limit(1)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get active round: %w", err)
	}
	return round, nil
}

func (r *Impl) InsertRound(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(round).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert playoff round: %w", err)
	}
	return nil
}

func (r *Impl) CloseRound(ctx context.Context, db bun.IDB, roundID uuid.UUID, weekNumber int, results []playofftypes.Matchup) error {
	db = r.resolveDB(db)
	body, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode round results: %w", err)
	}
	res, err := db.NewUpdate().
		Model((*Round)(nil)).
		Set("results = ?::jsonb", string(body)).
		Set("week_number = ?", weekNumber).
		Set("is_archived = true").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to close playoff round: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *Impl) ArchiveActiveRound(ctx context.Context, db bun.IDB, channel string) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model((*Round)(nil)).
		Set("is_archived = true").
		Set("updated_at = ?", time.Now()).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive playoff round: %w", err)
	}
	return nil
}

func (r *Impl) ListRounds(ctx context.Context, db bun.IDB, playoffID uuid.UUID) ([]Round, error) {
	db = r.resolveDB(db)
	var rounds []Round
	err := db.NewSelect().
		Model(&rounds).
		Where("playoff_id = ?", playoffID).
		Order("round_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playoff rounds: %w", err)
	}
	return rounds, nil
}
