package seasondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a season does not exist.
var ErrNotFound = errors.New("season not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new season repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetActiveSeason(ctx context.Context, db bun.IDB, channel string) (*Season, error) {
	return r.selectActive(ctx, r.resolveDB(db), channel, false)
}

func (r *Impl) GetActiveSeasonForUpdate(ctx context.Context, db bun.IDB, channel string) (*Season, error) {
	return r.selectActive(ctx, r.resolveDB(db), channel, true)
}

func (r *Impl) selectActive(ctx context.Context, db bun.IDB, channel string, lock bool) (*Season, error) {
	season := new(Season)
	q := db.NewSelect().
		Model(season).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Order("id DESC").
		Limit(1)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}
	return season, nil
}

func (r *Impl) GetSeasonByNumber(ctx context.Context, db bun.IDB, channel string, number int) (*Season, error) {
	db = r.resolveDB(db)
	season := new(Season)
	err := db.NewSelect().
		Model(season).
		Where("channel_name = ?", channel).
		Where("season_number = ?", number).
		Order("id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get season %d: %w", number, err)
	}
	return season, nil
}

func (r *Impl) InsertSeason(ctx context.Context, db bun.IDB, season *Season) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(season).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert season: %w", err)
	}
	return nil
}

func (r *Impl) UpdateSeason(ctx context.Context, db bun.IDB, season *Season) error {
	db = r.resolveDB(db)
	season.UpdatedAt = time.Now()
	res, err := db.NewUpdate().
		Model(season).
		ExcludeColumn("id", "channel_name", "created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update season: %w", err)
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

func (r *Impl) ArchiveActiveSeason(ctx context.Context, db bun.IDB, channel string) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model((*Season)(nil)).
		Set("is_archived = true").
		Set("updated_at = ?", time.Now()).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive season: %w", err)
	}
	return nil
}
