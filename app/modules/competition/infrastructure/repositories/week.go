package competitiondb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a week does not exist.
var ErrNotFound = errors.New("week not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new week repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetActiveWeek(ctx context.Context, db bun.IDB, channel string) (*Week, error) {
	return r.selectActive(ctx, r.resolveDB(db), channel, false)
}

func (r *Impl) GetActiveWeekForUpdate(ctx context.Context, db bun.IDB, channel string) (*Week, error) {
	return r.selectActive(ctx, r.resolveDB(db), channel, true)
}

func (r *Impl) selectActive(ctx context.Context, db bun.IDB, channel string, lock bool) (*Week, error) {
	week := new(Week)
	q := db.NewSelect().
		Model(week).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Order("week_number DESC").
		Limit(1)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active week: %w", err)
	}
	return week, nil
}

func (r *Impl) InsertWeek(ctx context.Context, db bun.IDB, week *Week) error {
	db = r.resolveDB(db)
	if week.Scores == nil {
		week.Scores = competitiontypes.Leaderboard{}
	}
	if _, err := db.NewInsert().Model(week).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert week: %w", err)
	}
	return nil
}

func (r *Impl) UpdateWeek(ctx context.Context, db bun.IDB, week *Week) error {
	db = r.resolveDB(db)
	week.UpdatedAt = time.Now()
	res, err := db.NewUpdate().
		Model(week).
		ExcludeColumn("id", "channel_name", "created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update week: %w", err)
	}
	return requireRow(res)
}

func (r *Impl) UpdateScores(ctx context.Context, db bun.IDB, weekID int64, scores competitiontypes.Leaderboard) error {
	db = r.resolveDB(db)
	if scores == nil {
		scores = competitiontypes.Leaderboard{}
	}
	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	res, err := db.NewUpdate().
		Model((*Week)(nil)).
		Set("scores = ?::jsonb", string(raw)).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", weekID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update scores: %w", err)
	}
	return requireRow(res)
}

func (r *Impl) ArchiveActiveWeek(ctx context.Context, db bun.IDB, channel string) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model((*Week)(nil)).
		Set("is_archived = true").
		Set("updated_at = ?", time.Now()).
		Where("channel_name = ?", channel).
		Where("is_archived = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive week: %w", err)
	}
	return nil
}

func (r *Impl) ListArchivedWeeks(ctx context.Context, db bun.IDB, channel, from, to string) ([]Week, error) {
	db = r.resolveDB(db)
	var weeks []Week
	err := db.NewSelect().
		Model(&weeks).
		Where("channel_name = ?", channel).
		Where("is_archived = true").
		Where("period_start >= ?", from).
		Where("period_end <= ?", to).
		Order("period_start ASC", "week_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived weeks: %w", err)
	}
	return weeks, nil
}

func requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
