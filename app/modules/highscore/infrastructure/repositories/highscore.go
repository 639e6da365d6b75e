package highscoredb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a table version does not exist.
var ErrNotFound = errors.New("high score table not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new high score repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetTable(ctx context.Context, db bun.IDB, vpsID, versionNumber string) (*TableVersion, error) {
	db = r.resolveDB(db)
	table := new(TableVersion)
	err := db.NewSelect().
		Model(table).
		Where("vps_id = ?", vpsID).
		Where("version_number = ?", versionNumber).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get high score table: %w", err)
	}
	return table, nil
}

func (r *Impl) ListTableVersions(ctx context.Context, db bun.IDB, vpsID string) ([]TableVersion, error) {
	db = r.resolveDB(db)
	var tables []TableVersion
	err := db.NewSelect().
		Model(&tables).
		Where("vps_id = ?", vpsID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list table versions: %w", err)
	}
	return tables, nil
}

func (r *Impl) InsertTable(ctx context.Context, db bun.IDB, table *TableVersion) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(table).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert high score table: %w", err)
	}
	return nil
}

func (r *Impl) SearchTables(ctx context.Context, db bun.IDB, term string, limit int) ([]TableVersion, error) {
	db = r.resolveDB(db)
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"
	var tables []TableVersion
	q := db.NewSelect().
		Model(&tables).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("table_name ILIKE ?", pattern).WhereOr("slug ILIKE ?", pattern)
		}).
		Order("table_name ASC", "id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to search high score tables: %w", err)
	}
	return tables, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *Impl) ListScores(ctx context.Context, db bun.IDB, tableID int64) ([]HighScore, error) {
	db = r.resolveDB(db)
	var scores []HighScore
	err := db.NewSelect().
		Model(&scores).
		Where("table_id = ?", tableID).
		Order("score DESC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list high scores: %w", err)
	}
	return scores, nil
}

func (r *Impl) InsertScore(ctx context.Context, db bun.IDB, score *HighScore) error {
	db = r.resolveDB(db)
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(score).Returning("created_at").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert high score: %w", err)
	}
	return nil
}

func (r *Impl) DeleteScores(ctx context.Context, db bun.IDB, vpsID, username string, score int64) (int, error) {
	db = r.resolveDB(db)
	versions := db.NewSelect().
		Model((*TableVersion)(nil)).
		Column("id").
		Where("vps_id = ?", vpsID)
	res, err := db.NewDelete().
		Model((*HighScore)(nil)).
		Where("table_id IN (?)", versions).
		Where("username = ?", username).
		Where("score = ?", score).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete high scores: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(rows), nil
}
