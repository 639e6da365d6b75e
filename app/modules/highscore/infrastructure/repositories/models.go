package highscoredb

import (
	"time"

	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TableVersion is one version of a table that accepts high scores. A table
// is identified by its VPS id, and each version by (vps_id, version_number).
type TableVersion struct {
	bun.BaseModel `bun:"table:highscore_tables,alias:ht"`
	ID            int64     `bun:"id,pk,autoincrement"`
	VPSID         string    `bun:"vps_id,notnull"`
	TableName     string    `bun:"table_name,notnull"`
	Slug          string    `bun:"slug,notnull"`
	AuthorName    string    `bun:"author_name,nullzero"`
	VersionNumber string    `bun:"version_number,notnull,default:''"`
	VersionURL    string    `bun:"version_url,nullzero"`
	ROMName       string    `bun:"rom_name,nullzero"`
	Comment       string    `bun:"comment,nullzero"`
	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (t *TableVersion) ToType() highscoretypes.Table {
	return highscoretypes.Table{
		VPSID:         t.VPSID,
		TableName:     t.TableName,
		Slug:          t.Slug,
		AuthorName:    t.AuthorName,
		VersionNumber: t.VersionNumber,
		VersionURL:    t.VersionURL,
		ROMName:       t.ROMName,
		Comment:       t.Comment,
	}
}

// TableVersionFromType builds a row for insertion.
func TableVersionFromType(t highscoretypes.Table) *TableVersion {
	return &TableVersion{
		VPSID:         t.VPSID,
		TableName:     t.TableName,
		Slug:          t.Slug,
		AuthorName:    t.AuthorName,
		VersionNumber: t.VersionNumber,
		VersionURL:    t.VersionURL,
		ROMName:       t.ROMName,
		Comment:       t.Comment,
	}
}

// HighScore is a score recorded against a table version.
type HighScore struct {
	bun.BaseModel `bun:"table:highscores,alias:hs"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	TableID       int64     `bun:"table_id,notnull"`
	UserID        string    `bun:"user_id,nullzero"`
	Username      string    `bun:"username,notnull"`
	Score         int64     `bun:"score,notnull"`
	Mode          string    `bun:"mode,notnull,default:'default'"`
	PostURL       string    `bun:"post_url,nullzero"`
	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (s *HighScore) ToType() highscoretypes.Score {
	return highscoretypes.Score{
		ID:        s.ID.String(),
		UserID:    s.UserID,
		Username:  s.Username,
		Score:     s.Score,
		Mode:      s.Mode,
		PostURL:   s.PostURL,
		CreatedAt: s.CreatedAt,
	}
}
