package competitiondb

import (
	"time"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// Week is a competition period row. Scores are stored as a jsonb array kept
// in leaderboard order.
type Week struct {
	bun.BaseModel    `bun:"table:weeks,alias:w"`
	ID               int64                        `bun:"id,pk,autoincrement"`
	ChannelName      string                       `bun:"channel_name,notnull"`
	WeekNumber       int                          `bun:"week_number,notnull"`
	PeriodStart      string                       `bun:"period_start,notnull"`
	PeriodEnd        string                       `bun:"period_end,notnull"`
	Table            string                       `bun:"table_name,notnull"`
	AuthorName       string                       `bun:"author_name,nullzero"`
	VersionNumber    string                       `bun:"version_number,nullzero"`
	VPSID            string                       `bun:"vps_id,nullzero"`
	Mode             string                       `bun:"mode,notnull,default:'default'"`
	TableURL         string                       `bun:"table_url,nullzero"`
	ROMURL           string                       `bun:"rom_url,nullzero"`
	ROMName          string                       `bun:"rom_name,nullzero"`
	B2SURL           string                       `bun:"b2s_url,nullzero"`
	Season           *int                         `bun:"season"`
	SeasonWeekNumber *int                         `bun:"season_week_number"`
	Notes            string                       `bun:"notes,nullzero"`
	Scores           competitiontypes.Leaderboard `bun:"scores,type:jsonb,notnull,default:'[]'"`
	IsArchived       bool                         `bun:"is_archived,notnull,default:false"`
	CreatedAt        time.Time                    `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time                    `bun:",nullzero,notnull,default:current_timestamp"`
}

// ToType converts the row to the shared week entity.
func (w *Week) ToType() *competitiontypes.Week {
	scores := w.Scores
	if scores == nil {
		scores = competitiontypes.Leaderboard{}
	}
	return &competitiontypes.Week{
		ChannelName:      w.ChannelName,
		WeekNumber:       w.WeekNumber,
		PeriodStart:      w.PeriodStart,
		PeriodEnd:        w.PeriodEnd,
		Table:            w.Table,
		AuthorName:       w.AuthorName,
		VersionNumber:    w.VersionNumber,
		VPSID:            w.VPSID,
		Mode:             w.Mode,
		TableURL:         w.TableURL,
		ROMURL:           w.ROMURL,
		ROMName:          w.ROMName,
		B2SURL:           w.B2SURL,
		Season:           w.Season,
		SeasonWeekNumber: w.SeasonWeekNumber,
		Notes:            w.Notes,
		Scores:           scores,
		IsArchived:       w.IsArchived,
	}
}

// WeekFromType builds a row from the shared entity. The id is left unset.
func WeekFromType(t *competitiontypes.Week) *Week {
	return &Week{
		ChannelName:      t.ChannelName,
		WeekNumber:       t.WeekNumber,
		PeriodStart:      t.PeriodStart,
		PeriodEnd:        t.PeriodEnd,
		Table:            t.Table,
		AuthorName:       t.AuthorName,
		VersionNumber:    t.VersionNumber,
		VPSID:            t.VPSID,
		Mode:             t.Mode,
		TableURL:         t.TableURL,
		ROMURL:           t.ROMURL,
		ROMName:          t.ROMName,
		B2SURL:           t.B2SURL,
		Season:           t.Season,
		SeasonWeekNumber: t.SeasonWeekNumber,
		Notes:            t.Notes,
		Scores:           t.Scores.Clone(),
		IsArchived:       t.IsArchived,
	}
}
