package seasondb

import (
	"time"

	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/uptrace/bun"
)

// Season is a season row. Dates are stored as YYYY-MM-DD text so they compare
// directly against week periods.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`
	ID            int64     `bun:"id,pk,autoincrement"`
	ChannelName   string    `bun:"channel_name,notnull"`
	SeasonNumber  int       `bun:"season_number,notnull"`
	SeasonName    string    `bun:"season_name,notnull"`
	SeasonStart   string    `bun:"season_start,notnull"`
	SeasonEnd     string    `bun:"season_end,notnull"`
	IsArchived    bool      `bun:"is_archived,notnull,default:false"`
	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (s *Season) ToType() *seasontypes.Season {
	return &seasontypes.Season{
		ChannelName:  s.ChannelName,
		SeasonNumber: s.SeasonNumber,
		SeasonName:   s.SeasonName,
		SeasonStart:  s.SeasonStart,
		SeasonEnd:    s.SeasonEnd,
		IsArchived:   s.IsArchived,
	}
}
