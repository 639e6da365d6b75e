package playoffdb

import (
	"time"

	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Playoff is a bracket row. Seeds never change after creation.
type Playoff struct {
	bun.BaseModel `bun:"table:playoffs,alias:p"`
	ID            uuid.UUID                  `bun:"id,pk,type:uuid"`
	ChannelName   string                     `bun:"channel_name,notnull"`
	SeasonNumber  int                        `bun:"season_number,notnull"`
	Seeds         []playofftypes.BracketSeed `bun:"seeds,type:jsonb,notnull"`
	Champion      *playofftypes.MatchupSide  `bun:"champion,type:jsonb"`
	IsArchived    bool                       `bun:"is_archived,notnull,default:false"`
	CreatedAt     time.Time                  `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time                  `bun:",nullzero,notnull,default:current_timestamp"`
}

func (p *Playoff) ToType() *playofftypes.Playoff {
	return &playofftypes.Playoff{
		ID:           p.ID.String(),
		ChannelName:  p.ChannelName,
		SeasonNumber: p.SeasonNumber,
		Seeds:        p.Seeds,
		Champion:     p.Champion,
		IsArchived:   p.IsArchived,
	}
}

// Round is one elimination stage of a playoff. Results holds the resolved
// matchups once the round has been closed by a week.
type Round struct {
	bun.BaseModel `bun:"table:playoff_rounds,alias:pr"`
	ID            uuid.UUID              `bun:"id,pk,type:uuid"`
	PlayoffID     uuid.UUID              `bun:"playoff_id,type:uuid,notnull"`
	ChannelName   string                 `bun:"channel_name,notnull"`
	RoundNumber   int                    `bun:"round_number,notnull"`
	RoundName     string                 `bun:"round_name,notnull"`
	Games         []int                  `bun:"games,type:jsonb,notnull"`
	Results       []playofftypes.Matchup `bun:"results,type:jsonb"`
	WeekNumber    *int                   `bun:"week_number"`
	IsArchived    bool                   `bun:"is_archived,notnull,default:false"`
	CreatedAt     time.Time              `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time              `bun:",nullzero,notnull,default:current_timestamp"`
}

func (r *Round) ToType() playofftypes.PlayoffRound {
	games := r.Games
	if games == nil {
		games = []int{}
	}
	return playofftypes.PlayoffRound{RoundName: r.RoundName, Games: games}
}
