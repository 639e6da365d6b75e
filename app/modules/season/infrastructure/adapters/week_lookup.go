package adapters

import (
	"context"

	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// WeekLookupAdapter adapts the week repository to the season service's WeekLookup port.
type WeekLookupAdapter struct {
	weeks competitiondb.Repository
}

func NewWeekLookupAdapter(weeks competitiondb.Repository) *WeekLookupAdapter {
	return &WeekLookupAdapter{weeks: weeks}
}

func (a *WeekLookupAdapter) ListArchivedLeaderboards(ctx context.Context, channel, from, to string) ([]competitiontypes.Leaderboard, error) {
	rows, err := a.weeks.ListArchivedWeeks(ctx, nil, channel, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]competitiontypes.Leaderboard, len(rows))
	for i := range rows {
		out[i] = rows[i].Scores
	}
	return out, nil
}
