// Package seasondomain folds weekly leaderboards into season standings.
package seasondomain

import (
	"slices"
	"strings"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
)

// AggregateSeason sums points and scores per lower-cased username across weeks
// and orders the result by total points, then total score. Players still tied
// keep the order in which they were first seen.
func AggregateSeason(weeks []competitiontypes.Leaderboard) []seasontypes.SeasonStanding {
	index := make(map[string]int)
	standings := make([]seasontypes.SeasonStanding, 0)

	for _, week := range weeks {
		for _, entry := range week {
			key := strings.ToLower(entry.Username)
			i, ok := index[key]
			if !ok {
				i = len(standings)
				index[key] = i
				standings = append(standings, seasontypes.SeasonStanding{Username: key})
			}
			standings[i].TotalPoints += entry.Points
			standings[i].TotalScore += entry.Score
		}
	}

	slices.SortStableFunc(standings, func(a, b seasontypes.SeasonStanding) int {
		if a.TotalPoints != b.TotalPoints {
			return b.TotalPoints - a.TotalPoints
		}
		switch {
		case a.TotalScore > b.TotalScore:
			return -1
		case a.TotalScore < b.TotalScore:
			return 1
		}
		return 0
	})
	return standings
}

// InSeason reports whether a week's period lies within the season window.
// Dates are compared as YYYY-MM-DD strings.
func InSeason(periodStart, periodEnd, seasonStart, seasonEnd string) bool {
	return periodStart >= seasonStart && periodEnd <= seasonEnd
}
