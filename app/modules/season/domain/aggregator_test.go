package seasondomain

import (
	"testing"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/stretchr/testify/assert"
)

func TestAggregateSeason(t *testing.T) {
	tests := []struct {
		name  string
		weeks []competitiontypes.Leaderboard
		want  []seasontypes.SeasonStanding
	}{
		{
			name:  "no weeks",
			weeks: nil,
			want:  []seasontypes.SeasonStanding{},
		},
		{
			name: "case insensitive merge",
			weeks: []competitiontypes.Leaderboard{
				{{Username: "Alice", Score: 1000, Points: 12}, {Username: "Bob", Score: 500, Points: 10}},
				{{Username: "bob", Score: 900, Points: 12}, {Username: "alice", Score: 100, Points: 10}},
			},
			want: []seasontypes.SeasonStanding{
				{Username: "bob", TotalPoints: 22, TotalScore: 1400},
				{Username: "alice", TotalPoints: 22, TotalScore: 1100},
			},
		},
		{
			name: "points then score",
			weeks: []competitiontypes.Leaderboard{
				{{Username: "a", Score: 100, Points: 10}, {Username: "b", Score: 300, Points: 10}, {Username: "c", Score: 50, Points: 12}},
			},
			want: []seasontypes.SeasonStanding{
				{Username: "c", TotalPoints: 12, TotalScore: 50},
				{Username: "b", TotalPoints: 10, TotalScore: 300},
				{Username: "a", TotalPoints: 10, TotalScore: 100},
			},
		},
		{
			name: "residual ties keep first seen order",
			weeks: []competitiontypes.Leaderboard{
				{{Username: "zed", Score: 100, Points: 5}},
				{{Username: "amy", Score: 100, Points: 5}},
			},
			want: []seasontypes.SeasonStanding{
				{Username: "zed", TotalPoints: 5, TotalScore: 100},
				{Username: "amy", TotalPoints: 5, TotalScore: 100},
			},
		},
		{
			name: "zero values count as zero",
			weeks: []competitiontypes.Leaderboard{
				{{Username: "x"}, {Username: "y", Score: 10, Points: 1}},
			},
			want: []seasontypes.SeasonStanding{
				{Username: "y", TotalPoints: 1, TotalScore: 10},
				{Username: "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateSeason(tt.weeks))
		})
	}
}

func TestAggregateSeason_Deterministic(t *testing.T) {
	weeks := []competitiontypes.Leaderboard{
		{{Username: "a", Points: 3}, {Username: "b", Points: 3}, {Username: "c", Points: 3}},
	}
	first := AggregateSeason(weeks)
	for range 20 {
		assert.Equal(t, first, AggregateSeason(weeks))
	}
}

func TestInSeason(t *testing.T) {
	assert.True(t, InSeason("2026-01-05", "2026-01-11", "2026-01-01", "2026-03-31"))
	assert.False(t, InSeason("2025-12-29", "2026-01-04", "2026-01-01", "2026-03-31"))
	assert.False(t, InSeason("2026-03-30", "2026-04-05", "2026-01-01", "2026-03-31"))
}
