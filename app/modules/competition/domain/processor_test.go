package competitiondomain

import (
	"testing"
	"time"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 20, 15, 0, 0, time.UTC)

func player(name string) competitiontypes.Identity {
	return competitiontypes.Identity{UserID: "id-" + name, Username: name}
}

func TestProcessScore_WeeklyScenario(t *testing.T) {
	week := &competitiontypes.Week{ChannelName: "competition-corner", WeekNumber: 1}

	bob := ProcessScore(player("Bob"), 50000, week, fixedNow)
	require.Len(t, bob.Leaderboard, 1)
	assert.Equal(t, int64(50000), bob.Leaderboard[0].Score)
	assert.Equal(t, int64(50000), bob.Leaderboard[0].Diff)
	assert.Equal(t, 12, bob.Leaderboard[0].Points)
	assert.Equal(t, competitiontypes.DefaultMode, bob.Leaderboard[0].Mode)
	assert.Equal(t, "03/14/2026 20:15:00", bob.Leaderboard[0].PostedAt)
	assert.Equal(t, 1, bob.RankChange)
	assert.Equal(t, "1 of 1", bob.CurrentRank)
	assert.True(t, bob.NewEntry)
	assert.Empty(t, week.Scores, "caller leaderboard must be untouched")
	week.Scores = bob.Leaderboard

	amy := ProcessScore(player("Amy"), 70000, week, fixedNow)
	require.Len(t, amy.Leaderboard, 2)
	assert.Equal(t, "Amy", amy.Leaderboard[0].Username)
	assert.Equal(t, 12, amy.Leaderboard[0].Points)
	assert.Equal(t, "Bob", amy.Leaderboard[1].Username)
	assert.Equal(t, 10, amy.Leaderboard[1].Points)
	// New entrant at index 0 of 2 is credited with n-k.
	assert.Equal(t, 2, amy.RankChange)
	assert.Equal(t, "1 of 2", amy.CurrentRank)
	week.Scores = amy.Leaderboard

	bob2 := ProcessScore(player("Bob"), 80000, week, fixedNow)
	require.Len(t, bob2.Leaderboard, 2)
	assert.Equal(t, "Bob", bob2.Leaderboard[0].Username)
	assert.Equal(t, int64(80000), bob2.Leaderboard[0].Score)
	assert.Equal(t, int64(30000), bob2.Leaderboard[0].Diff)
	assert.Equal(t, 12, bob2.Leaderboard[0].Points)
	assert.Equal(t, "Amy", bob2.Leaderboard[1].Username)
	assert.Equal(t, 10, bob2.Leaderboard[1].Points)
	assert.Equal(t, int64(50000), bob2.PreviousScore)
	assert.Equal(t, int64(30000), bob2.ScoreDiff)
	assert.Equal(t, 1, bob2.RankChange)
	assert.False(t, bob2.NewEntry)
}

func TestProcessScore_DoesNotMutateInput(t *testing.T) {
	week := &competitiontypes.Week{Scores: competitiontypes.Leaderboard{
		{Username: "Amy", Score: 300, Points: 12},
		{Username: "Bob", Score: 200, Points: 10},
	}}
	before := week.Scores.Clone()

	_ = ProcessScore(player("Bob"), 400, week, fixedNow)

	if diff := cmp.Diff(before, week.Scores); diff != "" {
		t.Fatalf("input leaderboard mutated (-before +after):\n%s", diff)
	}
}

func TestProcessScore_RankChange(t *testing.T) {
	base := competitiontypes.Leaderboard{
		{Username: "A", Score: 500},
		{Username: "B", Score: 400},
		{Username: "C", Score: 300},
		{Username: "D", Score: 200},
	}

	tests := []struct {
		name       string
		user       string
		score      int64
		wantChange int
		wantRank   string
	}{
		{name: "improves one place", user: "C", score: 450, wantChange: 1, wantRank: "2 of 4"},
		{name: "jumps to first", user: "D", score: 900, wantChange: 3, wantRank: "1 of 4"},
		{name: "unchanged", user: "B", score: 410, wantChange: 0, wantRank: "2 of 4"},
		{name: "drops", user: "A", score: 100, wantChange: -3, wantRank: "4 of 4"},
		{name: "new entrant in middle", user: "E", score: 350, wantChange: 3, wantRank: "3 of 5"},
		{name: "new entrant last", user: "E", score: 1, wantChange: 1, wantRank: "5 of 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := &competitiontypes.Week{Scores: base}
			res := ProcessScore(player(tt.user), tt.score, week, fixedNow)
			assert.Equal(t, tt.wantChange, res.RankChange)
			assert.Equal(t, tt.wantRank, res.CurrentRank)
		})
	}
}

func TestProcessScore_StableTies(t *testing.T) {
	week := &competitiontypes.Week{Scores: competitiontypes.Leaderboard{
		{Username: "First", Score: 100},
		{Username: "Second", Score: 100},
	}}

	res := ProcessScore(player("Third"), 100, week, fixedNow)

	names := []string{res.Leaderboard[0].Username, res.Leaderboard[1].Username, res.Leaderboard[2].Username}
	assert.Equal(t, []string{"First", "Second", "Third"}, names)
	assert.Equal(t, []int{12, 10, 9}, []int{res.Leaderboard[0].Points, res.Leaderboard[1].Points, res.Leaderboard[2].Points})
}

func TestProcessScore_UsernameNormalization(t *testing.T) {
	week := &competitiontypes.Week{Mode: "tournament", Scores: competitiontypes.Leaderboard{{Username: "Amy", Score: 10}}}

	res := ProcessScore(competitiontypes.Identity{UserID: "u1", Username: "`Amy`  "}, 20, week, fixedNow)
	require.Len(t, res.Leaderboard, 1)
	assert.Equal(t, "Amy", res.Username)
	assert.Equal(t, "tournament", res.Mode)
	assert.Equal(t, int64(10), res.PreviousScore)

	res = ProcessScore(competitiontypes.Identity{UserID: "u2", Username: "   "}, 5, week, fixedNow)
	assert.Equal(t, "u2", res.Username)
}

func TestProcessScore_CaseSensitiveLookup(t *testing.T) {
	week := &competitiontypes.Week{Scores: competitiontypes.Leaderboard{{Username: "amy", Score: 10}}}
	res := ProcessScore(player("Amy"), 20, week, fixedNow)
	assert.Len(t, res.Leaderboard, 2)
}

func TestProcessScore_NilWeekPanics(t *testing.T) {
	assert.Panics(t, func() { ProcessScore(player("Bob"), 1, nil, fixedNow) })
}

func TestRemoveAtRank(t *testing.T) {
	lb := competitiontypes.Leaderboard{
		{Username: "A", Score: 300, Points: 12},
		{Username: "B", Score: 200, Points: 10},
		{Username: "C", Score: 100, Points: 9},
	}

	out, removed, err := RemoveAtRank(lb, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Username)
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].Username)
	assert.Equal(t, 12, out[0].Points)
	assert.Equal(t, 10, out[1].Points)
	assert.Equal(t, 12, lb[0].Points, "input untouched")

	for _, rank := range []int{0, 4, -1} {
		_, _, err := RemoveAtRank(lb, rank)
		assert.ErrorIs(t, err, ErrInvalidRank)
	}
}
