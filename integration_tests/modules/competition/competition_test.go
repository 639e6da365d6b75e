//go:build integration

package competitionintegrationtests

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/integration_tests/testutils"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channel = "competition-corner"

func createWeek(t *testing.T, deps TestDeps, gen *testutils.TestDataGenerator) *competitiontypes.Week {
	t.Helper()
	result, err := deps.Service.CreateWeek(context.Background(), gen.WeekRequest(channel))
	require.NoError(t, err)
	require.True(t, result.IsSuccess(), "CreateWeek failed: %v", result.Failure)
	return (*result.Success).Week
}

func TestCreateWeek(t *testing.T) {
	ctx := context.Background()

	t.Run("first week starts at one and queues the table", func(t *testing.T) {
		deps := setup(t)
		gen := testutils.NewTestDataGenerator(1)

		week := createWeek(t, deps, gen)
		assert.Equal(t, 1, week.WeekNumber)
		assert.Equal(t, competitiontypes.DefaultMode, week.Mode)
		assert.Nil(t, week.Season)

		row, err := deps.Repo.GetActiveWeek(ctx, deps.Env.DB, channel)
		require.NoError(t, err)
		assert.Equal(t, week.Table, row.Table)
		assert.Equal(t, []string{queue.KindEnsureHighScore}, deps.Jobs.Kinds())
	})

	t.Run("next week archives the previous one", func(t *testing.T) {
		deps := setup(t)
		gen := testutils.NewTestDataGenerator(2)
		deps.Seasons.season = &seasontypes.Season{ChannelName: channel, SeasonNumber: 4}

		first := createWeek(t, deps, gen)
		players := gen.Players(2)
		for i, p := range players {
			_, err := deps.Service.PostScore(ctx, competitionservice.PostScoreRequest{
				ChannelName: channel,
				User:        p,
				RawScore:    []string{"2,000,000", "1000000"}[i],
			})
			require.NoError(t, err)
		}

		second := createWeek(t, deps, gen)
		assert.Equal(t, first.WeekNumber+1, second.WeekNumber)
		require.NotNil(t, second.SeasonWeekNumber)
		assert.Equal(t, 2, *second.SeasonWeekNumber)

		archived, err := deps.Repo.ListArchivedWeeks(ctx, deps.Env.DB, channel, "1900-01-01", "2999-12-31")
		require.NoError(t, err)
		require.Len(t, archived, 1)
		assert.Equal(t, first.WeekNumber, archived[0].WeekNumber)

		advances := testutils.JobsOf[queue.AdvancePlayoffRoundJob](deps.Jobs)
		require.Len(t, advances, 1)
		assert.Equal(t, first.WeekNumber, advances[0].WeekNumber)
		assert.Len(t, advances[0].Leaderboard, 2)

		bragging := testutils.JobsOf[queue.BraggingRightsJob](deps.Jobs)
		require.Len(t, bragging, 1)
		assert.Equal(t, players[0].Username, bragging[0].Winner.Username)
	})

	t.Run("missing rom is rejected", func(t *testing.T) {
		deps := setup(t)
		req := testutils.NewTestDataGenerator(3).WeekRequest(channel)
		req.ROMURL = ""

		result, err := deps.Service.CreateWeek(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, result.Failure)
		assert.ErrorIs(t, *result.Failure, competitionservice.ErrMissingROMURL)

		_, err = deps.Repo.GetActiveWeek(ctx, deps.Env.DB, channel)
		assert.ErrorIs(t, err, competitiondb.ErrNotFound)
	})
}

func TestPostScore(t *testing.T) {
	ctx := context.Background()

	t.Run("leaderboard is ranked and scored", func(t *testing.T) {
		deps := setup(t)
		gen := testutils.NewTestDataGenerator(10)
		createWeek(t, deps, gen)

		players := gen.Players(3)
		for i, raw := range []string{"1,500,000", "3,000,000", "2000000"} {
			result, err := deps.Service.PostScore(ctx, competitionservice.PostScoreRequest{
				ChannelName: channel,
				User:        players[i],
				RawScore:    raw,
			})
			require.NoError(t, err)
			require.True(t, result.IsSuccess(), "PostScore failed: %v", result.Failure)
		}

		row, err := deps.Repo.GetActiveWeek(ctx, deps.Env.DB, channel)
		require.NoError(t, err)
		week := row.ToType()
		require.Len(t, week.Scores, 3)
		assert.Equal(t, players[1].Username, week.Scores[0].Username)
		assert.Equal(t, 12, week.Scores[0].Points)
		assert.Equal(t, players[2].Username, week.Scores[1].Username)
		assert.Equal(t, 10, week.Scores[1].Points)
		assert.Equal(t, players[0].Username, week.Scores[2].Username)
		assert.Equal(t, 9, week.Scores[2].Points)

		crossPosts := testutils.JobsOf[queue.CrossPostHighScoreJob](deps.Jobs)
		require.Len(t, crossPosts, 3)
		for _, job := range crossPosts {
			assert.True(t, job.DoPost, "rank within cutoff should be announced")
		}
	})

	t.Run("no week is a failure", func(t *testing.T) {
		deps := setup(t)
		result, err := deps.Service.PostScore(ctx, competitionservice.PostScoreRequest{
			ChannelName: channel,
			User:        competitiontypes.Identity{Username: "amy"},
			RawScore:    "100",
		})
		require.NoError(t, err)
		require.NotNil(t, result.Failure)
		assert.ErrorIs(t, *result.Failure, competitionservice.ErrNoActiveWeek)
	})

	t.Run("concurrent posts are all kept", func(t *testing.T) {
		deps := setup(t)
		gen := testutils.NewTestDataGenerator(11)
		createWeek(t, deps, gen)

		players := gen.Players(8)
		scores := gen.DistinctScores(len(players))

		var wg sync.WaitGroup
		errs := make(chan error, len(players))
		for i := range players {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				result, err := deps.Service.PostScore(ctx, competitionservice.PostScoreRequest{
					ChannelName: channel,
					User:        players[i],
					RawScore:    strconv.FormatInt(scores[i], 10),
				})
				if err == nil && !result.IsSuccess() {
					err = errors.New("post rejected")
				}
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		row, err := deps.Repo.GetActiveWeek(ctx, deps.Env.DB, channel)
		require.NoError(t, err)
		require.Len(t, row.Scores, len(players))
		for i := range players {
			assert.Equal(t, scores[i], row.Scores[i].Score)
		}
	})
}

func TestRemoveScore(t *testing.T) {
	ctx := context.Background()
	deps := setup(t)
	gen := testutils.NewTestDataGenerator(20)
	createWeek(t, deps, gen)

	players := gen.Players(2)
	for i, raw := range []string{"900", "800"} {
		_, err := deps.Service.PostScore(ctx, competitionservice.PostScoreRequest{ChannelName: channel, User: players[i], RawScore: raw})
		require.NoError(t, err)
	}

	result, err := deps.Service.RemoveScore(ctx, channel, 1)
	require.NoError(t, err)
	require.True(t, result.IsSuccess(), "RemoveScore failed: %v", result.Failure)
	assert.Equal(t, players[0].Username, (*result.Success).Removed.Username)

	row, err := deps.Repo.GetActiveWeek(ctx, deps.Env.DB, channel)
	require.NoError(t, err)
	require.Len(t, row.Scores, 1)
	assert.Equal(t, players[1].Username, row.Scores[0].Username)
	assert.Equal(t, 12, row.Scores[0].Points)

	removals := testutils.JobsOf[queue.RemoveHighScoreJob](deps.Jobs)
	require.Len(t, removals, 1)
	assert.Equal(t, int64(900), removals[0].Score)
}
