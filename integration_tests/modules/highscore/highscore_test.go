//go:build integration

package highscoreintegrationtests

import (
	"context"
	"fmt"
	"testing"

	highscoreservice "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/application"
	"github.com/Black-And-White-Club/pinball-bot/integration_tests/testutils"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ensure(t *testing.T, deps TestDeps, table highscoretypes.Table) highscoreservice.EnsureOutcome {
	t.Helper()
	result, err := deps.Service.EnsureTable(context.Background(), table)
	require.NoError(t, err)
	require.True(t, result.IsSuccess(), "EnsureTable failed: %v", result.Failure)
	return (*result.Success).Outcome
}

func TestEnsureTable(t *testing.T) {
	deps := setup(t)
	table := testutils.NewTestDataGenerator(1).Table()

	assert.Equal(t, highscoreservice.OutcomeCreated, ensure(t, deps, table))
	assert.Equal(t, highscoreservice.OutcomeAlreadyExists, ensure(t, deps, table))

	next := table
	next.VersionNumber = table.VersionNumber + "b"
	assert.Equal(t, highscoreservice.OutcomeVersionAdded, ensure(t, deps, next))

	versions, err := deps.Repo.ListTableVersions(context.Background(), nil, table.VPSID)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestPostFlowUsesPendingAttachment(t *testing.T) {
	ctx := context.Background()
	deps := setup(t)
	table := highscoretypes.Table{
		VPSID:         "tom-vpw",
		TableName:     "Theatre of Magic (Bally 1995)",
		AuthorName:    "VPW, Ninuzzu",
		VersionNumber: "2.1",
	}
	ensure(t, deps, table)

	candidates, err := deps.Service.RequestHighScorePost(ctx, highscoreservice.PostRequest{
		UserID:        "42",
		Username:      "amy",
		RawScore:      "1,234,567",
		SearchTerm:    "theatre",
		AttachmentURL: "https://cdn.example/amy.png",
	})
	require.NoError(t, err)
	require.True(t, candidates.IsSuccess(), "RequestHighScorePost failed: %v", candidates.Failure)
	require.Len(t, (*candidates.Success).Tables, 1)
	assert.Equal(t, int64(1234567), (*candidates.Success).Score)

	posted, err := deps.Service.SubmitHighScoreSelection(ctx, highscoreservice.SelectionRequest{
		UserID:        "42",
		Username:      "amy",
		VPSID:         table.VPSID,
		VersionNumber: table.VersionNumber,
		Score:         1234567,
	})
	require.NoError(t, err)
	require.True(t, posted.IsSuccess(), "SubmitHighScoreSelection failed: %v", posted.Failure)
	assert.True(t, (*posted.Success).NewTop)
	assert.Equal(t, "https://cdn.example/amy.png", (*posted.Success).Score.PostURL)

	_, ok := deps.Pending.Take("42")
	assert.False(t, ok, "attachment should be consumed")
}

func TestCrossPostAndRemove(t *testing.T) {
	ctx := context.Background()
	deps := setup(t)
	table := testutils.NewTestDataGenerator(3).Table()

	req := highscoreservice.CrossPostRequest{Table: table, Username: "bob", Score: 5000, DoPost: true, Subscript: "#weekly"}

	first, err := deps.Service.CrossPostWeeklyScore(ctx, req)
	require.NoError(t, err)
	require.True(t, first.IsSuccess(), "CrossPostWeeklyScore failed: %v", first.Failure)
	require.NotNil(t, (*first.Success).Posted)
	assert.True(t, (*first.Success).Announce)

	again, err := deps.Service.CrossPostWeeklyScore(ctx, req)
	require.NoError(t, err)
	require.True(t, again.IsSuccess())
	assert.True(t, (*again.Success).Duplicate)

	removed, err := deps.Service.RemoveHighScore(ctx, table.VPSID, "bob", 5000)
	require.NoError(t, err)
	require.True(t, removed.IsSuccess(), "RemoveHighScore failed: %v", removed.Failure)
	assert.Equal(t, 1, (*removed.Success).Removed)

	missing, err := deps.Service.RemoveHighScore(ctx, table.VPSID, "bob", 5000)
	require.NoError(t, err)
	require.NotNil(t, missing.Failure)
	assert.ErrorIs(t, *missing.Failure, highscoreservice.ErrScoreNotFound)
}

func TestGetTableHighScores(t *testing.T) {
	ctx := context.Background()
	deps := setup(t)
	gen := testutils.NewTestDataGenerator(4)
	table := gen.Table()
	ensure(t, deps, table)

	scores := gen.DistinctScores(12)
	for i, score := range scores {
		_, err := deps.Service.CrossPostWeeklyScore(ctx, highscoreservice.CrossPostRequest{
			Table:    table,
			Username: fmt.Sprintf("player%d", i),
			Score:    score,
		})
		require.NoError(t, err)
	}

	result, err := deps.Service.GetTableHighScores(ctx, highscoreservice.TableQuery{VPSID: table.VPSID, Limit: 5})
	require.NoError(t, err)
	require.True(t, result.IsSuccess(), "GetTableHighScores failed: %v", result.Failure)
	require.Len(t, *result.Success, 1)
	top := (*result.Success)[0].Scores
	require.Len(t, top, 5)
	assert.Equal(t, scores[0], top[0].Score)
	assert.Equal(t, scores[4], top[4].Score)

	t.Run("search too broad", func(t *testing.T) {
		for i := 0; i <= 10; i++ {
			ensure(t, deps, highscoretypes.Table{
				VPSID:         fmt.Sprintf("gen-%d", i),
				TableName:     fmt.Sprintf("Generic Table %d", i),
				VersionNumber: "1.0",
			})
		}
		broad, err := deps.Service.GetTableHighScores(ctx, highscoreservice.TableQuery{SearchTerm: "generic"})
		require.NoError(t, err)
		require.NotNil(t, broad.Failure)
		assert.ErrorIs(t, *broad.Failure, highscoreservice.ErrSearchTooBroad)
	})

	t.Run("unknown vps id", func(t *testing.T) {
		missing, err := deps.Service.GetTableHighScores(ctx, highscoreservice.TableQuery{VPSID: "nope"})
		require.NoError(t, err)
		require.NotNil(t, missing.Failure)
		assert.ErrorIs(t, *missing.Failure, highscoreservice.ErrTableNotFound)
	})
}
