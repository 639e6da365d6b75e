package highscoreservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/internal/correlation"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/metrics"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

var testNow = time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC)

func newTestService(repo *FakeHighScoreRepo) (*HighScoreService, *correlation.Store[string]) {
	pending := correlation.NewStore[string](15*time.Minute, correlation.WithClock[string](func() time.Time { return testNow }))
	svc := NewHighScoreService(repo, pending, slog.Default(), metrics.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)
	svc.now = func() time.Time { return testNow }
	return svc, pending
}

func medievalMadness(version string) highscoretypes.Table {
	return highscoretypes.Table{
		VPSID:         "mm-vps",
		TableName:     "Medieval Madness (Williams 1997)",
		AuthorName:    "VPW, Tom Tower",
		VersionNumber: version,
	}
}

// seeded has one table with two versions and a score on 1.0.
func seeded() *FakeHighScoreRepo {
	repo := NewFakeHighScoreRepo()
	repo.Tables = []highscoredb.TableVersion{
		{ID: 1, VPSID: "mm-vps", TableName: "Medieval Madness (Williams 1997)", Slug: "medieval-madness-williams-1997", VersionNumber: "1.0"},
		{ID: 2, VPSID: "mm-vps", TableName: "Medieval Madness (Williams 1997)", Slug: "medieval-madness-williams-1997", VersionNumber: "2.0"},
		{ID: 3, VPSID: "afm-vps", TableName: "Attack from Mars (Bally 1995)", Slug: "attack-from-mars-bally-1995", VersionNumber: "1.1"},
	}
	repo.Scores = []highscoredb.HighScore{
		{TableID: 1, Username: "amy", Score: 50_000_000, Mode: "default", CreatedAt: testNow.Add(-time.Hour)},
	}
	return repo
}

func TestEnsureTable(t *testing.T) {
	tests := []struct {
		name        string
		repo        *FakeHighScoreRepo
		table       highscoretypes.Table
		want        EnsureOutcome
		wantFailure error
	}{
		{name: "new table", repo: NewFakeHighScoreRepo(), table: medievalMadness("1.0"), want: OutcomeCreated},
		{name: "new version", repo: seeded(), table: medievalMadness("3.0"), want: OutcomeVersionAdded},
		{name: "known version", repo: seeded(), table: medievalMadness("2.0"), want: OutcomeAlreadyExists},
		{name: "missing vps id", repo: NewFakeHighScoreRepo(), table: highscoretypes.Table{TableName: "x"}, wantFailure: ErrVPSIDRequired},
		{name: "missing name", repo: NewFakeHighScoreRepo(), table: highscoretypes.Table{VPSID: "x"}, wantFailure: ErrTableNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.repo)
			res, err := svc.EnsureTable(context.Background(), tt.table)
			require.NoError(t, err)

			if tt.wantFailure != nil {
				require.True(t, res.IsFailure())
				assert.ErrorIs(t, *res.Failure, tt.wantFailure)
				return
			}
			require.True(t, res.IsSuccess())
			assert.Equal(t, tt.want, (*res.Success).Outcome)
			assert.Equal(t, "medieval-madness-williams-1997", (*res.Success).Table.Slug)
			assert.Equal(t, tt.table.VersionNumber, (*res.Success).Table.VersionNumber)
		})
	}
}

func TestRequestHighScorePost(t *testing.T) {
	tooMany := NewFakeHighScoreRepo()
	for i := range 11 {
		tooMany.Tables = append(tooMany.Tables, highscoredb.TableVersion{
			ID: int64(i + 1), VPSID: fmt.Sprintf("t%d", i), TableName: fmt.Sprintf("Twilight Zone mod %d", i), Slug: "twilight-zone",
		})
	}

	tests := []struct {
		name        string
		repo        *FakeHighScoreRepo
		req         PostRequest
		wantFailure error
		wantTables  int
	}{
		{
			name:       "candidates",
			repo:       seeded(),
			req:        PostRequest{UserID: "u1", Username: "bob", RawScore: "61,000,000", SearchTerm: "medieval", AttachmentURL: "https://cdn/img.png"},
			wantTables: 2,
		},
		{
			name:        "invalid score",
			repo:        seeded(),
			req:         PostRequest{UserID: "u1", Username: "bob", RawScore: "lots", SearchTerm: "medieval"},
			wantFailure: &competitiondomain.ValidationError{},
		},
		{
			name:        "nothing matches",
			repo:        seeded(),
			req:         PostRequest{UserID: "u1", Username: "bob", RawScore: "10", SearchTerm: "funhouse"},
			wantFailure: ErrNoTablesFound,
		},
		{
			name:        "too broad",
			repo:        tooMany,
			req:         PostRequest{UserID: "u1", Username: "bob", RawScore: "10", SearchTerm: "twilight"},
			wantFailure: ErrSearchTooBroad,
		},
		{
			name:        "empty search",
			repo:        seeded(),
			req:         PostRequest{UserID: "u1", Username: "bob", RawScore: "10", SearchTerm: "  "},
			wantFailure: ErrSearchTermRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pending := newTestService(tt.repo)
			res, err := svc.RequestHighScorePost(context.Background(), tt.req)
			require.NoError(t, err)

			if tt.wantFailure != nil {
				require.True(t, res.IsFailure())
				var verr *competitiondomain.ValidationError
				if errors.As(tt.wantFailure, &verr) {
					assert.ErrorAs(t, *res.Failure, &verr)
				} else {
					assert.ErrorIs(t, *res.Failure, tt.wantFailure)
				}
				assert.Equal(t, 0, pending.Len())
				return
			}

			require.True(t, res.IsSuccess())
			assert.Equal(t, int64(61_000_000), (*res.Success).Score)
			assert.Len(t, (*res.Success).Tables, tt.wantTables)
			url, ok := pending.Peek("u1")
			assert.True(t, ok)
			assert.Equal(t, tt.req.AttachmentURL, url)
		})
	}
}

func TestSubmitHighScoreSelection(t *testing.T) {
	t.Run("new top score takes pending attachment", func(t *testing.T) {
		repo := seeded()
		svc, pending := newTestService(repo)
		pending.Put("u1", "https://cdn/img.png")

		res, err := svc.SubmitHighScoreSelection(context.Background(), SelectionRequest{
			UserID: "u1", Username: "bob", VPSID: "mm-vps", VersionNumber: "1.0", Score: 61_000_000,
		})
		require.NoError(t, err)
		require.True(t, res.IsSuccess())

		posted := *res.Success
		assert.True(t, posted.NewTop)
		assert.Equal(t, "https://cdn/img.png", posted.Score.PostURL)
		assert.Equal(t, "default", posted.Score.Mode)
		assert.Equal(t, testNow, posted.Score.CreatedAt)
		require.Len(t, posted.TopScores, 2)
		assert.Equal(t, "bob", posted.TopScores[0].Username)
		assert.Equal(t, 0, pending.Len())
	})

	t.Run("lower score is not a new top", func(t *testing.T) {
		svc, _ := newTestService(seeded())
		res, err := svc.SubmitHighScoreSelection(context.Background(), SelectionRequest{
			Username: "bob", VPSID: "mm-vps", VersionNumber: "1.0", Score: 10,
		})
		require.NoError(t, err)
		require.True(t, res.IsSuccess())
		assert.False(t, (*res.Success).NewTop)
		assert.Empty(t, (*res.Success).Score.PostURL)
	})

	t.Run("unknown version", func(t *testing.T) {
		svc, _ := newTestService(seeded())
		res, err := svc.SubmitHighScoreSelection(context.Background(), SelectionRequest{
			Username: "bob", VPSID: "mm-vps", VersionNumber: "9.9", Score: 10,
		})
		require.NoError(t, err)
		require.True(t, res.IsFailure())
		assert.ErrorIs(t, *res.Failure, ErrTableNotFound)
	})

	t.Run("score out of range", func(t *testing.T) {
		svc, _ := newTestService(seeded())
		res, err := svc.SubmitHighScoreSelection(context.Background(), SelectionRequest{
			Username: "bob", VPSID: "mm-vps", VersionNumber: "1.0", Score: 0,
		})
		require.NoError(t, err)
		require.True(t, res.IsFailure())
	})
}

func TestCrossPostWeeklyScore(t *testing.T) {
	req := CrossPostRequest{
		Table:     medievalMadness("1.0"),
		UserID:    "u2",
		Username:  "cat",
		Score:     90_000,
		Mode:      "default",
		Subscript: "#competition-corner",
		DoPost:    true,
	}

	t.Run("records and announces", func(t *testing.T) {
		repo := seeded()
		svc, _ := newTestService(repo)

		res, err := svc.CrossPostWeeklyScore(context.Background(), req)
		require.NoError(t, err)
		require.True(t, res.IsSuccess())
		got := *res.Success
		assert.False(t, got.Duplicate)
		assert.True(t, got.Announce)
		assert.Equal(t, "#competition-corner", got.Subscript)
		require.NotNil(t, got.Posted)
		assert.Equal(t, int64(1), repo.Scores[len(repo.Scores)-1].TableID)
		assert.Len(t, repo.Tables, 3, "existing version reused")
	})

	t.Run("registers an unknown version", func(t *testing.T) {
		repo := seeded()
		svc, _ := newTestService(repo)

		r := req
		r.Table = medievalMadness("4.0")
		r.DoPost = false
		res, err := svc.CrossPostWeeklyScore(context.Background(), r)
		require.NoError(t, err)
		require.True(t, res.IsSuccess())
		assert.False(t, (*res.Success).Announce)
		assert.Len(t, repo.Tables, 4)
		assert.True(t, (*res.Success).Posted.NewTop)
	})

	t.Run("duplicate is skipped", func(t *testing.T) {
		repo := seeded()
		svc, _ := newTestService(repo)

		r := req
		r.Username = "amy"
		r.Score = 50_000_000
		res, err := svc.CrossPostWeeklyScore(context.Background(), r)
		require.NoError(t, err)
		require.True(t, res.IsSuccess())
		assert.True(t, (*res.Success).Duplicate)
		assert.Nil(t, (*res.Success).Posted)
		assert.NotContains(t, repo.trace, "InsertScore")
	})

	t.Run("insert error", func(t *testing.T) {
		repo := seeded()
		repo.InsertScoreFunc = func(context.Context, bun.IDB, *highscoredb.HighScore) error {
			return errors.New("db down")
		}
		svc, _ := newTestService(repo)

		_, err := svc.CrossPostWeeklyScore(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestRemoveHighScore(t *testing.T) {
	repo := seeded()
	repo.Scores = append(repo.Scores, highscoredb.HighScore{TableID: 2, Username: "amy", Score: 50_000_000})
	svc, _ := newTestService(repo)

	res, err := svc.RemoveHighScore(context.Background(), "mm-vps", "amy", 50_000_000)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 2, (*res.Success).Removed)
	assert.Empty(t, repo.Scores)

	res, err = svc.RemoveHighScore(context.Background(), "mm-vps", "amy", 50_000_000)
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.ErrorIs(t, *res.Failure, ErrScoreNotFound)
}

func TestGetTableHighScores(t *testing.T) {
	repo := seeded()
	for i := range 12 {
		repo.Scores = append(repo.Scores, highscoredb.HighScore{TableID: 2, Username: fmt.Sprintf("p%d", i), Score: int64(1000 + i)})
	}
	svc, _ := newTestService(repo)

	t.Run("by vps id", func(t *testing.T) {
		res, err := svc.GetTableHighScores(context.Background(), TableQuery{VPSID: "mm-vps", Limit: 5})
		require.NoError(t, err)
		require.True(t, res.IsSuccess())
		tables := *res.Success
		require.Len(t, tables, 2)
		assert.Len(t, tables[0].Scores, 1)
		require.Len(t, tables[1].Scores, 5)
		assert.Equal(t, int64(1011), tables[1].Scores[0].Score)
	})

	t.Run("default limit", func(t *testing.T) {
		res, err := svc.GetTableHighScores(context.Background(), TableQuery{VPSID: "mm-vps"})
		require.NoError(t, err)
		assert.Len(t, (*res.Success)[1].Scores, 10)
	})

	t.Run("by search", func(t *testing.T) {
		res, err := svc.GetTableHighScores(context.Background(), TableQuery{SearchTerm: "attack"})
		require.NoError(t, err)
		require.True(t, res.IsSuccess())
		require.Len(t, *res.Success, 1)
		assert.Equal(t, "afm-vps", (*res.Success)[0].Table.VPSID)
		assert.Empty(t, (*res.Success)[0].Scores)
	})

	t.Run("unknown vps id", func(t *testing.T) {
		res, err := svc.GetTableHighScores(context.Background(), TableQuery{VPSID: "nope"})
		require.NoError(t, err)
		require.True(t, res.IsFailure())
		assert.ErrorIs(t, *res.Failure, ErrTableNotFound)
	})

	t.Run("no query", func(t *testing.T) {
		res, err := svc.GetTableHighScores(context.Background(), TableQuery{})
		require.NoError(t, err)
		require.True(t, res.IsFailure())
		assert.ErrorIs(t, *res.Failure, ErrSearchTermRequired)
	})

	t.Run("repository error", func(t *testing.T) {
		broken := seeded()
		broken.ListTableVersionsFunc = func(context.Context, bun.IDB, string) ([]highscoredb.TableVersion, error) {
			return nil, errors.New("db down")
		}
		svc, _ := newTestService(broken)
		_, err := svc.GetTableHighScores(context.Background(), TableQuery{VPSID: "mm-vps"})
		assert.Error(t, err)
	})
}
