package seasonservice

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	seasondb "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/metrics"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/trace/noop"
)

const testChannel = "competition-corner"

func newTestService(repo *FakeSeasonRepo, weeks *FakeWeekLookup) *SeasonService {
	svc := NewSeasonService(repo, weeks, slog.Default(), metrics.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC) }
	return svc
}

func activeSeason() *seasondb.Season {
	return &seasondb.Season{
		ID:           3,
		ChannelName:  testChannel,
		SeasonNumber: 4,
		SeasonName:   "Spring",
		SeasonStart:  "2026-03-01",
		SeasonEnd:    "2026-05-31",
	}
}

func TestCreateSeason(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateSeasonRequest
		active      *seasondb.Season
		wantFailure error
		want        *seasontypes.Season
		wantTrace   []string
	}{
		{
			name:   "continues numbering from the active season",
			req:    CreateSeasonRequest{ChannelName: testChannel, SeasonStart: "2026-06-01", SeasonEnd: "2026-08-31"},
			active: activeSeason(),
			want: &seasontypes.Season{
				ChannelName: testChannel, SeasonNumber: 5, SeasonName: "Season 5",
				SeasonStart: "2026-06-01", SeasonEnd: "2026-08-31",
			},
			wantTrace: []string{"GetActiveSeasonForUpdate", "ArchiveActiveSeason", "InsertSeason"},
		},
		{
			name: "first season with explicit number and name",
			req:  CreateSeasonRequest{ChannelName: testChannel, SeasonNumber: 9, SeasonName: " Summer Slam ", SeasonStart: "today", SeasonEnd: "2026-04-30"},
			want: &seasontypes.Season{
				ChannelName: testChannel, SeasonNumber: 9, SeasonName: "Summer Slam",
				SeasonStart: "2026-03-11", SeasonEnd: "2026-04-30",
			},
			wantTrace: []string{"GetActiveSeasonForUpdate", "ArchiveActiveSeason", "InsertSeason"},
		},
		{
			name:        "end before start",
			req:         CreateSeasonRequest{ChannelName: testChannel, SeasonStart: "2026-06-01", SeasonEnd: "2026-05-01"},
			wantFailure: ErrInvalidSeasonRange,
			wantTrace:   []string{},
		},
		{
			name:        "missing channel",
			req:         CreateSeasonRequest{SeasonStart: "2026-06-01", SeasonEnd: "2026-07-01"},
			wantFailure: ErrChannelRequired,
			wantTrace:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeSeasonRepo()
			if tt.active != nil {
				repo.GetActiveSeasonForUpdateFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
					return tt.active, nil
				}
			}
			svc := newTestService(repo, &FakeWeekLookup{})

			result, err := svc.CreateSeason(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrace, repo.Trace())

			if tt.wantFailure != nil {
				require.True(t, result.IsFailure())
				assert.ErrorIs(t, *result.Failure, tt.wantFailure)
				return
			}
			require.True(t, result.IsSuccess())
			assert.Equal(t, tt.want, *result.Success)
		})
	}
}

func TestEditCurrentSeason(t *testing.T) {
	repo := NewFakeSeasonRepo()
	repo.GetActiveSeasonForUpdateFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
		return activeSeason(), nil
	}
	svc := newTestService(repo, &FakeWeekLookup{})

	result, err := svc.EditCurrentSeason(context.Background(), testChannel, SeasonUpdate{})
	require.NoError(t, err)
	assert.ErrorIs(t, *result.Failure, ErrNoFieldsToUpdate)

	end := "2026-06-15"
	result, err = svc.EditCurrentSeason(context.Background(), testChannel, SeasonUpdate{SeasonEnd: &end})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Equal(t, "2026-06-15", (*result.Success).SeasonEnd)
	assert.Equal(t, "2026-03-01", (*result.Success).SeasonStart)

	zero := 0
	result, err = svc.EditCurrentSeason(context.Background(), testChannel, SeasonUpdate{SeasonNumber: &zero})
	require.NoError(t, err)
	assert.ErrorIs(t, *result.Failure, ErrInvalidSeasonNumber)
}

func TestGetCurrentSeason(t *testing.T) {
	repo := NewFakeSeasonRepo()
	svc := newTestService(repo, &FakeWeekLookup{})

	result, err := svc.GetCurrentSeason(context.Background(), testChannel)
	require.NoError(t, err)
	assert.ErrorIs(t, *result.Failure, ErrNoActiveSeason)

	repo.GetActiveSeasonFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
		return nil, errors.New("connection refused")
	}
	_, err = svc.GetCurrentSeason(context.Background(), testChannel)
	assert.Error(t, err)
}

func seasonWeeks() []competitiontypes.Leaderboard {
	return []competitiontypes.Leaderboard{
		{{Username: "Amy", Score: 500, Points: 12}, {Username: "bob", Score: 400, Points: 10}},
		{{Username: "bob", Score: 900, Points: 12}, {Username: "amy", Score: 100, Points: 10}},
		{{Username: "cat", Score: 50, Points: 12}},
	}
}

func TestGetSeasonStandings(t *testing.T) {
	repo := NewFakeSeasonRepo()
	repo.GetActiveSeasonFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
		return activeSeason(), nil
	}
	weeks := &FakeWeekLookup{Weeks: seasonWeeks()}
	svc := newTestService(repo, weeks)

	result, err := svc.GetSeasonStandings(context.Background(), testChannel, 0)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	got := *result.Success
	assert.Equal(t, 3, got.Weeks)
	assert.Equal(t, "2026-03-01", weeks.gotFrom)
	assert.Equal(t, "2026-05-31", weeks.gotTo)
	assert.Equal(t, []seasontypes.SeasonStanding{
		{Username: "bob", TotalPoints: 22, TotalScore: 1300},
		{Username: "amy", TotalPoints: 22, TotalScore: 600},
		{Username: "cat", TotalPoints: 12, TotalScore: 50},
	}, got.Standings)
}

func TestGetSeasonStandings_ByNumber(t *testing.T) {
	repo := NewFakeSeasonRepo()
	svc := newTestService(repo, &FakeWeekLookup{})

	result, err := svc.GetSeasonStandings(context.Background(), testChannel, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, *result.Failure, ErrSeasonNotFound)
	assert.Equal(t, []string{"GetSeasonByNumber"}, repo.Trace())

	repo.GetActiveSeasonFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
		return activeSeason(), nil
	}
	failing := newTestService(repo, &FakeWeekLookup{Err: errors.New("boom")})
	_, err = failing.GetSeasonStandings(context.Background(), testChannel, 0)
	assert.Error(t, err)
}

func TestRenderStandingsChart(t *testing.T) {
	repo := NewFakeSeasonRepo()
	repo.GetActiveSeasonFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
		return activeSeason(), nil
	}

	for _, weeks := range [][]competitiontypes.Leaderboard{seasonWeeks(), nil} {
		svc := newTestService(repo, &FakeWeekLookup{Weeks: weeks})

		result, err := svc.RenderStandingsChart(context.Background(), testChannel, 0, 2)
		require.NoError(t, err)
		require.True(t, result.IsSuccess())

		report := *result.Success
		assert.Equal(t, "image/png", report.ContentType)
		assert.Equal(t, "season-4-standings.png", report.Filename)
		assert.True(t, bytes.HasPrefix(report.Data, []byte("\x89PNG")))
	}
}

func TestExportStandings(t *testing.T) {
	repo := NewFakeSeasonRepo()
	repo.GetActiveSeasonFunc = func(context.Context, bun.IDB, string) (*seasondb.Season, error) {
		return activeSeason(), nil
	}
	svc := newTestService(repo, &FakeWeekLookup{Weeks: seasonWeeks()})

	result, err := svc.ExportStandings(context.Background(), testChannel, 0)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	f, err := excelize.OpenReader(bytes.NewReader((*result.Success).Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Standings")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Rank", "Player", "Points", "Total Score"}, rows[0])
	assert.Equal(t, []string{"1", "bob", "22", "1300"}, rows[1])
	assert.Equal(t, []string{"3", "cat", "12", "50"}, rows[3])
}
