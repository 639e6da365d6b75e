package competitionservice

import (
	"context"

	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/riverqueue/river"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Week Repo
// ------------------------

type FakeWeekRepo struct {
	trace []string

	GetActiveWeekFunc          func(ctx context.Context, db bun.IDB, channel string) (*competitiondb.Week, error)
	GetActiveWeekForUpdateFunc func(ctx context.Context, db bun.IDB, channel string) (*competitiondb.Week, error)
	InsertWeekFunc             func(ctx context.Context, db bun.IDB, week *competitiondb.Week) error
	UpdateWeekFunc             func(ctx context.Context, db bun.IDB, week *competitiondb.Week) error
	UpdateScoresFunc           func(ctx context.Context, db bun.IDB, weekID int64, scores competitiontypes.Leaderboard) error
	ArchiveActiveWeekFunc      func(ctx context.Context, db bun.IDB, channel string) error
	ListArchivedWeeksFunc      func(ctx context.Context, db bun.IDB, channel, from, to string) ([]competitiondb.Week, error)
}

func NewFakeWeekRepo() *FakeWeekRepo {
	return &FakeWeekRepo{trace: []string{}}
}

func (f *FakeWeekRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeWeekRepo) GetActiveWeek(ctx context.Context, db bun.IDB, channel string) (*competitiondb.Week, error) {
	f.record("GetActiveWeek")
	if f.GetActiveWeekFunc != nil {
		return f.GetActiveWeekFunc(ctx, db, channel)
	}
	return nil, competitiondb.ErrNotFound
}

func (f *FakeWeekRepo) GetActiveWeekForUpdate(ctx context.Context, db bun.IDB, channel string) (*competitiondb.Week, error) {
	f.record("GetActiveWeekForUpdate")
	if f.GetActiveWeekForUpdateFunc != nil {
		return f.GetActiveWeekForUpdateFunc(ctx, db, channel)
	}
	return nil, competitiondb.ErrNotFound
}

func (f *FakeWeekRepo) InsertWeek(ctx context.Context, db bun.IDB, week *competitiondb.Week) error {
	f.record("InsertWeek")
	if f.InsertWeekFunc != nil {
		return f.InsertWeekFunc(ctx, db, week)
	}
	return nil
}

func (f *FakeWeekRepo) UpdateWeek(ctx context.Context, db bun.IDB, week *competitiondb.Week) error {
	f.record("UpdateWeek")
	if f.UpdateWeekFunc != nil {
		return f.UpdateWeekFunc(ctx, db, week)
	}
	return nil
}

func (f *FakeWeekRepo) UpdateScores(ctx context.Context, db bun.IDB, weekID int64, scores competitiontypes.Leaderboard) error {
	f.record("UpdateScores")
	if f.UpdateScoresFunc != nil {
		return f.UpdateScoresFunc(ctx, db, weekID, scores)
	}
	return nil
}

func (f *FakeWeekRepo) ArchiveActiveWeek(ctx context.Context, db bun.IDB, channel string) error {
	f.record("ArchiveActiveWeek")
	if f.ArchiveActiveWeekFunc != nil {
		return f.ArchiveActiveWeekFunc(ctx, db, channel)
	}
	return nil
}

func (f *FakeWeekRepo) ListArchivedWeeks(ctx context.Context, db bun.IDB, channel, from, to string) ([]competitiondb.Week, error) {
	f.record("ListArchivedWeeks")
	if f.ListArchivedWeeksFunc != nil {
		return f.ListArchivedWeeksFunc(ctx, db, channel, from, to)
	}
	return nil, nil
}

func (f *FakeWeekRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ competitiondb.Repository = (*FakeWeekRepo)(nil)

// ------------------------
// Fake Enqueuer
// ------------------------

type FakeEnqueuer struct {
	Jobs        []river.JobArgs
	EnqueueFunc func(ctx context.Context, args river.JobArgs) (int64, error)
}

func (f *FakeEnqueuer) Enqueue(ctx context.Context, args river.JobArgs) (int64, error) {
	f.Jobs = append(f.Jobs, args)
	if f.EnqueueFunc != nil {
		return f.EnqueueFunc(ctx, args)
	}
	return int64(len(f.Jobs)), nil
}

func (f *FakeEnqueuer) Kinds() []string {
	out := make([]string, len(f.Jobs))
	for i, j := range f.Jobs {
		out[i] = j.Kind()
	}
	return out
}

var _ queue.Enqueuer = (*FakeEnqueuer)(nil)

// ------------------------
// Fake Season Lookup
// ------------------------

type FakeSeasonLookup struct {
	Season *seasontypes.Season
	Err    error
}

func (f *FakeSeasonLookup) GetCurrentSeason(context.Context, string) (*seasontypes.Season, error) {
	return f.Season, f.Err
}
