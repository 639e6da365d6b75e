package seasonservice

import (
	"context"

	seasondb "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Season Repo
// ------------------------

type FakeSeasonRepo struct {
	trace []string

	GetActiveSeasonFunc          func(ctx context.Context, db bun.IDB, channel string) (*seasondb.Season, error)
	GetActiveSeasonForUpdateFunc func(ctx context.Context, db bun.IDB, channel string) (*seasondb.Season, error)
	GetSeasonByNumberFunc        func(ctx context.Context, db bun.IDB, channel string, number int) (*seasondb.Season, error)
	InsertSeasonFunc             func(ctx context.Context, db bun.IDB, season *seasondb.Season) error
	UpdateSeasonFunc             func(ctx context.Context, db bun.IDB, season *seasondb.Season) error
	ArchiveActiveSeasonFunc      func(ctx context.Context, db bun.IDB, channel string) error
}

func NewFakeSeasonRepo() *FakeSeasonRepo {
	return &FakeSeasonRepo{trace: []string{}}
}

func (f *FakeSeasonRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeSeasonRepo) GetActiveSeason(ctx context.Context, db bun.IDB, channel string) (*seasondb.Season, error) {
	f.record("GetActiveSeason")
	if f.GetActiveSeasonFunc != nil {
		return f.GetActiveSeasonFunc(ctx, db, channel)
	}
	return nil, seasondb.ErrNotFound
}

func (f *FakeSeasonRepo) GetActiveSeasonForUpdate(ctx context.Context, db bun.IDB, channel string) (*seasondb.Season, error) {
	f.record("GetActiveSeasonForUpdate")
	if f.GetActiveSeasonForUpdateFunc != nil {
		return f.GetActiveSeasonForUpdateFunc(ctx, db, channel)
	}
	return nil, seasondb.ErrNotFound
}

func (f *FakeSeasonRepo) GetSeasonByNumber(ctx context.Context, db bun.IDB, channel string, number int) (*seasondb.Season, error) {
	f.record("GetSeasonByNumber")
	if f.GetSeasonByNumberFunc != nil {
		return f.GetSeasonByNumberFunc(ctx, db, channel, number)
	}
	return nil, seasondb.ErrNotFound
}

func (f *FakeSeasonRepo) InsertSeason(ctx context.Context, db bun.IDB, season *seasondb.Season) error {
	f.record("InsertSeason")
	if f.InsertSeasonFunc != nil {
		return f.InsertSeasonFunc(ctx, db, season)
	}
	return nil
}

func (f *FakeSeasonRepo) UpdateSeason(ctx context.Context, db bun.IDB, season *seasondb.Season) error {
	f.record("UpdateSeason")
	if f.UpdateSeasonFunc != nil {
		return f.UpdateSeasonFunc(ctx, db, season)
	}
	return nil
}

func (f *FakeSeasonRepo) ArchiveActiveSeason(ctx context.Context, db bun.IDB, channel string) error {
	f.record("ArchiveActiveSeason")
	if f.ArchiveActiveSeasonFunc != nil {
		return f.ArchiveActiveSeasonFunc(ctx, db, channel)
	}
	return nil
}

func (f *FakeSeasonRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ seasondb.Repository = (*FakeSeasonRepo)(nil)

// ------------------------
// Fake Week Lookup
// ------------------------

type FakeWeekLookup struct {
	Weeks []competitiontypes.Leaderboard
	Err   error

	gotFrom, gotTo string
}

func (f *FakeWeekLookup) ListArchivedLeaderboards(_ context.Context, _ string, from, to string) ([]competitiontypes.Leaderboard, error) {
	f.gotFrom, f.gotTo = from, to
	return f.Weeks, f.Err
}
