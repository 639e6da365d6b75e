package playoffservice

import (
	"context"

	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Playoff Repo
// ------------------------

// FakePlayoffRepo keeps one channel's playoff state in memory. Func fields
// override individual methods.
type FakePlayoffRepo struct {
	trace []string

	Playoff  *playoffdb.Playoff
	Active   *playoffdb.Round
	Rounds   []playoffdb.Round
	Archived int

	InsertPlayoffFunc func(ctx context.Context, db bun.IDB, playoff *playoffdb.Playoff) error
	InsertRoundFunc   func(ctx context.Context, db bun.IDB, round *playoffdb.Round) error
	ListRoundsFunc    func(ctx context.Context, db bun.IDB, playoffID uuid.UUID) ([]playoffdb.Round, error)
}

func NewFakePlayoffRepo() *FakePlayoffRepo {
	return &FakePlayoffRepo{trace: []string{}}
}

func (f *FakePlayoffRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayoffRepo) activePlayoff() (*playoffdb.Playoff, error) {
	if f.Playoff == nil || f.Playoff.IsArchived {
		return nil, playoffdb.ErrNotFound
	}
	return f.Playoff, nil
}

func (f *FakePlayoffRepo) GetActivePlayoff(ctx context.Context, db bun.IDB, channel string) (*playoffdb.Playoff, error) {
	f.record("GetActivePlayoff")
	return f.activePlayoff()
}

func (f *FakePlayoffRepo) GetActivePlayoffForUpdate(ctx context.Context, db bun.IDB, channel string) (*playoffdb.Playoff, error) {
	f.record("GetActivePlayoffForUpdate")
	return f.activePlayoff()
}

func (f *FakePlayoffRepo) InsertPlayoff(ctx context.Context, db bun.IDB, playoff *playoffdb.Playoff) error {
	f.record("InsertPlayoff")
	if f.InsertPlayoffFunc != nil {
		return f.InsertPlayoffFunc(ctx, db, playoff)
	}
	playoff.ID = uuid.New()
	f.Playoff = playoff
	return nil
}

func (f *FakePlayoffRepo) SetChampion(ctx context.Context, db bun.IDB, playoffID uuid.UUID, champion playofftypes.MatchupSide) error {
	f.record("SetChampion")
	if f.Playoff == nil || f.Playoff.ID != playoffID {
		return playoffdb.ErrNotFound
	}
	f.Playoff.Champion = &champion
	f.Playoff.IsArchived = true
	return nil
}

func (f *FakePlayoffRepo) ArchiveActivePlayoff(ctx context.Context, db bun.IDB, channel string) error {
	f.record("ArchiveActivePlayoff")
	if f.Playoff != nil && !f.Playoff.IsArchived {
		f.Playoff.IsArchived = true
		f.Archived++
	}
	return nil
}

func (f *FakePlayoffRepo) GetActiveRound(ctx context.Context, db bun.IDB, channel string) (*playoffdb.Round, error) {
	f.record("GetActiveRound")
	if f.Active == nil {
		return nil, playoffdb.ErrRoundNotFound
	}
	return f.Active, nil
}

func (f *FakePlayoffRepo) GetActiveRoundForUpdate(ctx context.Context, db bun.IDB, channel string) (*playoffdb.Round, error) {
	f.record("GetActiveRoundForUpdate")
	if f.Active == nil {
		return nil, playoffdb.ErrRoundNotFound
	}
	return f.Active, nil
}

func (f *FakePlayoffRepo) InsertRound(ctx context.Context, db bun.IDB, round *playoffdb.Round) error {
	f.record("InsertRound")
	if f.InsertRoundFunc != nil {
		return f.InsertRoundFunc(ctx, db, round)
	}
	round.ID = uuid.New()
	f.Active = round
	return nil
}

func (f *FakePlayoffRepo) CloseRound(ctx context.Context, db bun.IDB, roundID uuid.UUID, weekNumber int, results []playofftypes.Matchup) error {
	f.record("CloseRound")
	if f.Active == nil || f.Active.ID != roundID {
		return playoffdb.ErrRoundNotFound
	}
	closed := *f.Active
	closed.WeekNumber = &weekNumber
	closed.Results = results
	closed.IsArchived = true
	f.Rounds = append(f.Rounds, closed)
	f.Active = nil
	return nil
}

func (f *FakePlayoffRepo) ArchiveActiveRound(ctx context.Context, db bun.IDB, channel string) error {
	f.record("ArchiveActiveRound")
	if f.Active != nil {
		archived := *f.Active
		archived.IsArchived = true
		f.Rounds = append(f.Rounds, archived)
		f.Active = nil
	}
	return nil
}

func (f *FakePlayoffRepo) ListRounds(ctx context.Context, db bun.IDB, playoffID uuid.UUID) ([]playoffdb.Round, error) {
	f.record("ListRounds")
	if f.ListRoundsFunc != nil {
		return f.ListRoundsFunc(ctx, db, playoffID)
	}
	var out []playoffdb.Round
	for _, r := range f.Rounds {
		if r.PlayoffID == playoffID {
			out = append(out, r)
		}
	}
	if f.Active != nil && f.Active.PlayoffID == playoffID {
		out = append(out, *f.Active)
	}
	return out, nil
}

var _ playoffdb.Repository = (*FakePlayoffRepo)(nil)

// ------------------------
// Fake Week Lookup
// ------------------------

type FakeWeekLookup struct {
	Week *competitiontypes.Week
	Err  error
}

func (f *FakeWeekLookup) GetCurrentWeek(ctx context.Context, channel string) (*competitiontypes.Week, error) {
	return f.Week, f.Err
}

var _ WeekLookup = (*FakeWeekLookup)(nil)
