package playoffhandlers

import (
	"context"

	playoffservice "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/application"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// ------------------------
// Fake Playoff Service
// ------------------------

type FakePlayoffService struct {
	trace []string

	CreatePlayoffFunc      func(ctx context.Context, req playoffservice.CreatePlayoffRequest) (playoffservice.PlayoffResult, error)
	CreatePlayoffRoundFunc func(ctx context.Context, channel string, games []int) (playoffservice.RoundResult, error)
	GetCurrentMatchupsFunc func(ctx context.Context, channel string) (playoffservice.MatchupsResult, error)
	AdvanceRoundFunc       func(ctx context.Context, channel string, weekNumber int, lb competitiontypes.Leaderboard) (playoffservice.AdvanceResult, error)
}

func NewFakePlayoffService() *FakePlayoffService {
	return &FakePlayoffService{trace: []string{}}
}

func (f *FakePlayoffService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayoffService) Trace() []string {
	return f.trace
}

func (f *FakePlayoffService) CreatePlayoff(ctx context.Context, req playoffservice.CreatePlayoffRequest) (playoffservice.PlayoffResult, error) {
	f.record("CreatePlayoff")
	if f.CreatePlayoffFunc != nil {
		return f.CreatePlayoffFunc(ctx, req)
	}
	return playoffservice.PlayoffResult{}, nil
}

func (f *FakePlayoffService) CreatePlayoffRound(ctx context.Context, channel string, games []int) (playoffservice.RoundResult, error) {
	f.record("CreatePlayoffRound")
	if f.CreatePlayoffRoundFunc != nil {
		return f.CreatePlayoffRoundFunc(ctx, channel, games)
	}
	return playoffservice.RoundResult{}, nil
}

func (f *FakePlayoffService) GetCurrentMatchups(ctx context.Context, channel string) (playoffservice.MatchupsResult, error) {
	f.record("GetCurrentMatchups")
	if f.GetCurrentMatchupsFunc != nil {
		return f.GetCurrentMatchupsFunc(ctx, channel)
	}
	return playoffservice.MatchupsResult{}, nil
}

func (f *FakePlayoffService) AdvanceRound(ctx context.Context, channel string, weekNumber int, lb competitiontypes.Leaderboard) (playoffservice.AdvanceResult, error) {
	f.record("AdvanceRound")
	if f.AdvanceRoundFunc != nil {
		return f.AdvanceRoundFunc(ctx, channel, weekNumber, lb)
	}
	return playoffservice.AdvanceResult{}, nil
}

var _ playoffservice.Service = (*FakePlayoffService)(nil)
