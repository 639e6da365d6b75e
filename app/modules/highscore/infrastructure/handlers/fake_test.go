package highscorehandlers

import (
	"context"

	highscoreservice "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/application"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
)

// ------------------------
// Fake High Score Service
// ------------------------

type FakeHighScoreService struct {
	trace []string

	EnsureTableFunc              func(ctx context.Context, table highscoretypes.Table) (highscoreservice.EnsureResult, error)
	RequestHighScorePostFunc     func(ctx context.Context, req highscoreservice.PostRequest) (highscoreservice.CandidatesResult, error)
	SubmitHighScoreSelectionFunc func(ctx context.Context, req highscoreservice.SelectionRequest) (highscoreservice.PostedResult, error)
	RemoveHighScoreFunc          func(ctx context.Context, vpsID, username string, score int64) (highscoreservice.RemovedResult, error)
}

func NewFakeHighScoreService() *FakeHighScoreService {
	return &FakeHighScoreService{trace: []string{}}
}

func (f *FakeHighScoreService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeHighScoreService) Trace() []string {
	return f.trace
}

func (f *FakeHighScoreService) EnsureTable(ctx context.Context, table highscoretypes.Table) (highscoreservice.EnsureResult, error) {
	f.record("EnsureTable")
	if f.EnsureTableFunc != nil {
		return f.EnsureTableFunc(ctx, table)
	}
	return highscoreservice.EnsureResult{}, nil
}

func (f *FakeHighScoreService) RequestHighScorePost(ctx context.Context, req highscoreservice.PostRequest) (highscoreservice.CandidatesResult, error) {
	f.record("RequestHighScorePost")
	if f.RequestHighScorePostFunc != nil {
		return f.RequestHighScorePostFunc(ctx, req)
	}
	return highscoreservice.CandidatesResult{}, nil
}

func (f *FakeHighScoreService) SubmitHighScoreSelection(ctx context.Context, req highscoreservice.SelectionRequest) (highscoreservice.PostedResult, error) {
	f.record("SubmitHighScoreSelection")
	if f.SubmitHighScoreSelectionFunc != nil {
		return f.SubmitHighScoreSelectionFunc(ctx, req)
	}
	return highscoreservice.PostedResult{}, nil
}

func (f *FakeHighScoreService) CrossPostWeeklyScore(context.Context, highscoreservice.CrossPostRequest) (highscoreservice.CrossPostResult, error) {
	f.record("CrossPostWeeklyScore")
	return highscoreservice.CrossPostResult{}, nil
}

func (f *FakeHighScoreService) RemoveHighScore(ctx context.Context, vpsID, username string, score int64) (highscoreservice.RemovedResult, error) {
	f.record("RemoveHighScore")
	if f.RemoveHighScoreFunc != nil {
		return f.RemoveHighScoreFunc(ctx, vpsID, username, score)
	}
	return highscoreservice.RemovedResult{}, nil
}

func (f *FakeHighScoreService) GetTableHighScores(context.Context, highscoreservice.TableQuery) (highscoreservice.TableScoresResult, error) {
	f.record("GetTableHighScores")
	return highscoreservice.TableScoresResult{}, nil
}

var _ highscoreservice.Service = (*FakeHighScoreService)(nil)
