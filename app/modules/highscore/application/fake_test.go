package highscoreservice

import (
	"context"
	"strings"

	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake High Score Repo
// ------------------------

// FakeHighScoreRepo stores tables and scores in memory. Func fields override
// individual methods.
type FakeHighScoreRepo struct {
	trace []string

	Tables []highscoredb.TableVersion
	Scores []highscoredb.HighScore

	ListTableVersionsFunc func(ctx context.Context, db bun.IDB, vpsID string) ([]highscoredb.TableVersion, error)
	InsertScoreFunc       func(ctx context.Context, db bun.IDB, score *highscoredb.HighScore) error
	DeleteScoresFunc      func(ctx context.Context, db bun.IDB, vpsID, username string, score int64) (int, error)
}

func NewFakeHighScoreRepo() *FakeHighScoreRepo {
	return &FakeHighScoreRepo{trace: []string{}}
}

func (f *FakeHighScoreRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeHighScoreRepo) GetTable(ctx context.Context, db bun.IDB, vpsID, versionNumber string) (*highscoredb.TableVersion, error) {
	f.record("GetTable")
	for i := range f.Tables {
		if f.Tables[i].VPSID == vpsID && f.Tables[i].VersionNumber == versionNumber {
			t := f.Tables[i]
			return &t, nil
		}
	}
	return nil, highscoredb.ErrNotFound
}

func (f *FakeHighScoreRepo) ListTableVersions(ctx context.Context, db bun.IDB, vpsID string) ([]highscoredb.TableVersion, error) {
	f.record("ListTableVersions")
	if f.ListTableVersionsFunc != nil {
		return f.ListTableVersionsFunc(ctx, db, vpsID)
	}
	var out []highscoredb.TableVersion
	for _, t := range f.Tables {
		if t.VPSID == vpsID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *FakeHighScoreRepo) InsertTable(ctx context.Context, db bun.IDB, table *highscoredb.TableVersion) error {
	f.record("InsertTable")
	table.ID = int64(len(f.Tables) + 1)
	f.Tables = append(f.Tables, *table)
	return nil
}

func (f *FakeHighScoreRepo) SearchTables(ctx context.Context, db bun.IDB, term string, limit int) ([]highscoredb.TableVersion, error) {
	f.record("SearchTables")
	term = strings.ToLower(strings.TrimSpace(term))
	var out []highscoredb.TableVersion
	for _, t := range f.Tables {
		if strings.Contains(strings.ToLower(t.TableName), term) || strings.Contains(t.Slug, term) {
			out = append(out, t)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *FakeHighScoreRepo) ListScores(ctx context.Context, db bun.IDB, tableID int64) ([]highscoredb.HighScore, error) {
	f.record("ListScores")
	var out []highscoredb.HighScore
	for _, s := range f.Scores {
		if s.TableID == tableID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeHighScoreRepo) InsertScore(ctx context.Context, db bun.IDB, score *highscoredb.HighScore) error {
	f.record("InsertScore")
	if f.InsertScoreFunc != nil {
		return f.InsertScoreFunc(ctx, db, score)
	}
	score.ID = uuid.New()
	f.Scores = append(f.Scores, *score)
	return nil
}

func (f *FakeHighScoreRepo) DeleteScores(ctx context.Context, db bun.IDB, vpsID, username string, score int64) (int, error) {
	f.record("DeleteScores")
	if f.DeleteScoresFunc != nil {
		return f.DeleteScoresFunc(ctx, db, vpsID, username, score)
	}
	ids := map[int64]bool{}
	for _, t := range f.Tables {
		if t.VPSID == vpsID {
			ids[t.ID] = true
		}
	}
	kept := f.Scores[:0]
	removed := 0
	for _, s := range f.Scores {
		if ids[s.TableID] && s.Username == username && s.Score == score {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.Scores = kept
	return removed, nil
}

var _ highscoredb.Repository = (*FakeHighScoreRepo)(nil)
