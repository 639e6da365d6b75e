package highscoreservice

import (
	"context"

	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
)

// EnsureOutcome says what EnsureTable did.
type EnsureOutcome string

const (
	OutcomeCreated       EnsureOutcome = "created"
	OutcomeVersionAdded  EnsureOutcome = "version_added"
	OutcomeAlreadyExists EnsureOutcome = "already_exists"
)

// TableEnsured is a registered table version.
type TableEnsured struct {
	Table   highscoretypes.Table
	Outcome EnsureOutcome
}

// EnsureResult is the outcome of EnsureTable.
type EnsureResult = results.OperationResult[*TableEnsured, error]

// PostCandidates are the tables a pending score may go to.
type PostCandidates struct {
	Score      int64
	SearchTerm string
	Tables     []highscoretypes.Table
}

// CandidatesResult is the outcome of RequestHighScorePost.
type CandidatesResult = results.OperationResult[*PostCandidates, error]

// Posted is a recorded high score with the version's current top scores.
type Posted struct {
	Table     highscoretypes.Table
	Score     highscoretypes.Score
	TopScores []highscoretypes.Score
	NewTop    bool
}

// PostedResult is the outcome of SubmitHighScoreSelection.
type PostedResult = results.OperationResult[*Posted, error]

// CrossPosted is a weekly score copied to the high score list. Posted is
// nil when the same score was already there.
type CrossPosted struct {
	Posted    *Posted
	Duplicate bool
	Announce  bool
	Subscript string
}

// CrossPostResult is the outcome of CrossPostWeeklyScore.
type CrossPostResult = results.OperationResult[*CrossPosted, error]

// Removed counts scores deleted from a table.
type Removed struct {
	VPSID    string
	Username string
	Score    int64
	Removed  int
}

// RemovedResult is the outcome of RemoveHighScore.
type RemovedResult = results.OperationResult[*Removed, error]

// TableScoresResult is the outcome of GetTableHighScores.
type TableScoresResult = results.OperationResult[[]highscoretypes.TableScores, error]

// PostRequest starts a high score post from a raw score and a table search.
type PostRequest struct {
	UserID        string
	Username      string
	RawScore      string
	SearchTerm    string
	AttachmentURL string
}

// SelectionRequest records a score on the table version the user picked.
type SelectionRequest struct {
	UserID        string
	Username      string
	VPSID         string
	VersionNumber string
	Score         int64
	Mode          string
}

// CrossPostRequest copies a weekly score onto the table's high scores.
type CrossPostRequest struct {
	Table     highscoretypes.Table
	UserID    string
	Username  string
	Score     int64
	Mode      string
	PostURL   string
	Subscript string
	DoPost    bool
}

// TableQuery selects tables by VPS id or, failing that, by name search.
// Limit caps the scores per version.
type TableQuery struct {
	VPSID      string
	SearchTerm string
	Limit      int
}

// Service defines the high score operations.
type Service interface {
	EnsureTable(ctx context.Context, table highscoretypes.Table) (EnsureResult, error)
	RequestHighScorePost(ctx context.Context, req PostRequest) (CandidatesResult, error)
	SubmitHighScoreSelection(ctx context.Context, req SelectionRequest) (PostedResult, error)
	CrossPostWeeklyScore(ctx context.Context, req CrossPostRequest) (CrossPostResult, error)
	RemoveHighScore(ctx context.Context, vpsID, username string, score int64) (RemovedResult, error)
	GetTableHighScores(ctx context.Context, query TableQuery) (TableScoresResult, error)
}
