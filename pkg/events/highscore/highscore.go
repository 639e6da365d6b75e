// Package highscoreevents defines the topics and payloads of all-time high
// score tables.
package highscoreevents

import highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"

const (
	PostRequestedV1        = "highscore.post.requested.v1"
	CandidatesFoundV1      = "highscore.candidates.found.v1"
	PostFailedV1           = "highscore.post.failed.v1"
	SelectionSubmittedV1   = "highscore.selection.submitted.v1"
	PostedV1               = "highscore.posted.v1"
	RemoveRequestedV1      = "highscore.remove.requested.v1"
	RemovedV1              = "highscore.removed.v1"
	RemoveFailedV1         = "highscore.remove.failed.v1"
	TableEnsureRequestedV1 = "highscore.table.ensure.requested.v1"
	TableEnsuredV1         = "highscore.table.ensured.v1"
	TableEnsureFailedV1    = "highscore.table.ensure.failed.v1"
)

// PostRequestedPayloadV1 starts a high score post. The search term selects
// candidate tables.
type PostRequestedPayloadV1 struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	Score         string `json:"score"`
	SearchTerm    string `json:"searchTerm"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
}

// Candidate is one table a pending high score may be posted to.
type Candidate struct {
	Label         string `json:"label"`
	VPSID         string `json:"vpsId"`
	VersionNumber string `json:"versionNumber"`
	Score         int64  `json:"score"`
}

// CandidatesFoundPayloadV1 offers tables for the user to pick from.
type CandidatesFoundPayloadV1 struct {
	UserID     string      `json:"userId"`
	SearchTerm string      `json:"searchTerm"`
	Candidates []Candidate `json:"candidates"`
}

// SelectionSubmittedPayloadV1 is the user's table choice.
type SelectionSubmittedPayloadV1 struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	VPSID         string `json:"vpsId"`
	VersionNumber string `json:"versionNumber"`
	Score         int64  `json:"score"`
}

// PostedPayloadV1 announces a recorded high score.
type PostedPayloadV1 struct {
	Table     highscoretypes.Table   `json:"table"`
	Score     highscoretypes.Score   `json:"score"`
	TopScores []highscoretypes.Score `json:"topScores"`
	Subscript string                 `json:"subscript,omitempty"`
	Announce  bool                   `json:"announce"`
	// NewTop is set when the score beats every earlier score on the version.
	NewTop bool `json:"newTop"`
}

// RemoveRequestedPayloadV1 deletes a score from every version of a table.
type RemoveRequestedPayloadV1 struct {
	VPSID    string `json:"vpsId"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// RemovedPayloadV1 reports how many scores were deleted.
type RemovedPayloadV1 struct {
	VPSID    string `json:"vpsId"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
	Removed  int    `json:"removed"`
}

// TableEnsureRequestedPayloadV1 registers a table version for high scores.
type TableEnsureRequestedPayloadV1 struct {
	Table highscoretypes.Table `json:"table"`
}

// TableEnsuredPayloadV1 reports the outcome of registering a table.
type TableEnsuredPayloadV1 struct {
	Table   highscoretypes.Table `json:"table"`
	Outcome string               `json:"outcome"`
}

// FailedPayloadV1 reports a failed high score operation.
type FailedPayloadV1 struct {
	UserID string `json:"userId,omitempty"`
	Reason string `json:"reason"`
}
