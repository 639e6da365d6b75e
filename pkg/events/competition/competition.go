// Package competitionevents defines the topics and payloads of the weekly
// competition flow.
package competitionevents

import competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"

const (
	ScorePostRequestedV1 = "competition.score.post.requested.v1"
	ScorePostedV1        = "competition.score.posted.v1"
	ScorePostFailedV1    = "competition.score.post.failed.v1"

	ScoreEditRequestedV1 = "competition.score.edit.requested.v1"
	ScoreEditedV1        = "competition.score.edited.v1"
	ScoreEditFailedV1    = "competition.score.edit.failed.v1"

	ScoreRemoveRequestedV1 = "competition.score.remove.requested.v1"
	ScoreRemovedV1         = "competition.score.removed.v1"
	ScoreRemoveFailedV1    = "competition.score.remove.failed.v1"

	WeekCreateRequestedV1 = "competition.week.create.requested.v1"
	WeekCreatedV1         = "competition.week.created.v1"
	WeekCreateFailedV1    = "competition.week.create.failed.v1"

	WeekEditRequestedV1 = "competition.week.edit.requested.v1"
	WeekEditedV1        = "competition.week.edited.v1"
	WeekEditFailedV1    = "competition.week.edit.failed.v1"

	RaffleRequestedV1 = "competition.raffle.requested.v1"
	RaffleDrawnV1     = "competition.raffle.drawn.v1"
	RaffleFailedV1    = "competition.raffle.failed.v1"

	// LeaderboardUpdatedV1 is published channel scoped after every change.
	LeaderboardUpdatedV1 = "competition.leaderboard.updated.v1"

	// BraggingRightsV1 announces the previous week's winner.
	BraggingRightsV1 = "competition.bragging_rights.v1"
)

// ScorePostRequestedPayloadV1 is a player's weekly score submission.
type ScorePostRequestedPayloadV1 struct {
	ChannelName      string                    `json:"channelName"`
	User             competitiontypes.Identity `json:"user"`
	Score            string                    `json:"score"`
	PostToHighScores bool                      `json:"postToHighScores"`
	AttachmentURL    string                    `json:"attachmentUrl,omitempty"`
}

// ScorePostedPayloadV1 reports an accepted weekly score.
type ScorePostedPayloadV1 struct {
	ChannelName   string                       `json:"channelName"`
	WeekNumber    int                          `json:"weekNumber"`
	Table         string                       `json:"table"`
	Username      string                       `json:"username"`
	UserID        string                       `json:"userId,omitempty"`
	Score         int64                        `json:"score"`
	PreviousScore int64                        `json:"previousScore"`
	ScoreDiff     int64                        `json:"scoreDiff"`
	RankChange    int                          `json:"rankChange"`
	CurrentRank   string                       `json:"currentRank"`
	Mode          string                       `json:"mode"`
	Leaderboard   competitiontypes.Leaderboard `json:"leaderboard"`
}

// ScoreFailedPayloadV1 reports a rejected score submission, edit or removal.
type ScoreFailedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Username    string `json:"username,omitempty"`
	Reason      string `json:"reason"`
}

// ScoreEditRequestedPayloadV1 sets a player's score directly.
type ScoreEditRequestedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Username    string `json:"username"`
	Score       string `json:"score"`
}

// ScoreRemoveRequestedPayloadV1 removes the entry at a 1-based rank.
type ScoreRemoveRequestedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Rank        int    `json:"rank"`
}

// ScoreRemovedPayloadV1 reports a removed entry and the resulting leaderboard.
type ScoreRemovedPayloadV1 struct {
	ChannelName string                       `json:"channelName"`
	Removed     competitiontypes.ScoreEntry  `json:"removed"`
	Leaderboard competitiontypes.Leaderboard `json:"leaderboard"`
}

// WeekCreateRequestedPayloadV1 opens a new week. Empty fields keep defaults.
type WeekCreateRequestedPayloadV1 struct {
	ChannelName   string `json:"channelName"`
	Table         string `json:"table"`
	AuthorName    string `json:"authorName,omitempty"`
	VersionNumber string `json:"versionNumber,omitempty"`
	VPSID         string `json:"vpsId,omitempty"`
	Mode          string `json:"mode,omitempty"`
	TableURL      string `json:"tableUrl,omitempty"`
	ROMURL        string `json:"romUrl,omitempty"`
	ROMName       string `json:"romName,omitempty"`
	B2SURL        string `json:"b2sUrl,omitempty"`
	Notes         string `json:"notes,omitempty"`
	PeriodStart   string `json:"periodStart,omitempty"`
	PeriodEnd     string `json:"periodEnd,omitempty"`
	ROMRequired   *bool  `json:"romRequired,omitempty"`
}

// WeekCreatedPayloadV1 reports the newly active week and the one it closed.
type WeekCreatedPayloadV1 struct {
	Week       competitiontypes.Week  `json:"week"`
	ClosedWeek *competitiontypes.Week `json:"closedWeek,omitempty"`
}

// WeekEditRequestedPayloadV1 changes fields of the current week. Nil fields
// are left alone.
type WeekEditRequestedPayloadV1 struct {
	ChannelName   string  `json:"channelName"`
	WeekNumber    *int    `json:"weekNumber,omitempty"`
	PeriodStart   *string `json:"periodStart,omitempty"`
	PeriodEnd     *string `json:"periodEnd,omitempty"`
	Table         *string `json:"table,omitempty"`
	AuthorName    *string `json:"authorName,omitempty"`
	VersionNumber *string `json:"versionNumber,omitempty"`
	VPSID         *string `json:"vpsId,omitempty"`
	Mode          *string `json:"mode,omitempty"`
	TableURL      *string `json:"tableUrl,omitempty"`
	ROMURL        *string `json:"romUrl,omitempty"`
	ROMName       *string `json:"romName,omitempty"`
	B2SURL        *string `json:"b2sUrl,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// WeekEditedPayloadV1 carries the week after an edit.
type WeekEditedPayloadV1 struct {
	Week competitiontypes.Week `json:"week"`
}

// WeekFailedPayloadV1 reports a failed week operation.
type WeekFailedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Reason      string `json:"reason"`
}

// RaffleRequestedPayloadV1 draws a random participant of the current week.
type RaffleRequestedPayloadV1 struct {
	ChannelName string `json:"channelName"`
}

// RaffleDrawnPayloadV1 names the raffle winner.
type RaffleDrawnPayloadV1 struct {
	ChannelName  string `json:"channelName"`
	WeekNumber   int    `json:"weekNumber"`
	Winner       string `json:"winner"`
	Participants int    `json:"participants"`
}

// RaffleFailedPayloadV1 reports a raffle that could not be drawn.
type RaffleFailedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Reason      string `json:"reason"`
}

// LeaderboardUpdatedPayloadV1 carries a week's full leaderboard.
type LeaderboardUpdatedPayloadV1 struct {
	ChannelName string                       `json:"channelName"`
	WeekNumber  int                          `json:"weekNumber"`
	Table       string                       `json:"table"`
	Leaderboard competitiontypes.Leaderboard `json:"leaderboard"`
}

// BraggingRightsPayloadV1 announces the winner of a closed week.
type BraggingRightsPayloadV1 struct {
	ChannelName       string                      `json:"channelName"`
	AnnounceChannelID string                      `json:"announceChannelId,omitempty"`
	WeekNumber        int                         `json:"weekNumber"`
	Table             string                      `json:"table"`
	Winner            competitiontypes.ScoreEntry `json:"winner"`
}
