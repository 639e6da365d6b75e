package queue

import (
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
)

// Job kinds.
const (
	KindAdvancePlayoffRound = "playoff_advance_round"
	KindBraggingRights      = "bragging_rights"
	KindEnsureHighScore     = "highscore_table_ensure"
	KindCrossPostHighScore  = "highscore_crosspost"
	KindRemoveHighScore     = "highscore_remove"
)

// AdvancePlayoffRoundJob resolves the channel's current playoff round against
// the leaderboard of the week that just closed.
type AdvancePlayoffRoundJob struct {
	ChannelName string                       `json:"channel_name"`
	WeekNumber  int                          `json:"week_number"`
	Leaderboard competitiontypes.Leaderboard `json:"leaderboard"`
}

func (AdvancePlayoffRoundJob) Kind() string { return KindAdvancePlayoffRound }

// BraggingRightsJob announces the winner of a closed week.
type BraggingRightsJob struct {
	ChannelName string                      `json:"channel_name"`
	WeekNumber  int                         `json:"week_number"`
	Table       string                      `json:"table"`
	Winner      competitiontypes.ScoreEntry `json:"winner"`
}

func (BraggingRightsJob) Kind() string { return KindBraggingRights }

// EnsureHighScoreTableJob registers the new week's table for high scores.
type EnsureHighScoreTableJob struct {
	Table highscoretypes.Table `json:"table"`
}

func (EnsureHighScoreTableJob) Kind() string { return KindEnsureHighScore }

// CrossPostHighScoreJob records a weekly score on the table's high score list.
type CrossPostHighScoreJob struct {
	Table     highscoretypes.Table `json:"table"`
	UserID    string               `json:"user_id,omitempty"`
	Username  string               `json:"username"`
	Score     int64                `json:"score"`
	Mode      string               `json:"mode"`
	PostURL   string               `json:"post_url,omitempty"`
	Subscript string               `json:"subscript,omitempty"`
	DoPost    bool                 `json:"do_post"`
}

func (CrossPostHighScoreJob) Kind() string { return KindCrossPostHighScore }

// RemoveHighScoreJob deletes a score that was removed from a weekly
// leaderboard from the table's high scores.
type RemoveHighScoreJob struct {
	VPSID    string `json:"vps_id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

func (RemoveHighScoreJob) Kind() string { return KindRemoveHighScore }
