// Package highscoretypes holds all-time high score entities.
package highscoretypes

import "time"

// Table identifies one version of a table that accepts high scores.
type Table struct {
	VPSID         string `json:"vpsId"`
	TableName     string `json:"tableName"`
	Slug          string `json:"slug"`
	AuthorName    string `json:"authorName"`
	VersionNumber string `json:"versionNumber"`
	VersionURL    string `json:"versionUrl,omitempty"`
	ROMName       string `json:"romName,omitempty"`
	Comment       string `json:"comment,omitempty"`
}

// Score is one recorded high score.
type Score struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Username  string    `json:"username"`
	Score     int64     `json:"score"`
	Mode      string    `json:"mode"`
	PostURL   string    `json:"postUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableScores is a table version with its scores, best first.
type TableScores struct {
	Table  Table   `json:"table"`
	Scores []Score `json:"scores"`
}
