// Package competitiontypes holds the weekly competition entities shared
// between modules, events and the HTTP API.
package competitiontypes

// DefaultMode is the game mode used when a week does not configure one.
const DefaultMode = "default"

// ScoreEntry is one player's standing within a single week.
type ScoreEntry struct {
	UserID    string `json:"userId,omitempty"`
	Username  string `json:"username"`
	Score     int64  `json:"score"`
	Diff      int64  `json:"diff"`
	Mode      string `json:"mode"`
	Points    int    `json:"points"`
	PostedAt  string `json:"postedAt"`
	AvatarRef string `json:"avatarRef,omitempty"`
}

// Leaderboard is a week's entries ordered by score descending.
type Leaderboard []ScoreEntry

// Clone returns an independent copy.
func (l Leaderboard) Clone() Leaderboard {
	if l == nil {
		return Leaderboard{}
	}
	out := make(Leaderboard, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the 0-based position of username, or -1.
func (l Leaderboard) IndexOf(username string) int {
	for i := range l {
		if l[i].Username == username {
			return i
		}
	}
	return -1
}

// Lookup returns the entry for username.
func (l Leaderboard) Lookup(username string) (ScoreEntry, bool) {
	if i := l.IndexOf(username); i >= 0 {
		return l[i], true
	}
	return ScoreEntry{}, false
}

// Identity identifies the submitter of a score.
type Identity struct {
	UserID    string `json:"userId,omitempty"`
	Username  string `json:"username"`
	AvatarRef string `json:"avatarRef,omitempty"`
}

// Week is one competition period for a channel.
type Week struct {
	ChannelName      string      `json:"channelName"`
	WeekNumber       int         `json:"weekNumber"`
	PeriodStart      string      `json:"periodStart"`
	PeriodEnd        string      `json:"periodEnd"`
	Table            string      `json:"table"`
	AuthorName       string      `json:"authorName,omitempty"`
	VersionNumber    string      `json:"versionNumber,omitempty"`
	VPSID            string      `json:"vpsId,omitempty"`
	Mode             string      `json:"mode"`
	TableURL         string      `json:"tableUrl,omitempty"`
	ROMURL           string      `json:"romUrl,omitempty"`
	ROMName          string      `json:"romName,omitempty"`
	B2SURL           string      `json:"b2sUrl,omitempty"`
	Season           *int        `json:"season,omitempty"`
	SeasonWeekNumber *int        `json:"currentSeasonWeekNumber,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	Scores           Leaderboard `json:"scores"`
	IsArchived       bool        `json:"isArchived"`
}
