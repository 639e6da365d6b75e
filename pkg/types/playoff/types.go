// Package playofftypes holds playoff bracket entities.
package playofftypes

// BracketSeed assigns a username to a fixed bracket position.
type BracketSeed struct {
	Seed     int    `json:"seed"`
	Username string `json:"username"`
}

// PlayoffRound is one elimination stage. Games are read in (away, home) pairs.
type PlayoffRound struct {
	RoundName string `json:"roundName"`
	Games     []int  `json:"games"`
}

// MatchupSide is one slot of a matchup. Score is nil until the player posts.
type MatchupSide struct {
	Seed     int    `json:"seed"`
	Username string `json:"username"`
	Score    *int64 `json:"score"`
}

// Matchup pairs two seeds for a round.
type Matchup struct {
	Away MatchupSide `json:"away"`
	Home MatchupSide `json:"home"`
}

// Playoff is a channel's seeded bracket. Champion is set once the
// championship round has been decided.
type Playoff struct {
	ID           string        `json:"id"`
	ChannelName  string        `json:"channelName"`
	SeasonNumber int           `json:"seasonNumber"`
	Seeds        []BracketSeed `json:"seeds"`
	Champion     *MatchupSide  `json:"champion,omitempty"`
	IsArchived   bool          `json:"isArchived"`
}
