// Package seasontypes holds season entities.
package seasontypes

// SeasonStanding is a player's aggregated totals across a season's weeks.
type SeasonStanding struct {
	Username    string `json:"username"`
	TotalPoints int    `json:"totalPoints"`
	TotalScore  int64  `json:"totalScore"`
}

// Season is a date-bounded group of weeks. Dates are YYYY-MM-DD.
type Season struct {
	ChannelName  string `json:"channelName"`
	SeasonNumber int    `json:"seasonNumber"`
	SeasonName   string `json:"seasonName"`
	SeasonStart  string `json:"seasonStart"`
	SeasonEnd    string `json:"seasonEnd"`
	IsArchived   bool   `json:"isArchived"`
}
