// Package playoffevents defines the topics and payloads of playoff brackets.
package playoffevents

import playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"

const (
	PlayoffCreateRequestedV1 = "playoff.create.requested.v1"
	PlayoffCreatedV1         = "playoff.created.v1"
	PlayoffCreateFailedV1    = "playoff.create.failed.v1"

	RoundCreateRequestedV1 = "playoff.round.create.requested.v1"
	RoundCreatedV1         = "playoff.round.created.v1"
	RoundCreateFailedV1    = "playoff.round.create.failed.v1"

	MatchupsRequestedV1 = "playoff.matchups.requested.v1"
	MatchupsRetrievedV1 = "playoff.matchups.retrieved.v1"
	MatchupsFailedV1    = "playoff.matchups.failed.v1"

	RoundAdvancedV1   = "playoff.round.advanced.v1"
	ChampionCrownedV1 = "playoff.champion.crowned.v1"
	BracketReviewV1   = "playoff.bracket.review.v1"
)

// PlayoffCreateRequestedPayloadV1 seeds a new bracket in seed order.
type PlayoffCreateRequestedPayloadV1 struct {
	ChannelName  string   `json:"channelName"`
	SeasonNumber int      `json:"seasonNumber"`
	Seeds        []string `json:"seeds"`
}

// PlayoffCreatedPayloadV1 reports a new bracket and its opening round.
type PlayoffCreatedPayloadV1 struct {
	ChannelName  string                     `json:"channelName"`
	SeasonNumber int                        `json:"seasonNumber"`
	Seeds        []playofftypes.BracketSeed `json:"seeds"`
	Round        playofftypes.PlayoffRound  `json:"round"`
}

// RoundCreateRequestedPayloadV1 replaces the current round by hand.
type RoundCreateRequestedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Games       []int  `json:"games"`
}

// RoundCreatedPayloadV1 reports a manually created round.
type RoundCreatedPayloadV1 struct {
	ChannelName string                    `json:"channelName"`
	Round       playofftypes.PlayoffRound `json:"round"`
}

// MatchupsRequestedPayloadV1 asks for the live matchups of the current round.
type MatchupsRequestedPayloadV1 struct {
	ChannelName string `json:"channelName"`
}

// MatchupsRetrievedPayloadV1 carries live matchups.
type MatchupsRetrievedPayloadV1 struct {
	ChannelName string                    `json:"channelName"`
	Round       playofftypes.PlayoffRound `json:"round"`
	Matchups    []playofftypes.Matchup    `json:"matchups"`
}

// RoundAdvancedPayloadV1 reports the round produced from a closed week.
type RoundAdvancedPayloadV1 struct {
	ChannelName string                    `json:"channelName"`
	WeekNumber  int                       `json:"weekNumber"`
	Results     []playofftypes.Matchup    `json:"results"`
	NextRound   playofftypes.PlayoffRound `json:"nextRound"`
	NextMatches []playofftypes.Matchup    `json:"nextMatchups"`
}

// ChampionCrownedPayloadV1 reports the winner of a championship round.
type ChampionCrownedPayloadV1 struct {
	ChannelName  string                   `json:"channelName"`
	SeasonNumber int                      `json:"seasonNumber"`
	WeekNumber   int                      `json:"weekNumber"`
	Champion     playofftypes.MatchupSide `json:"champion"`
	Final        playofftypes.Matchup     `json:"final"`
}

// BracketReviewPayloadV1 flags bracket state a human should look at.
type BracketReviewPayloadV1 struct {
	ChannelName string   `json:"channelName"`
	RoundName   string   `json:"roundName"`
	Reasons     []string `json:"reasons"`
}

// PlayoffFailedPayloadV1 reports a failed playoff operation.
type PlayoffFailedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Reason      string `json:"reason"`
}
