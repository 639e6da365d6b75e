// Package seasonevents defines the topics and payloads of season management.
package seasonevents

import seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"

const (
	SeasonCreateRequestedV1 = "season.create.requested.v1"
	SeasonCreatedV1         = "season.created.v1"
	SeasonCreateFailedV1    = "season.create.failed.v1"

	SeasonEditRequestedV1 = "season.edit.requested.v1"
	SeasonEditedV1        = "season.edited.v1"
	SeasonEditFailedV1    = "season.edit.failed.v1"

	StandingsRequestedV1 = "season.standings.requested.v1"
	StandingsRetrievedV1 = "season.standings.retrieved.v1"
	StandingsFailedV1    = "season.standings.failed.v1"
)

// SeasonCreateRequestedPayloadV1 opens a new season, archiving the current one.
type SeasonCreateRequestedPayloadV1 struct {
	ChannelName  string `json:"channelName"`
	SeasonNumber int    `json:"seasonNumber"`
	SeasonName   string `json:"seasonName"`
	SeasonStart  string `json:"seasonStart"`
	SeasonEnd    string `json:"seasonEnd"`
}

// SeasonEditRequestedPayloadV1 changes fields of the current season.
type SeasonEditRequestedPayloadV1 struct {
	ChannelName  string  `json:"channelName"`
	SeasonNumber *int    `json:"seasonNumber,omitempty"`
	SeasonName   *string `json:"seasonName,omitempty"`
	SeasonStart  *string `json:"seasonStart,omitempty"`
	SeasonEnd    *string `json:"seasonEnd,omitempty"`
}

// SeasonPayloadV1 carries a season after it was created or edited.
type SeasonPayloadV1 struct {
	Season seasontypes.Season `json:"season"`
}

// StandingsRequestedPayloadV1 asks for a season's standings. A zero season
// number means the current season.
type StandingsRequestedPayloadV1 struct {
	ChannelName  string `json:"channelName"`
	SeasonNumber int    `json:"seasonNumber,omitempty"`
}

// StandingsRetrievedPayloadV1 carries the standings of a season.
type StandingsRetrievedPayloadV1 struct {
	Season    seasontypes.Season           `json:"season"`
	Weeks     int                          `json:"weeks"`
	Standings []seasontypes.SeasonStanding `json:"standings"`
}

// SeasonFailedPayloadV1 reports a failed season operation.
type SeasonFailedPayloadV1 struct {
	ChannelName string `json:"channelName"`
	Reason      string `json:"reason"`
}
