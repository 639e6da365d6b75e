package seasonservice

import (
	"context"

	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
)

// SeasonResult is the outcome of operations returning a single season.
type SeasonResult = results.OperationResult[*seasontypes.Season, error]

// Standings are a season's aggregated totals.
type Standings struct {
	Season    *seasontypes.Season          `json:"season"`
	Weeks     int                          `json:"weeks"`
	Standings []seasontypes.SeasonStanding `json:"standings"`
}

// StandingsResult is the outcome of GetSeasonStandings.
type StandingsResult = results.OperationResult[*Standings, error]

// Report is a rendered standings document.
type Report struct {
	Season      *seasontypes.Season
	ContentType string
	Filename    string
	Data        []byte
}

// ReportResult is the outcome of RenderStandingsChart and ExportStandings.
type ReportResult = results.OperationResult[*Report, error]

// CreateSeasonRequest opens a new season. A zero SeasonNumber continues from
// the current season and an empty name becomes "Season N".
type CreateSeasonRequest struct {
	ChannelName  string
	SeasonNumber int
	SeasonName   string
	SeasonStart  string
	SeasonEnd    string
}

// SeasonUpdate lists the fields to change on the current season.
type SeasonUpdate struct {
	SeasonNumber *int
	SeasonName   *string
	SeasonStart  *string
	SeasonEnd    *string
}

// Service defines the season operations. A zero seasonNumber selects the
// channel's current season.
type Service interface {
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (SeasonResult, error)
	EditCurrentSeason(ctx context.Context, channel string, update SeasonUpdate) (SeasonResult, error)
	GetCurrentSeason(ctx context.Context, channel string) (SeasonResult, error)
	GetSeasonStandings(ctx context.Context, channel string, seasonNumber int) (StandingsResult, error)
	RenderStandingsChart(ctx context.Context, channel string, seasonNumber, top int) (ReportResult, error)
	ExportStandings(ctx context.Context, channel string, seasonNumber int) (ReportResult, error)
}
