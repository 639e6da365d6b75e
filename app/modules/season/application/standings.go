package seasonservice

import (
	"context"
	"fmt"

	seasondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/season/domain"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	"github.com/uptrace/bun"
)

const (
	contentTypePNG  = "image/png"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// GetSeasonStandings folds the season's archived weeks into standings.
func (s *SeasonService) GetSeasonStandings(ctx context.Context, channel string, seasonNumber int) (StandingsResult, error) {
	standingsTx := func(ctx context.Context, db bun.IDB) (StandingsResult, error) {
		standings, err := s.computeStandings(ctx, db, channel, seasonNumber)
		if err != nil {
			if isBusinessError(err) {
				return results.FailureResult[*Standings, error](err), nil
			}
			return StandingsResult{}, err
		}
		return results.SuccessResult[*Standings, error](standings), nil
	}

	return withTelemetry(s, ctx, "GetSeasonStandings", channel, func(ctx context.Context) (StandingsResult, error) {
		return runInTx(s, ctx, standingsTx)
	})
}

// RenderStandingsChart draws the top players' season points as a PNG bar chart.
func (s *SeasonService) RenderStandingsChart(ctx context.Context, channel string, seasonNumber, top int) (ReportResult, error) {
	if top <= 0 {
		top = DefaultChartTop
	}

	chartTx := func(ctx context.Context, db bun.IDB) (ReportResult, error) {
		standings, err := s.computeStandings(ctx, db, channel, seasonNumber)
		if err != nil {
			if isBusinessError(err) {
				return results.FailureResult[*Report, error](err), nil
			}
			return ReportResult{}, err
		}

		png, err := GenerateStandingsChart(standings.Season.SeasonName, standings.Standings, top, DefaultPalette)
		if err != nil {
			return ReportResult{}, fmt.Errorf("failed to render standings chart: %w", err)
		}
		return results.SuccessResult[*Report, error](&Report{
			Season:      standings.Season,
			ContentType: contentTypePNG,
			Filename:    fmt.Sprintf("season-%d-standings.png", standings.Season.SeasonNumber),
			Data:        png,
		}), nil
	}

	return withTelemetry(s, ctx, "RenderStandingsChart", channel, func(ctx context.Context) (ReportResult, error) {
		return runInTx(s, ctx, chartTx)
	})
}

// ExportStandings renders the season's standings as an XLSX workbook.
func (s *SeasonService) ExportStandings(ctx context.Context, channel string, seasonNumber int) (ReportResult, error) {
	exportTx := func(ctx context.Context, db bun.IDB) (ReportResult, error) {
		standings, err := s.computeStandings(ctx, db, channel, seasonNumber)
		if err != nil {
			if isBusinessError(err) {
				return results.FailureResult[*Report, error](err), nil
			}
			return ReportResult{}, err
		}

		data, err := BuildStandingsWorkbook(standings)
		if err != nil {
			return ReportResult{}, fmt.Errorf("failed to build standings workbook: %w", err)
		}
		return results.SuccessResult[*Report, error](&Report{
			Season:      standings.Season,
			ContentType: contentTypeXLSX,
			Filename:    fmt.Sprintf("season-%d-standings.xlsx", standings.Season.SeasonNumber),
			Data:        data,
		}), nil
	}

	return withTelemetry(s, ctx, "ExportStandings", channel, func(ctx context.Context) (ReportResult, error) {
		return runInTx(s, ctx, exportTx)
	})
}

func (s *SeasonService) computeStandings(ctx context.Context, db bun.IDB, channel string, seasonNumber int) (*Standings, error) {
	season, err := s.resolveSeason(ctx, db, channel, seasonNumber)
	if err != nil {
		return nil, err
	}

	weeks, err := s.weeks.ListArchivedLeaderboards(ctx, channel, season.SeasonStart, season.SeasonEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list season weeks: %w", err)
	}

	return &Standings{
		Season:    season,
		Weeks:     len(weeks),
		Standings: seasondomain.AggregateSeason(weeks),
	}, nil
}
