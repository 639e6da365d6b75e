package seasonhandlers

import (
	"context"

	seasonservice "github.com/Black-And-White-Club/pinball-bot/app/modules/season/application"
)

// ------------------------
// Fake Season Service
// ------------------------

type FakeSeasonService struct {
	trace []string

	CreateSeasonFunc         func(ctx context.Context, req seasonservice.CreateSeasonRequest) (seasonservice.SeasonResult, error)
	EditCurrentSeasonFunc    func(ctx context.Context, channel string, update seasonservice.SeasonUpdate) (seasonservice.SeasonResult, error)
	GetCurrentSeasonFunc     func(ctx context.Context, channel string) (seasonservice.SeasonResult, error)
	GetSeasonStandingsFunc   func(ctx context.Context, channel string, seasonNumber int) (seasonservice.StandingsResult, error)
	RenderStandingsChartFunc func(ctx context.Context, channel string, seasonNumber, top int) (seasonservice.ReportResult, error)
	ExportStandingsFunc      func(ctx context.Context, channel string, seasonNumber int) (seasonservice.ReportResult, error)
}

func NewFakeSeasonService() *FakeSeasonService {
	return &FakeSeasonService{trace: []string{}}
}

func (f *FakeSeasonService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeSeasonService) CreateSeason(ctx context.Context, req seasonservice.CreateSeasonRequest) (seasonservice.SeasonResult, error) {
	f.record("CreateSeason")
	if f.CreateSeasonFunc != nil {
		return f.CreateSeasonFunc(ctx, req)
	}
	return seasonservice.SeasonResult{}, nil
}

func (f *FakeSeasonService) EditCurrentSeason(ctx context.Context, channel string, update seasonservice.SeasonUpdate) (seasonservice.SeasonResult, error) {
	f.record("EditCurrentSeason")
	if f.EditCurrentSeasonFunc != nil {
		return f.EditCurrentSeasonFunc(ctx, channel, update)
	}
	return seasonservice.SeasonResult{}, nil
}

func (f *FakeSeasonService) GetCurrentSeason(ctx context.Context, channel string) (seasonservice.SeasonResult, error) {
	f.record("GetCurrentSeason")
	if f.GetCurrentSeasonFunc != nil {
		return f.GetCurrentSeasonFunc(ctx, channel)
	}
	return seasonservice.SeasonResult{}, nil
}

func (f *FakeSeasonService) GetSeasonStandings(ctx context.Context, channel string, seasonNumber int) (seasonservice.StandingsResult, error) {
	f.record("GetSeasonStandings")
	if f.GetSeasonStandingsFunc != nil {
		return f.GetSeasonStandingsFunc(ctx, channel, seasonNumber)
	}
	return seasonservice.StandingsResult{}, nil
}

func (f *FakeSeasonService) RenderStandingsChart(ctx context.Context, channel string, seasonNumber, top int) (seasonservice.ReportResult, error) {
	f.record("RenderStandingsChart")
	if f.RenderStandingsChartFunc != nil {
		return f.RenderStandingsChartFunc(ctx, channel, seasonNumber, top)
	}
	return seasonservice.ReportResult{}, nil
}

func (f *FakeSeasonService) ExportStandings(ctx context.Context, channel string, seasonNumber int) (seasonservice.ReportResult, error) {
	f.record("ExportStandings")
	if f.ExportStandingsFunc != nil {
		return f.ExportStandingsFunc(ctx, channel, seasonNumber)
	}
	return seasonservice.ReportResult{}, nil
}

func (f *FakeSeasonService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ seasonservice.Service = (*FakeSeasonService)(nil)
