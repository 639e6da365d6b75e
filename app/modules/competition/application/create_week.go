package competitionservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

const notApplicable = "N/A"

// CreateWeek archives the channel's open week and opens the next one.
func (s *CompetitionService) CreateWeek(ctx context.Context, req CreateWeekRequest) (CreateWeekResult, error) {
	createWeekTx := func(ctx context.Context, db bun.IDB) (CreateWeekResult, error) {
		return s.createWeekLogic(ctx, db, req)
	}

	result, err := withTelemetry(s, ctx, "CreateWeek", req.ChannelName, func(ctx context.Context) (CreateWeekResult, error) {
		return runInTx(s, ctx, createWeekTx)
	})
	if err != nil || !result.IsSuccess() {
		return result, err
	}

	created := *result.Success
	if created.Closed != nil {
		for _, job := range closedWeekJobs(created.Closed) {
			s.enqueue(ctx, job)
		}
	}
	if created.Week.VPSID != "" {
		s.enqueue(ctx, queue.EnsureHighScoreTableJob{Table: tableFromWeek(created.Week)})
	}
	return result, nil
}

func (s *CompetitionService) createWeekLogic(ctx context.Context, db bun.IDB, req CreateWeekRequest) (CreateWeekResult, error) {
	fail := func(err error) (CreateWeekResult, error) {
		return results.FailureResult[*WeekCreated, error](err), nil
	}

	if req.ChannelName == "" {
		return fail(ErrChannelRequired)
	}
	if strings.TrimSpace(req.Table) == "" {
		return fail(ErrTableRequired)
	}

	romURL, romName := req.ROMURL, req.ROMName
	if req.ROMRequired == nil || *req.ROMRequired {
		if romURL == "" {
			return fail(ErrMissingROMURL)
		}
		if romName == "" {
			return fail(ErrMissingROMName)
		}
	} else {
		romURL, romName = notApplicable, notApplicable
	}

	prev, err := s.repo.GetActiveWeekForUpdate(ctx, db, req.ChannelName)
	if err != nil && !errors.Is(err, competitiondb.ErrNotFound) {
		return CreateWeekResult{}, fmt.Errorf("failed to load active week: %w", err)
	}

	now := s.now()
	weekNumber := 1
	periodStart := now.Format(competitiondomain.DateLayout)
	periodEnd, _ := competitiondomain.ShiftDate(periodStart, competitiondomain.WeekLength-24*time.Hour)
	if prev != nil {
		weekNumber = prev.WeekNumber + 1
		if start, end, err := competitiondomain.NextPeriod(prev.PeriodStart, prev.PeriodEnd); err == nil {
			periodStart, periodEnd = start, end
		}
	}

	if req.PeriodStart != "" {
		if periodStart, err = competitiondomain.ParseDate(req.PeriodStart, now); err != nil {
			return fail(err)
		}
	}
	if req.PeriodEnd != "" {
		if periodEnd, err = competitiondomain.ParseDate(req.PeriodEnd, now); err != nil {
			return fail(err)
		}
	}

	mode := req.Mode
	if mode == "" {
		mode = s.defaultMode()
	}

	week := &competitiontypes.Week{
		ChannelName:   req.ChannelName,
		WeekNumber:    weekNumber,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		Table:         req.Table,
		AuthorName:    req.AuthorName,
		VersionNumber: req.VersionNumber,
		VPSID:         req.VPSID,
		Mode:          mode,
		TableURL:      req.TableURL,
		ROMURL:        romURL,
		ROMName:       romName,
		B2SURL:        req.B2SURL,
		Notes:         req.Notes,
		Scores:        competitiontypes.Leaderboard{},
	}

	if s.seasons != nil {
		season, err := s.seasons.GetCurrentSeason(ctx, req.ChannelName)
		if err != nil {
			return CreateWeekResult{}, fmt.Errorf("failed to look up current season: %w", err)
		}
		if season != nil {
			number := season.SeasonNumber
			week.Season = &number
			seasonWeek := 1
			if prev != nil && prev.Season != nil && *prev.Season == number && prev.SeasonWeekNumber != nil {
				seasonWeek = *prev.SeasonWeekNumber + 1
			}
			week.SeasonWeekNumber = &seasonWeek
		}
	}

	if err := s.repo.ArchiveActiveWeek(ctx, db, req.ChannelName); err != nil {
		return CreateWeekResult{}, fmt.Errorf("failed to archive current week: %w", err)
	}
	if err := s.repo.InsertWeek(ctx, db, competitiondb.WeekFromType(week)); err != nil {
		return CreateWeekResult{}, fmt.Errorf("failed to insert week: %w", err)
	}

	created := &WeekCreated{Week: week}
	if prev != nil {
		closed := prev.ToType()
		closed.IsArchived = true
		created.Closed = closed
	}
	return results.SuccessResult[*WeekCreated, error](created), nil
}

func (s *CompetitionService) defaultMode() string {
	if s.cfg.DefaultMode != "" {
		return s.cfg.DefaultMode
	}
	return competitiontypes.DefaultMode
}
