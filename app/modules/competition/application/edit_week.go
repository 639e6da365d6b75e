package competitionservice

import (
	"context"
	"errors"
	"fmt"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// IsEmpty reports whether the update changes nothing.
func (u WeekUpdate) IsEmpty() bool {
	return u.WeekNumber == nil && u.PeriodStart == nil && u.PeriodEnd == nil &&
		u.Table == nil && u.AuthorName == nil && u.VersionNumber == nil &&
		u.VPSID == nil && u.Mode == nil && u.TableURL == nil && u.ROMURL == nil &&
		u.ROMName == nil && u.B2SURL == nil && u.Notes == nil
}

// EditCurrentWeek changes fields of the channel's open week.
func (s *CompetitionService) EditCurrentWeek(ctx context.Context, channel string, update WeekUpdate) (WeekResult, error) {
	editTx := func(ctx context.Context, db bun.IDB) (WeekResult, error) {
		if update.IsEmpty() {
			return results.FailureResult[*competitiontypes.Week, error](ErrNoFieldsToUpdate), nil
		}

		row, err := s.repo.GetActiveWeekForUpdate(ctx, db, channel)
		if err != nil {
			if errors.Is(err, competitiondb.ErrNotFound) {
				return results.FailureResult[*competitiontypes.Week, error](ErrNoActiveWeek), nil
			}
			return WeekResult{}, fmt.Errorf("failed to load active week: %w", err)
		}

		if err := s.applyWeekUpdate(row, update); err != nil {
			return results.FailureResult[*competitiontypes.Week, error](err), nil
		}

		if err := s.repo.UpdateWeek(ctx, db, row); err != nil {
			return WeekResult{}, fmt.Errorf("failed to update week: %w", err)
		}
		return results.SuccessResult[*competitiontypes.Week, error](row.ToType()), nil
	}

	return withTelemetry(s, ctx, "EditCurrentWeek", channel, func(ctx context.Context) (WeekResult, error) {
		return runInTx(s, ctx, editTx)
	})
}

func (s *CompetitionService) applyWeekUpdate(row *competitiondb.Week, u WeekUpdate) error {
	now := s.now()
	if u.PeriodStart != nil {
		start, err := competitiondomain.ParseDate(*u.PeriodStart, now)
		if err != nil {
			return err
		}
		row.PeriodStart = start
	}
	if u.PeriodEnd != nil {
		end, err := competitiondomain.ParseDate(*u.PeriodEnd, now)
		if err != nil {
			return err
		}
		row.PeriodEnd = end
	}
	if u.WeekNumber != nil {
		row.WeekNumber = *u.WeekNumber
	}
	if u.Mode != nil {
		row.Mode = *u.Mode
		if row.Mode == "" {
			row.Mode = s.defaultMode()
		}
	}
	setString(&row.Table, u.Table)
	setString(&row.AuthorName, u.AuthorName)
	setString(&row.VersionNumber, u.VersionNumber)
	setString(&row.VPSID, u.VPSID)
	setString(&row.TableURL, u.TableURL)
	setString(&row.ROMURL, u.ROMURL)
	setString(&row.ROMName, u.ROMName)
	setString(&row.B2SURL, u.B2SURL)
	setString(&row.Notes, u.Notes)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
