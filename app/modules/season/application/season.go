package seasonservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	seasondb "github.com/Black-And-White-Club/pinball-bot/app/modules/season/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"github.com/uptrace/bun"
)

// CreateSeason archives the channel's current season and opens a new one.
func (s *SeasonService) CreateSeason(ctx context.Context, req CreateSeasonRequest) (SeasonResult, error) {
	createTx := func(ctx context.Context, db bun.IDB) (SeasonResult, error) {
		fail := func(err error) (SeasonResult, error) {
			return results.FailureResult[*seasontypes.Season, error](err), nil
		}

		if req.ChannelName == "" {
			return fail(ErrChannelRequired)
		}
		if req.SeasonNumber < 0 {
			return fail(ErrInvalidSeasonNumber)
		}

		start, end, err := s.parseRange(req.SeasonStart, req.SeasonEnd)
		if err != nil {
			return fail(err)
		}

		prev, err := s.repo.GetActiveSeasonForUpdate(ctx, db, req.ChannelName)
		if err != nil && !errors.Is(err, seasondb.ErrNotFound) {
			return SeasonResult{}, fmt.Errorf("failed to load active season: %w", err)
		}

		number := req.SeasonNumber
		if number == 0 {
			number = 1
			if prev != nil {
				number = prev.SeasonNumber + 1
			}
		}
		name := strings.TrimSpace(req.SeasonName)
		if name == "" {
			name = fmt.Sprintf("Season %d", number)
		}

		if err := s.repo.ArchiveActiveSeason(ctx, db, req.ChannelName); err != nil {
			return SeasonResult{}, fmt.Errorf("failed to archive current season: %w", err)
		}

		row := &seasondb.Season{
			ChannelName:  req.ChannelName,
			SeasonNumber: number,
			SeasonName:   name,
			SeasonStart:  start,
			SeasonEnd:    end,
		}
		if err := s.repo.InsertSeason(ctx, db, row); err != nil {
			return SeasonResult{}, fmt.Errorf("failed to insert season: %w", err)
		}
		return results.SuccessResult[*seasontypes.Season, error](row.ToType()), nil
	}

	return withTelemetry(s, ctx, "CreateSeason", req.ChannelName, func(ctx context.Context) (SeasonResult, error) {
		return runInTx(s, ctx, createTx)
	})
}

// IsEmpty reports whether the update changes nothing.
func (u SeasonUpdate) IsEmpty() bool {
	return u.SeasonNumber == nil && u.SeasonName == nil && u.SeasonStart == nil && u.SeasonEnd == nil
}

// EditCurrentSeason changes fields of the channel's current season.
func (s *SeasonService) EditCurrentSeason(ctx context.Context, channel string, update SeasonUpdate) (SeasonResult, error) {
	editTx := func(ctx context.Context, db bun.IDB) (SeasonResult, error) {
		fail := func(err error) (SeasonResult, error) {
			return results.FailureResult[*seasontypes.Season, error](err), nil
		}

		if update.IsEmpty() {
			return fail(ErrNoFieldsToUpdate)
		}

		row, err := s.repo.GetActiveSeasonForUpdate(ctx, db, channel)
		if err != nil {
			if errors.Is(err, seasondb.ErrNotFound) {
				return fail(ErrNoActiveSeason)
			}
			return SeasonResult{}, fmt.Errorf("failed to load active season: %w", err)
		}

		if update.SeasonNumber != nil {
			if *update.SeasonNumber <= 0 {
				return fail(ErrInvalidSeasonNumber)
			}
			row.SeasonNumber = *update.SeasonNumber
		}
		if update.SeasonName != nil {
			row.SeasonName = *update.SeasonName
		}

		start, end := row.SeasonStart, row.SeasonEnd
		if update.SeasonStart != nil {
			start = *update.SeasonStart
		}
		if update.SeasonEnd != nil {
			end = *update.SeasonEnd
		}
		if row.SeasonStart, row.SeasonEnd, err = s.parseRange(start, end); err != nil {
			return fail(err)
		}

		if err := s.repo.UpdateSeason(ctx, db, row); err != nil {
			return SeasonResult{}, fmt.Errorf("failed to update season: %w", err)
		}
		return results.SuccessResult[*seasontypes.Season, error](row.ToType()), nil
	}

	return withTelemetry(s, ctx, "EditCurrentSeason", channel, func(ctx context.Context) (SeasonResult, error) {
		return runInTx(s, ctx, editTx)
	})
}

// GetCurrentSeason returns the channel's unarchived season.
func (s *SeasonService) GetCurrentSeason(ctx context.Context, channel string) (SeasonResult, error) {
	getTx := func(ctx context.Context, db bun.IDB) (SeasonResult, error) {
		season, err := s.resolveSeason(ctx, db, channel, 0)
		if err != nil {
			if isBusinessError(err) {
				return results.FailureResult[*seasontypes.Season, error](err), nil
			}
			return SeasonResult{}, err
		}
		return results.SuccessResult[*seasontypes.Season, error](season), nil
	}

	return withTelemetry(s, ctx, "GetCurrentSeason", channel, func(ctx context.Context) (SeasonResult, error) {
		return runInTx(s, ctx, getTx)
	})
}

// resolveSeason loads the current season for number 0, else the numbered one.
func (s *SeasonService) resolveSeason(ctx context.Context, db bun.IDB, channel string, number int) (*seasontypes.Season, error) {
	var (
		row *seasondb.Season
		err error
	)
	if number == 0 {
		row, err = s.repo.GetActiveSeason(ctx, db, channel)
	} else {
		row, err = s.repo.GetSeasonByNumber(ctx, db, channel, number)
	}
	if err != nil {
		if errors.Is(err, seasondb.ErrNotFound) {
			if number == 0 {
				return nil, ErrNoActiveSeason
			}
			return nil, fmt.Errorf("%w: %d", ErrSeasonNotFound, number)
		}
		return nil, fmt.Errorf("failed to load season: %w", err)
	}
	return row.ToType(), nil
}

func (s *SeasonService) parseRange(rawStart, rawEnd string) (string, string, error) {
	now := s.now()
	start, err := competitiondomain.ParseDate(rawStart, now)
	if err != nil {
		return "", "", err
	}
	end, err := competitiondomain.ParseDate(rawEnd, now)
	if err != nil {
		return "", "", err
	}
	// YYYY-MM-DD orders lexically.
	if end < start {
		return "", "", ErrInvalidSeasonRange
	}
	return start, end, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrNoActiveSeason) || errors.Is(err, ErrSeasonNotFound)
}
