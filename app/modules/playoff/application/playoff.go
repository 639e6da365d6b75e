package playoffservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	playoffdomain "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/domain"
	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	playofftypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/playoff"
	"github.com/uptrace/bun"
)

// CreatePlayoff seeds a new bracket, replacing any playoff still running in
// the channel, and opens its first round.
func (s *PlayoffService) CreatePlayoff(ctx context.Context, req CreatePlayoffRequest) (PlayoffResult, error) {
	createTx := func(ctx context.Context, db bun.IDB) (PlayoffResult, error) {
		fail := func(err error) (PlayoffResult, error) {
			return results.FailureResult[*PlayoffCreated, error](err), nil
		}

		if req.ChannelName == "" {
			return fail(ErrChannelRequired)
		}
		seeds, err := buildSeeds(req.Seeds)
		if err != nil {
			return fail(err)
		}
		games, err := playoffdomain.GenerateBracket(len(seeds))
		if err != nil {
			return fail(err)
		}

		if err := s.repo.ArchiveActiveRound(ctx, db, req.ChannelName); err != nil {
			return PlayoffResult{}, fmt.Errorf("failed to archive current round: %w", err)
		}
		if err := s.repo.ArchiveActivePlayoff(ctx, db, req.ChannelName); err != nil {
			return PlayoffResult{}, fmt.Errorf("failed to archive current playoff: %w", err)
		}

		playoff := &playoffdb.Playoff{
			ChannelName:  req.ChannelName,
			SeasonNumber: req.SeasonNumber,
			Seeds:        seeds,
		}
		if err := s.repo.InsertPlayoff(ctx, db, playoff); err != nil {
			return PlayoffResult{}, err
		}

		round := &playoffdb.Round{
			PlayoffID:   playoff.ID,
			ChannelName: req.ChannelName,
			RoundNumber: 1,
			RoundName:   playoffdomain.RoundName(len(games)),
			Games:       games,
		}
		if err := s.repo.InsertRound(ctx, db, round); err != nil {
			return PlayoffResult{}, err
		}

		return results.SuccessResult[*PlayoffCreated, error](&PlayoffCreated{
			Playoff: playoff.ToType(),
			Round:   round.ToType(),
		}), nil
	}

	return withTelemetry(s, ctx, "CreatePlayoff", req.ChannelName, func(ctx context.Context) (PlayoffResult, error) {
		return runInTx(s, ctx, createTx)
	})
}

// buildSeeds numbers usernames from 1 in the order given.
func buildSeeds(usernames []string) ([]playofftypes.BracketSeed, error) {
	seen := make(map[string]struct{}, len(usernames))
	seeds := make([]playofftypes.BracketSeed, 0, len(usernames))
	for i, raw := range usernames {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, ErrEmptySeed
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSeed, name)
		}
		seen[key] = struct{}{}
		seeds = append(seeds, playofftypes.BracketSeed{Seed: i + 1, Username: name})
	}
	return seeds, nil
}

// validateGames checks a round can be resolved against seeds.
func validateGames(seeds []playofftypes.BracketSeed, games []int) error {
	if len(games) == 0 || len(games)%2 != 0 {
		return ErrInvalidRound
	}
	known := make(map[int]struct{}, len(seeds))
	for _, seed := range seeds {
		known[seed.Seed] = struct{}{}
	}
	used := make(map[int]struct{}, len(games))
	for _, g := range games {
		if _, ok := known[g]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownSeed, g)
		}
		if _, dup := used[g]; dup {
			return ErrInvalidRound
		}
		used[g] = struct{}{}
	}
	return nil
}

// loadActivePlayoff maps a missing playoff to ErrNoActivePlayoff.
func (s *PlayoffService) loadActivePlayoff(ctx context.Context, db bun.IDB, channel string, lock bool) (*playoffdb.Playoff, error) {
	var (
		playoff *playoffdb.Playoff
		err     error
	)
	if lock {
		playoff, err = s.repo.GetActivePlayoffForUpdate(ctx, db, channel)
	} else {
		playoff, err = s.repo.GetActivePlayoff(ctx, db, channel)
	}
	if err != nil {
		if errors.Is(err, playoffdb.ErrNotFound) {
			return nil, ErrNoActivePlayoff
		}
		return nil, err
	}
	return playoff, nil
}

// loadActiveRound maps a missing round to ErrNoActiveRound.
func (s *PlayoffService) loadActiveRound(ctx context.Context, db bun.IDB, channel string, lock bool) (*playoffdb.Round, error) {
	var (
		round *playoffdb.Round
		err   error
	)
	if lock {
		round, err = s.repo.GetActiveRoundForUpdate(ctx, db, channel)
	} else {
		round, err = s.repo.GetActiveRound(ctx, db, channel)
	}
	if err != nil {
		if errors.Is(err, playoffdb.ErrRoundNotFound) {
			return nil, ErrNoActiveRound
		}
		return nil, err
	}
	return round, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrNoActivePlayoff) || errors.Is(err, ErrNoActiveRound)
}
