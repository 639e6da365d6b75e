package highscoreservice

import (
	"context"
	"errors"
	"strings"

	highscoredomain "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/domain"
	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
	"github.com/uptrace/bun"
)

// EnsureTable registers a table version so scores can be posted to it.
func (s *HighScoreService) EnsureTable(ctx context.Context, table highscoretypes.Table) (EnsureResult, error) {
	ensureTx := func(ctx context.Context, db bun.IDB) (EnsureResult, error) {
		if err := validateTable(table); err != nil {
			return results.FailureResult[*TableEnsured, error](err), nil
		}
		row, outcome, err := s.ensureTable(ctx, db, table)
		if err != nil {
			return EnsureResult{}, err
		}
		return results.SuccessResult[*TableEnsured, error](&TableEnsured{
			Table:   row.ToType(),
			Outcome: outcome,
		}), nil
	}

	return withTelemetry(s, ctx, "EnsureTable", table.VPSID, func(ctx context.Context) (EnsureResult, error) {
		return runInTx(s, ctx, ensureTx)
	})
}

func validateTable(table highscoretypes.Table) error {
	if strings.TrimSpace(table.VPSID) == "" {
		return ErrVPSIDRequired
	}
	if strings.TrimSpace(table.TableName) == "" {
		return ErrTableNameRequired
	}
	return nil
}

// ensureTable returns the stored version, inserting it when missing.
func (s *HighScoreService) ensureTable(ctx context.Context, db bun.IDB, table highscoretypes.Table) (*highscoredb.TableVersion, EnsureOutcome, error) {
	versions, err := s.repo.ListTableVersions(ctx, db, table.VPSID)
	if err != nil {
		return nil, "", err
	}
	for i := range versions {
		if versions[i].VersionNumber == table.VersionNumber {
			return &versions[i], OutcomeAlreadyExists, nil
		}
	}

	if table.Slug == "" {
		table.Slug = highscoredomain.TableSlug(table.TableName)
	}
	row := highscoredb.TableVersionFromType(table)
	if err := s.repo.InsertTable(ctx, db, row); err != nil {
		return nil, "", err
	}
	if len(versions) == 0 {
		return row, OutcomeCreated, nil
	}
	return row, OutcomeVersionAdded, nil
}

// searchTables runs a name search and classifies the result.
func (s *HighScoreService) searchTables(ctx context.Context, db bun.IDB, term string) ([]highscoredb.TableVersion, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrSearchTermRequired
	}
	found, err := s.repo.SearchTables(ctx, db, term, highscoredomain.MaxSearchResults+1)
	if err != nil {
		return nil, err
	}
	switch highscoredomain.ClassifySearch(len(found)) {
	case highscoredomain.SearchNotFound:
		return nil, ErrNoTablesFound
	case highscoredomain.SearchTooBroad:
		return nil, ErrSearchTooBroad
	}
	return found, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrSearchTermRequired) ||
		errors.Is(err, ErrNoTablesFound) ||
		errors.Is(err, ErrSearchTooBroad)
}

// GetTableHighScores lists the best scores of every matching table version.
func (s *HighScoreService) GetTableHighScores(ctx context.Context, query TableQuery) (TableScoresResult, error) {
	subject := query.VPSID
	if subject == "" {
		subject = query.SearchTerm
	}

	return withTelemetry(s, ctx, "GetTableHighScores", subject, func(ctx context.Context) (TableScoresResult, error) {
		fail := func(err error) (TableScoresResult, error) {
			return results.FailureResult[[]highscoretypes.TableScores, error](err), nil
		}

		var (
			versions []highscoredb.TableVersion
			err      error
		)
		if query.VPSID != "" {
			versions, err = s.repo.ListTableVersions(ctx, nil, query.VPSID)
			if err == nil && len(versions) == 0 {
				return fail(ErrTableNotFound)
			}
		} else {
			versions, err = s.searchTables(ctx, nil, query.SearchTerm)
		}
		if err != nil {
			if isBusinessError(err) {
				return fail(err)
			}
			return TableScoresResult{}, err
		}

		limit := query.Limit
		if limit <= 0 {
			limit = highscoredomain.DefaultScoresToShow
		}

		out := make([]highscoretypes.TableScores, 0, len(versions))
		for i := range versions {
			rows, err := s.repo.ListScores(ctx, nil, versions[i].ID)
			if err != nil {
				return TableScoresResult{}, err
			}
			out = append(out, highscoretypes.TableScores{
				Table:  versions[i].ToType(),
				Scores: highscoredomain.TopScores(toScores(rows), limit),
			})
		}
		return results.SuccessResult[[]highscoretypes.TableScores, error](out), nil
	})
}

func toScores(rows []highscoredb.HighScore) []highscoretypes.Score {
	scores := make([]highscoretypes.Score, 0, len(rows))
	for i := range rows {
		scores = append(scores, rows[i].ToType())
	}
	return scores
}

// lookupTable maps a missing version to ErrTableNotFound.
func (s *HighScoreService) lookupTable(ctx context.Context, db bun.IDB, vpsID, version string) (*highscoredb.TableVersion, error) {
	table, err := s.repo.GetTable(ctx, db, vpsID, version)
	if err != nil {
		if errors.Is(err, highscoredb.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}
