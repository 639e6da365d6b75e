//go:build integration

package competitionintegrationtests

import (
	"context"
	"os"
	"testing"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitiondb "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/integration_tests/testutils"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/metrics"
	seasontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/season"
	"go.opentelemetry.io/otel/trace/noop"
)

var shared testutils.SharedEnv

func TestMain(m *testing.M) {
	code := m.Run()
	shared.Cleanup()
	os.Exit(code)
}

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Env     *testutils.TestEnvironment
	Repo    competitiondb.Repository
	Service *competitionservice.CompetitionService
	Jobs    *testutils.RecordingEnqueuer
	Seasons *stubSeasons
}

type stubSeasons struct {
	season *seasontypes.Season
}

func (s *stubSeasons) GetCurrentSeason(context.Context, string) (*seasontypes.Season, error) {
	return s.season, nil
}

func setup(t *testing.T) TestDeps {
	t.Helper()
	env := shared.Get(t)

	repo := competitiondb.NewRepository(env.DB)
	jobs := &testutils.RecordingEnqueuer{}
	seasons := &stubSeasons{}
	service := competitionservice.NewCompetitionService(
		repo,
		seasons,
		jobs,
		testutils.TestLogger(t),
		metrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test_competition_service"),
		env.DB,
		competitionservice.Config{HighScoreRankCutoff: 3},
	)
	return TestDeps{Env: env, Repo: repo, Service: service, Jobs: jobs, Seasons: seasons}
}
