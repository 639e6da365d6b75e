//go:build integration

package playoffintegrationtests

import (
	"context"
	"os"
	"testing"

	playoffservice "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/application"
	playoffdb "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/integration_tests/testutils"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/metrics"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
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
	Repo    playoffdb.Repository
	Service *playoffservice.PlayoffService
	Weeks   *stubWeeks
}

type stubWeeks struct {
	week *competitiontypes.Week
}

func (s *stubWeeks) GetCurrentWeek(context.Context, string) (*competitiontypes.Week, error) {
	return s.week, nil
}

func setup(t *testing.T) TestDeps {
	t.Helper()
	env := shared.Get(t)

	repo := playoffdb.NewRepository(env.DB)
	weeks := &stubWeeks{}
	service := playoffservice.NewPlayoffService(
		repo,
		weeks,
		testutils.TestLogger(t),
		metrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test_playoff_service"),
		env.DB,
	)
	return TestDeps{Env: env, Repo: repo, Service: service, Weeks: weeks}
}
