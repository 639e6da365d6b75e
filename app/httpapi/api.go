// Package httpapi serves the read-only HTTP view of competitions, seasons,
// playoffs and high scores.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	highscoreservice "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/application"
	playoffservice "github.com/Black-And-White-Club/pinball-bot/app/modules/playoff/application"
	seasonservice "github.com/Black-And-White-Club/pinball-bot/app/modules/season/application"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Services are the module services the API reads from.
type Services struct {
	Competition competitionservice.Service
	Season      seasonservice.Service
	Playoff     playoffservice.Service
	HighScore   highscoreservice.Service
}

// API holds the HTTP handlers.
type API struct {
	services Services
	health   []HealthChecker
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewAPI creates the handlers. Every checker must pass for /healthz to
// report ok.
func NewAPI(services Services, logger *slog.Logger, tracer trace.Tracer, health ...HealthChecker) *API {
	return &API{
		services: services,
		health:   health,
		logger:   logger,
		tracer:   tracer,
	}
}

// notFound lists failures that mean the resource does not exist yet.
var notFound = []error{
	competitionservice.ErrNoActiveWeek,
	seasonservice.ErrNoActiveSeason,
	seasonservice.ErrSeasonNotFound,
	playoffservice.ErrNoActivePlayoff,
	playoffservice.ErrNoActiveRound,
	highscoreservice.ErrNoTablesFound,
	highscoreservice.ErrTableNotFound,
}

// HandleHealth reports liveness of the database and queue.
func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	for _, c := range a.health {
		if err := c.HealthCheck(r.Context()); err != nil {
			a.logger.WarnContext(r.Context(), "Health check failed", attr.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleCurrentWeek returns the channel's open week with its leaderboard.
func (a *API) HandleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "API.HandleCurrentWeek")
	defer span.End()

	result, err := a.services.Competition.GetCurrentWeek(ctx, chi.URLParam(r, "channel"))
	respond(ctx, a, w, result, err)
}

// HandleSeasonStandings returns season totals. ?season=N picks an earlier
// season.
func (a *API) HandleSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "API.HandleSeasonStandings")
	defer span.End()

	season, ok := intParam(w, r, "season", 0)
	if !ok {
		return
	}
	result, err := a.services.Season.GetSeasonStandings(ctx, chi.URLParam(r, "channel"), season)
	respond(ctx, a, w, result, err)
}

// HandleSeasonChart renders the standings as a PNG bar chart.
func (a *API) HandleSeasonChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "API.HandleSeasonChart")
	defer span.End()

	season, ok := intParam(w, r, "season", 0)
	if !ok {
		return
	}
	top, ok := intParam(w, r, "top", 0)
	if !ok {
		return
	}
	result, err := a.services.Season.RenderStandingsChart(ctx, chi.URLParam(r, "channel"), season, top)
	a.sendReport(ctx, w, result, err, false)
}

// HandleSeasonExport downloads the standings as a spreadsheet.
func (a *API) HandleSeasonExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "API.HandleSeasonExport")
	defer span.End()

	season, ok := intParam(w, r, "season", 0)
	if !ok {
		return
	}
	result, err := a.services.Season.ExportStandings(ctx, chi.URLParam(r, "channel"), season)
	a.sendReport(ctx, w, result, err, true)
}

// HandlePlayoffMatchups returns the live matchups of the active round.
func (a *API) HandlePlayoffMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "API.HandlePlayoffMatchups")
	defer span.End()

	result, err := a.services.Playoff.GetCurrentMatchups(ctx, chi.URLParam(r, "channel"))
	respond(ctx, a, w, result, err)
}

// HandleTableHighScores returns the scores of every version of a table.
func (a *API) HandleTableHighScores(w http.ResponseWriter, r *http.Request) {
	a.highScores(w, r, highscoreservice.TableQuery{VPSID: chi.URLParam(r, "vpsId")})
}

// HandleSearchHighScores finds tables by name with ?q=term.
func (a *API) HandleSearchHighScores(w http.ResponseWriter, r *http.Request) {
	a.highScores(w, r, highscoreservice.TableQuery{SearchTerm: r.URL.Query().Get("q")})
}

func (a *API) highScores(w http.ResponseWriter, r *http.Request, query highscoreservice.TableQuery) {
	ctx, span := a.tracer.Start(r.Context(), "API.HandleHighScores")
	defer span.End()

	limit, ok := intParam(w, r, "limit", 0)
	if !ok {
		return
	}
	query.Limit = limit
	result, err := a.services.HighScore.GetTableHighScores(ctx, query)
	respond(ctx, a, w, result, err)
}

func (a *API) sendReport(ctx context.Context, w http.ResponseWriter, result seasonservice.ReportResult, err error, attachment bool) {
	if !a.checkResult(ctx, w, err, result.Failure) {
		return
	}
	report := *result.Success
	w.Header().Set("Content-Type", report.ContentType)
	if attachment {
		w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Data); err != nil {
		a.logger.WarnContext(ctx, "Failed to write report", attr.Error(err))
	}
}

func respond[S any](ctx context.Context, a *API, w http.ResponseWriter, result results.OperationResult[S, error], err error) {
	if !a.checkResult(ctx, w, err, result.Failure) {
		return
	}
	writeJSON(w, http.StatusOK, *result.Success)
}

// checkResult writes the error response for err or failure and reports
// whether the caller should go on to write the success body.
func (a *API) checkResult(ctx context.Context, w http.ResponseWriter, err error, failure *error) bool {
	if err != nil {
		a.logger.ErrorContext(ctx, "HTTP request failed", attr.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	if failure != nil {
		writeError(w, failureStatus(*failure), (*failure).Error())
		return false
	}
	return true
}

func failureStatus(err error) int {
	for _, target := range notFound {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	return http.StatusBadRequest
}

func intParam(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
