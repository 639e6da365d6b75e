package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the API. /healthz and /metrics skip the rate limiter.
func NewRouter(api *API, limiter *ClientLimiter, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", api.HandleHealth)
	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(Throttle(limiter))

		r.Route("/channels/{channel}", func(r chi.Router) {
			r.Get("/week", api.HandleCurrentWeek)
			r.Get("/season/standings", api.HandleSeasonStandings)
			r.Get("/season/chart.png", api.HandleSeasonChart)
			r.Get("/season/standings.xlsx", api.HandleSeasonExport)
			r.Get("/playoff/matchups", api.HandlePlayoffMatchups)
		})

		r.Get("/highscores", api.HandleSearchHighScores)
		r.Get("/highscores/{vpsId}", api.HandleTableHighScores)
	})

	return r
}
