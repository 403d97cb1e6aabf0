// Package httpapi assembles the public HTTP surface. It mounts domain
// handlers behind the shared middleware chain so transport concerns stay out
// of the handler packages.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	personhandler "peopledir/internal/person/handler"
	"peopledir/internal/platform/metrics"
	"peopledir/internal/platform/middleware"
	"peopledir/pkg/platform/httputil"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Persons        *personhandler.Handler
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints behind the middleware chain. Ordering
// matters: recovery wraps everything, request ids must exist before logging,
// and latency observation needs the resolved chi route pattern.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))
	if deps.RequestTimeout > 0 {
		r.Use(middleware.Timeout(deps.RequestTimeout))
	}

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		deps.Persons.Register(r)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
