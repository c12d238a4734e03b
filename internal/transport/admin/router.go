package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SpannerPinger runs a trivial query against the database.
type SpannerPinger struct {
	Client *spanner.Client
}

func (p SpannerPinger) Ping(ctx context.Context) error {
	iter := p.Client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()
	_, err := iter.Next()
	return err
}

// NewRouter serves liveness, readiness and Prometheus metrics for gatherer.
func NewRouter(env string, log *logger.Logger, db Pinger, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", healthLive(env))
		r.Get("/ready", healthReady(env, log, db))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

func healthLive(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, env, http.StatusOK, map[string]string{"status": "live"})
	}
}

func healthReady(env string, log *logger.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				log.Warn(ctx, "readiness check failed", err)
				writeJSON(w, env, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, env, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, env string, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Storefront-Env", env)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
