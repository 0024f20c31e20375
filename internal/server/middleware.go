package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_http_requests_total",
	Help: "HTTP requests served, by method, pattern and status.",
}, []string{"method", "pattern", "status"})

// statusRecorder captures the written status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMiddleware wraps the mux with request-id tagging, request logging,
// CORS headers and a request counter. Order matters: CORS must run even for
// preflight requests that never reach a route.
func withMiddleware(mux *http.ServeMux, cors config.CORS, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applyCORS(w, cors)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		requestID := uuid.NewString()
		reqLogger := logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		_, pattern := mux.Handler(r)
		mux.ServeHTTP(rec, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))

		if pattern == "" {
			pattern = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(rec.status)).Inc()
		reqLogger.Info().
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

func applyCORS(w http.ResponseWriter, cors config.CORS) {
	w.Header().Set("Access-Control-Allow-Origin", strings.Join(cors.AllowedOrigins, ","))
	w.Header().Set("Access-Control-Allow-Methods", strings.Join(cors.AllowedMethods, ","))
	w.Header().Set("Access-Control-Allow-Headers", strings.Join(cors.AllowedHeaders, ","))
}
