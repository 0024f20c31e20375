package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia API routes plus health and metrics.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, triviaHandlers *trivia.HTTPHandlers, quizHandlers *quiz.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", triviaHandlers.HandleListCategories)
	mux.HandleFunc("GET /categories/{ordinal}/questions", triviaHandlers.HandleCategoryQuestions)
	mux.HandleFunc("GET /questions", triviaHandlers.HandleListQuestions)
	mux.HandleFunc("POST /questions", triviaHandlers.HandleCreateOrSearch)
	mux.HandleFunc("DELETE /questions/{id}", triviaHandlers.HandleDeleteQuestion)
	mux.HandleFunc("POST /quizzes", quizHandlers.HandlePlay)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: withMiddleware(mux, cfg.CORS, logger),
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
