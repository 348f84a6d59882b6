package main

import (
	"log/slog"
	"net/http"
	"os"

	"review-backend/config"
	"review-backend/internal/analysis"
	"review-backend/internal/api"
	"review-backend/internal/classifier"
	"review-backend/internal/logging"
	"review-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	logging.InitLogger()
	config.LoadEnv()

	// A failed model load is not fatal: the pipeline serves all-neutral
	// results until a working model is deployed.
	var model classifier.Classifier
	if vader, err := classifier.NewVADER(); err != nil {
		slog.Warn("classifier unavailable, running degraded", "error", err)
	} else {
		model = vader
	}

	cfg := analysis.DefaultConfig()
	cfg.SampleCap = config.EnvInt("VOCAB_SAMPLE_CAP", cfg.SampleCap)
	cfg.TopWords = config.EnvInt("TOP_WORDS_LIMIT", cfg.TopWords)

	svc := analysis.NewService(service.Normalize, model, service.DefaultStopwords(), cfg)
	handler := api.NewHandler(svc)

	// Router Setup
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// CORS - the dashboard frontend may be served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	slog.Info("starting review analytics backend", "port", port, "degraded", model == nil)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
