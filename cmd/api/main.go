// Package main starts the HTTP server that converts uploaded neural network
// model files into the Neuroscope graph format. It uses the internal handlers
// package to process incoming requests and return JSON responses.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neuroscope/core/cmd/api/middleware"
	"github.com/neuroscope/core/internal/config"
	"github.com/neuroscope/core/internal/handlers"
	"github.com/neuroscope/core/internal/metrics"
)

func newRouter(cfg config.Config, registry *metrics.Registry) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.Handle("/import/pytorch", handlers.ImportHandler(handlers.ImportConfig{
		MaxUploadBytes: cfg.MaxUploadBytes,
		Metrics:        registry,
	})).Methods(http.MethodPost)
	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}
	return router
}

func main() {
	cfg, err := config.Load(os.Getenv("NEUROSCOPE_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	registry := metrics.NewRegistry(prometheus.DefaultRegisterer)
	router := newRouter(cfg, registry)
	handler := middleware.Cors(cfg.CORSAllowedOrigin)(middleware.Instrument(registry)(router))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Printf("🚀 Server starting on %s", cfg.Addr)
	log.Fatal(server.ListenAndServe())
}
