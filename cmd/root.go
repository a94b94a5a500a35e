package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/config"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/handler"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/health"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/i18n"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/locate"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/services/data"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/services/geocode"
	"github.com/thanseerjelani/mgnrega-dashboard/internal/store"
)

func Run() error {
	logger := setupLogger()
	slog.SetDefault(logger)

	cfg := config.Load()

	bundle := i18n.Default()
	if err := bundle.Validate(); err != nil {
		return fmt.Errorf("translation tables: %w", err)
	}

	st := store.New(cfg.StateFile)
	slog.Info("selection state loaded",
		"language", st.Language(), "file", cfg.StateFile)

	dataClient := data.NewClient(cfg.APIBaseURL)
	cached := data.NewCachedClient(dataClient)
	geocoder := geocode.NewClient(cfg.APIBaseURL)
	detector := locate.NewDetector(cached, geocoder, st, bundle, cfg.SupportedState)

	dashboard := handler.NewDashboardHandler(cached, detector, st, bundle)

	// Background liveness poll: writes only the offline flag.
	pollCtx, pollCancel := context.WithCancel(context.Background())
	defer pollCancel()
	health.NewPoller(dataClient, st, cfg.HealthInterval).Start(pollCtx)

	// Initialize router
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", dashboard.Health).Methods(http.MethodGet)

	// API v1 subrouter
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/states", dashboard.GetStates).Methods(http.MethodGet)
	api.HandleFunc("/states/retry", dashboard.RetryStates).Methods(http.MethodPost)
	api.HandleFunc("/districts", dashboard.GetDistricts).Methods(http.MethodGet)
	api.HandleFunc("/performance", dashboard.GetPerformance).Methods(http.MethodGet)
	api.HandleFunc("/comparison", dashboard.GetComparison).Methods(http.MethodGet)
	api.HandleFunc("/selection", dashboard.GetSelection).Methods(http.MethodGet)
	api.HandleFunc("/selection/state", dashboard.SetState).Methods(http.MethodPut)
	api.HandleFunc("/selection/district", dashboard.SetDistrict).Methods(http.MethodPut)
	api.HandleFunc("/language", dashboard.SetLanguage).Methods(http.MethodPut)
	api.HandleFunc("/detect-location", dashboard.DetectLocation).Methods(http.MethodPost)

	var h http.Handler = r

	// Recovery (catches panics)
	h = handlers.RecoveryHandler()(h)

	// CORS
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)

	// Logging
	h = handlers.LoggingHandler(os.Stdout, h)

	slog.Info("starting dashboard server",
		"backend", cfg.APIBaseURL, "supported_state", cfg.SupportedState)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: h,
	}

	return startServer(server)
}

func setupLogger() *slog.Logger {
	var handler slog.Handler
	isDevelopment := true

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if isDevelopment {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func startServer(server *http.Server) error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case err := <-serverError:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		slog.Info("server stopped gracefully")
	}

	return nil
}
