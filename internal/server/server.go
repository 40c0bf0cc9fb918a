package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Houeta/empleados-api/internal/lib/logger/sl"
	"github.com/Houeta/empleados-api/internal/metrics"
	"github.com/Houeta/empleados-api/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP surface: health, data endpoints, and the
// prometheus exposition endpoint.
func NewRouter(
	log *slog.Logger,
	reg *prometheus.Registry,
	repo repository.EmpleadoRepoIface,
	mtr *metrics.Metrics,
) *http.ServeMux {
	empleados := NewEmpleadoHandler(log, repo, mtr)

	mux := http.NewServeMux()
	mux.Handle("/health", NewHealthHandler(log))
	mux.HandleFunc("/get", empleados.GetEmpleados)
	mux.HandleFunc("/post", empleados.CreateEmpleado)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return mux
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully with a bounded timeout.
func Start(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	repo repository.EmpleadoRepoIface,
	mtr *metrics.Metrics,
	port int,
) {
	var (
		readHeaderTO = 5 * time.Second
		readTO       = 10 * time.Second
		writeTO      = 10 * time.Second
		idleTO       = 60 * time.Second
		shutdownTO   = 10 * time.Second
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(log, reg, repo, mtr),
		ReadHeaderTimeout: readHeaderTO,
		ReadTimeout:       readTO,
		WriteTimeout:      writeTO,
		IdleTimeout:       idleTO,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	log.InfoContext(ctx, "HTTP server listening", slog.Int("port", port))

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", sl.Err(err))
		}
	case <-ctx.Done():
		// Shutdown blocks until every in-flight handler has finished, so the
		// caller can safely release shared resources once Start returns.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTO)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down HTTP server", sl.Err(err))
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", sl.Err(err))
		}
	}
}
