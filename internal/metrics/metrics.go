package metrics

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	initOnce    sync.Once
	serverMutex sync.Mutex
	currentSrv  *http.Server
)

// Sweep metrics
var (
	// EntriesRemovedTotal counts entries actually deleted.
	EntriesRemovedTotal prometheus.Counter

	// EntriesWouldRemoveTotal counts entries a dry run would have deleted.
	EntriesWouldRemoveTotal prometheus.Counter

	// EntriesSkippedTotal counts top-level entries left alone as too new.
	EntriesSkippedTotal prometheus.Counter

	// ErrorsTotal counts per-entry errors reported during sweeps.
	ErrorsTotal prometheus.Counter

	// SweepDuration tracks how long sweep cycles take.
	SweepDuration prometheus.Histogram

	// LastRunTimestamp records the Unix timestamp of the last sweep.
	LastRunTimestamp prometheus.Gauge
)

// Init initializes and registers all metrics with Prometheus.
// Safe to call multiple times (uses sync.Once).
func Init() {
	initOnce.Do(func() {
		EntriesRemovedTotal = NewCounter(
			"dirsweep_entries_removed_total",
			"Total number of filesystem entries removed.",
		)
		EntriesWouldRemoveTotal = NewCounter(
			"dirsweep_entries_would_remove_total",
			"Total number of entries a dry run would have removed.",
		)
		EntriesSkippedTotal = NewCounter(
			"dirsweep_entries_skipped_total",
			"Total number of top-level entries skipped as newer than the threshold.",
		)
		ErrorsTotal = NewCounter(
			"dirsweep_errors_total",
			"Total number of per-entry errors observed during sweeps.",
		)
		SweepDuration = NewDurationHistogram(
			"dirsweep_sweep_duration_seconds",
			"Duration of sweep cycles in seconds.",
		)
		LastRunTimestamp = NewGauge(
			"dirsweep_last_run_timestamp",
			"Timestamp of the last sweep run (Unix epoch seconds).",
		)

		prometheus.MustRegister(EntriesRemovedTotal)
		prometheus.MustRegister(EntriesWouldRemoveTotal)
		prometheus.MustRegister(EntriesSkippedTotal)
		prometheus.MustRegister(ErrorsTotal)
		prometheus.MustRegister(SweepDuration)
		prometheus.MustRegister(LastRunTimestamp)

		// Default value so the gauge appears in /metrics before the first sweep
		LastRunTimestamp.Set(0)
	})
}

// RecordSweepRun updates the last run timestamp to the current time.
func RecordSweepRun() {
	LastRunTimestamp.Set(float64(time.Now().Unix()))
}

// StartServer starts the metrics HTTP server on the specified address.
// Exposes /metrics (Prometheus) and /health.
func StartServer(addr string, logger *log.Logger) {
	serverMutex.Lock()
	defer serverMutex.Unlock()

	if currentSrv != nil {
		logger.Printf("metrics server already running on %s", currentSrv.Addr)
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","healthy":true}`))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	currentSrv = srv

	go func() {
		logger.Printf("metrics server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Printf("metrics server error: %v", err)
			ErrorsTotal.Inc()
		}
	}()

	// Give server 100ms to start
	time.Sleep(100 * time.Millisecond)
}

// Shutdown gracefully shuts down the metrics server.
func Shutdown(ctx context.Context, logger *log.Logger) {
	serverMutex.Lock()
	defer serverMutex.Unlock()

	if currentSrv == nil {
		return
	}

	if err := currentSrv.Shutdown(ctx); err != nil {
		logger.Printf("metrics server shutdown error: %v", err)
		ErrorsTotal.Inc()
	}
	currentSrv = nil
}
