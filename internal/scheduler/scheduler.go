package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"dirsweep/internal/cleaner"
	"dirsweep/internal/fsops"
	"dirsweep/internal/metrics"
	"dirsweep/internal/report"
)

// Job describes one sweep: the root to clean, how old an entry must be to
// qualify for deletion, and whether deletions are real.
type Job struct {
	Root       string
	MinimumAge time.Duration
	Mode       cleaner.RunMode
}

// RunOnce performs a single sweep cycle. The age threshold is computed
// exactly once per cycle, so every comparison within the cycle is
// consistent even when the traversal takes wall-clock time.
func RunOnce(ctx context.Context, job Job, fs fsops.Filesystem, sink report.Sink, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if fs == nil {
		return errors.New("nil filesystem")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	metrics.RecordSweepRun()

	oldestAllowed := start.Add(-job.MinimumAge)
	logger.Printf("sweeping %s: removing entries last modified before %s (%s)",
		job.Root, oldestAllowed.Format(time.RFC3339), job.Mode)

	tally := &report.Tally{}
	eventSink := report.Sink(tally)
	if sink != nil {
		eventSink = report.NewMultiSink(sink, tally)
	}

	c := cleaner.New(fs, eventSink)
	c.Clean(job.Root, oldestAllowed, job.Mode)

	elapsed := time.Since(start).Seconds()
	metrics.SweepDuration.Observe(elapsed)

	logger.Printf("cycle complete: removed=%d would_remove=%d skipped=%d errors=%d duration=%.3fs",
		tally.Removed, tally.WouldRemove, tally.Skipped, tally.Errors, elapsed)
	return nil
}

// Run sweeps immediately and then once per interval until the context is
// cancelled. Each tick is an independent invocation with its own threshold.
func Run(ctx context.Context, job Job, interval time.Duration, fs fsops.Filesystem, sink report.Sink, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	if err := RunOnce(ctx, job, fs, sink, logger); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Println("scheduler shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := RunOnce(ctx, job, fs, sink, logger); err != nil {
				logger.Printf("error running cycle: %v", err)
			}
		}
	}
}
