package metrics

import "dirsweep/internal/report"

// Sink adapts sweep observations to Prometheus counters.
// Init must have been called before the first event arrives.
type Sink struct{}

func (Sink) Record(e report.Event) {
	switch e.Action {
	case report.ActionRemove:
		EntriesRemovedTotal.Inc()
	case report.ActionDryRun:
		EntriesWouldRemoveTotal.Inc()
	case report.ActionSkip:
		EntriesSkippedTotal.Inc()
	case report.ActionError:
		ErrorsTotal.Inc()
	}
}
