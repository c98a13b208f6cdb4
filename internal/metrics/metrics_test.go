package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"dirsweep/internal/report"
)

// TestMetricsInit verifies that Init() is idempotent and registers metrics
func TestMetricsInit(t *testing.T) {
	// Call Init multiple times - should be idempotent via sync.Once
	Init()
	Init()
	Init()

	if EntriesRemovedTotal == nil {
		t.Error("EntriesRemovedTotal should be initialized")
	}
	if EntriesWouldRemoveTotal == nil {
		t.Error("EntriesWouldRemoveTotal should be initialized")
	}
	if EntriesSkippedTotal == nil {
		t.Error("EntriesSkippedTotal should be initialized")
	}
	if ErrorsTotal == nil {
		t.Error("ErrorsTotal should be initialized")
	}
	if SweepDuration == nil {
		t.Error("SweepDuration should be initialized")
	}
	if LastRunTimestamp == nil {
		t.Error("LastRunTimestamp should be initialized")
	}

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range mfs {
		if strings.HasPrefix(mf.GetName(), "dirsweep_") {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected dirsweep metrics registered with the default registry")
	}
}

// TestSinkRoutesActions verifies one counter increment per observation
func TestSinkRoutesActions(t *testing.T) {
	Init()

	before := testutil.ToFloat64(EntriesRemovedTotal)
	sink := Sink{}
	sink.Record(report.Removed("/tmp/a"))
	sink.Record(report.Removed("/tmp/b"))

	if got := testutil.ToFloat64(EntriesRemovedTotal); got != before+2 {
		t.Errorf("expected removed counter to grow by 2, got %.0f -> %.0f", before, got)
	}

	beforeErr := testutil.ToFloat64(ErrorsTotal)
	sink.Record(report.Failed("/tmp/c", nil))
	if got := testutil.ToFloat64(ErrorsTotal); got != beforeErr+1 {
		t.Errorf("expected error counter to grow by 1, got %.0f -> %.0f", beforeErr, got)
	}
}
