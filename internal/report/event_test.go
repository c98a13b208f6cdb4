package report

import (
	"errors"
	"reflect"
	"testing"
)

func TestTallyCounts(t *testing.T) {
	tally := &Tally{}
	tally.Record(Removed("/a"))
	tally.Record(Removed("/b"))
	tally.Record(WouldRemove("/c"))
	tally.Record(Skipped("/d"))
	tally.Record(Failed("/e", errors.New("x")))

	if tally.Removed != 2 || tally.WouldRemove != 1 || tally.Skipped != 1 || tally.Errors != 1 {
		t.Errorf("unexpected tally: %+v", tally)
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	a := &MemorySink{}
	b := &MemorySink{}
	sink := NewMultiSink(a, b)

	sink.Record(Removed("/x"))

	if len(a.Events) != 1 || len(b.Events) != 1 {
		t.Errorf("expected both sinks to receive the event, got %d and %d", len(a.Events), len(b.Events))
	}
}

func TestMemorySinkPathsByAction(t *testing.T) {
	m := &MemorySink{}
	m.Record(Removed("/a"))
	m.Record(Skipped("/b"))
	m.Record(Removed("/c"))

	got := m.PathsByAction(ActionRemove)
	want := []string{"/a", "/c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEventConstructorsStampTime(t *testing.T) {
	e := Skipped("/a")
	if e.Time.IsZero() {
		t.Error("constructor should stamp the event time")
	}
	if e.Action != ActionSkip || e.Path != "/a" {
		t.Errorf("unexpected event: %+v", e)
	}
}
