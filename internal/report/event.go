package report

import "time"

// Action classifies what happened to a single entry during a sweep.
type Action string

const (
	ActionRemove Action = "REMOVE"
	ActionDryRun Action = "DRY_RUN"
	ActionSkip   Action = "SKIP"
	ActionError  Action = "ERROR"
)

// Event is one per-entry observation emitted during a sweep.
type Event struct {
	Action Action
	Path   string
	Err    error
	Time   time.Time
}

// Sink receives sweep observations. Implementations must not fail the
// sweep; anything that can go wrong inside a sink stays inside the sink.
type Sink interface {
	Record(Event)
}

// Removed reports an entry that was actually deleted.
func Removed(path string) Event {
	return Event{Action: ActionRemove, Path: path, Time: time.Now()}
}

// WouldRemove reports an entry a dry run would have deleted.
func WouldRemove(path string) Event {
	return Event{Action: ActionDryRun, Path: path, Time: time.Now()}
}

// Skipped reports an entry left alone because it is not old enough.
func Skipped(path string) Event {
	return Event{Action: ActionSkip, Path: path, Time: time.Now()}
}

// Failed reports a per-entry error that did not abort the sweep.
func Failed(path string, err error) Event {
	return Event{Action: ActionError, Path: path, Err: err, Time: time.Now()}
}

// MultiSink fans every event out to all wrapped sinks in order.
type MultiSink []Sink

func NewMultiSink(sinks ...Sink) MultiSink {
	return MultiSink(sinks)
}

func (m MultiSink) Record(e Event) {
	for _, s := range m {
		s.Record(e)
	}
}

// Discard drops all events.
type Discard struct{}

func (Discard) Record(Event) {}

// MemorySink collects events for inspection in tests.
type MemorySink struct {
	Events []Event
}

func (m *MemorySink) Record(e Event) {
	m.Events = append(m.Events, e)
}

// PathsByAction returns the paths of all recorded events with the given action.
func (m *MemorySink) PathsByAction(a Action) []string {
	var paths []string
	for _, e := range m.Events {
		if e.Action == a {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Tally counts events per action. Used for the end-of-cycle summary line.
type Tally struct {
	Removed     int
	WouldRemove int
	Skipped     int
	Errors      int
}

func (t *Tally) Record(e Event) {
	switch e.Action {
	case ActionRemove:
		t.Removed++
	case ActionDryRun:
		t.WouldRemove++
	case ActionSkip:
		t.Skipped++
	case ActionError:
		t.Errors++
	}
}
