package cleaner

// RunMode controls whether a sweep mutates storage or only reports
// intended actions. Immutable for the duration of one invocation.
type RunMode int

const (
	DryRun RunMode = iota
	Execute
)

func (m RunMode) String() string {
	switch m {
	case Execute:
		return "execute"
	default:
		return "dry-run"
	}
}
