package fsops

import "time"

// Entry is one filesystem object as seen during traversal.
// Entries are transient; nothing about them is cached between steps.
type Entry struct {
	Path    string
	IsDir   bool
	ModTime time.Time
}

// Filesystem abstracts the three operations the sweep policy needs
// Enables swapping in an in-memory tree to prove dry-run never deletes
type Filesystem interface {
	// IsDir reports whether path is a directory. It returns false when the
	// path cannot be classified (missing, permission denied), so callers
	// must not treat the answer as authoritative under transient errors.
	IsDir(path string) bool

	// ListChildren returns the immediate children of a directory. Entries
	// whose metadata cannot be read are skipped; an error is returned only
	// when the directory itself cannot be enumerated.
	ListChildren(path string) ([]Entry, error)

	// Remove deletes exactly one filesystem object. Failures are reported
	// by return value; the caller decides whether to log and continue.
	Remove(path string) error
}
