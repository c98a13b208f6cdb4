package cleaner

import (
	"fmt"
	"time"

	"dirsweep/internal/fsops"
	"dirsweep/internal/report"
)

// Cleaner applies the age-filtering and recursive-deletion policy.
// It owns no state beyond its collaborators; all outcomes are emitted
// through the report sink, never returned.
type Cleaner struct {
	fs   fsops.Filesystem
	sink report.Sink
}

func New(fs fsops.Filesystem, sink report.Sink) *Cleaner {
	if sink == nil {
		sink = report.Discard{}
	}
	return &Cleaner{fs: fs, sink: sink}
}

// Clean lists the immediate children of root and removes every subtree
// whose top-level entry was last modified strictly before oldestAllowed.
// The age comparison happens only at the top level: once a subtree is
// selected, every descendant is deleted regardless of its own age.
func (c *Cleaner) Clean(root string, oldestAllowed time.Time, mode RunMode) {
	children, err := c.fs.ListChildren(root)
	if err != nil {
		c.sink.Record(report.Failed(root, fmt.Errorf("list %s: %w", root, err)))
		return
	}

	for _, child := range children {
		if child.ModTime.Before(oldestAllowed) {
			c.deleteRecursively(child.Path, mode)
		} else {
			c.sink.Record(report.Skipped(child.Path))
		}
	}
}

// deleteRecursively empties a directory depth-first and then removes the
// directory itself, or removes a single leaf. Per-entry failures are
// reported and the sweep continues.
func (c *Cleaner) deleteRecursively(path string, mode RunMode) {
	if c.fs.IsDir(path) {
		children, err := c.fs.ListChildren(path)
		if err != nil {
			// Unreadable subtree: skip it, keep going with siblings.
			return
		}
		for _, child := range children {
			c.deleteRecursively(child.Path, mode)
		}
	}
	c.removeOne(path, mode)
}

func (c *Cleaner) removeOne(path string, mode RunMode) {
	switch mode {
	case DryRun:
		c.sink.Record(report.WouldRemove(path))
	case Execute:
		c.sink.Record(report.Removed(path))
		if err := c.fs.Remove(path); err != nil {
			c.sink.Record(report.Failed(path, err))
		}
	}
}
