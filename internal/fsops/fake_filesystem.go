package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FakeFilesystem implements Filesystem over an in-memory tree.
// Records all Remove calls so tests can prove dry-run never deletes.
type FakeFilesystem struct {
	nodes map[string]Entry

	// Calls holds one "rm:<path>" entry per Remove invocation.
	Calls []string

	// RemoveErr injects a failure for Remove on the given path.
	RemoveErr map[string]error

	// ListErr injects a failure for ListChildren on the given path.
	ListErr map[string]error
}

func NewFakeFilesystem() *FakeFilesystem {
	return &FakeFilesystem{
		nodes:     make(map[string]Entry),
		RemoveErr: make(map[string]error),
		ListErr:   make(map[string]error),
	}
}

// AddDir places a directory at path with the given modification time.
func (f *FakeFilesystem) AddDir(path string, modTime time.Time) {
	p := filepath.Clean(path)
	f.nodes[p] = Entry{Path: p, IsDir: true, ModTime: modTime}
}

// AddFile places a leaf entry at path with the given modification time.
func (f *FakeFilesystem) AddFile(path string, modTime time.Time) {
	p := filepath.Clean(path)
	f.nodes[p] = Entry{Path: p, IsDir: false, ModTime: modTime}
}

// Exists reports whether path is still present in the tree.
func (f *FakeFilesystem) Exists(path string) bool {
	_, ok := f.nodes[filepath.Clean(path)]
	return ok
}

// Paths returns every path currently in the tree, sorted.
func (f *FakeFilesystem) Paths() []string {
	paths := make([]string, 0, len(f.nodes))
	for p := range f.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (f *FakeFilesystem) IsDir(path string) bool {
	node, ok := f.nodes[filepath.Clean(path)]
	return ok && node.IsDir
}

func (f *FakeFilesystem) ListChildren(path string) ([]Entry, error) {
	p := filepath.Clean(path)
	if err, ok := f.ListErr[p]; ok {
		return nil, err
	}
	if node, ok := f.nodes[p]; !ok || !node.IsDir {
		return nil, &os.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}

	var children []Entry
	for candidate, node := range f.nodes {
		if filepath.Dir(candidate) == p && candidate != p {
			children = append(children, node)
		}
	}
	// Deterministic order for tests; the policy itself promises none.
	sort.Slice(children, func(i, j int) bool { return children[i].Path < children[j].Path })
	return children, nil
}

func (f *FakeFilesystem) Remove(path string) error {
	p := filepath.Clean(path)
	f.Calls = append(f.Calls, "rm:"+p)

	if err, ok := f.RemoveErr[p]; ok {
		return err
	}
	node, ok := f.nodes[p]
	if !ok {
		return &os.PathError{Op: "remove", Path: p, Err: os.ErrNotExist}
	}
	if node.IsDir {
		for candidate := range f.nodes {
			if filepath.Dir(candidate) == p && candidate != p {
				return fmt.Errorf("remove %s: directory not empty", p)
			}
		}
	}
	delete(f.nodes, p)
	return nil
}
