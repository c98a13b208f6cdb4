package fsops

import (
	"os"
	"path/filepath"
)

// OSFilesystem implements Filesystem using real os package calls
type OSFilesystem struct{}

func (OSFilesystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (OSFilesystem) ListChildren(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			// Entry vanished or is unreadable; skip it rather than
			// failing the whole listing.
			continue
		}
		entries = append(entries, Entry{
			Path:    filepath.Join(path, d.Name()),
			IsDir:   d.IsDir(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}

func (OSFilesystem) Remove(path string) error {
	return os.Remove(path)
}
