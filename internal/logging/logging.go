package logging

import (
	"io"
	"log"
	"os"
)

// New creates the process logger. When logFile is non-empty, output is
// mirrored to that file in addition to stdout; a file that cannot be
// opened degrades to stdout-only logging rather than failing startup.
func New(logFile string) *log.Logger {
	if logFile == "" {
		return log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("failed to open log file %s: %v", logFile, err)
		return log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	}

	mw := io.MultiWriter(os.Stdout, f)
	return log.New(mw, "", log.LstdFlags|log.Lmicroseconds)
}
