package history

import (
	"log"

	"dirsweep/internal/report"
)

// Sink adapts the observation channel to the sweep journal.
// Write failures are logged and swallowed; history must never abort a sweep.
type Sink struct {
	db     *SweepDB
	logger *log.Logger
}

func NewSink(db *SweepDB, logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &Sink{db: db, logger: logger}
}

func (s *Sink) Record(e report.Event) {
	if err := s.db.Record(e); err != nil {
		s.logger.Printf("failed to record event to database: %v", err)
	}
}
