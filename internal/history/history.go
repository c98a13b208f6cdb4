package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"dirsweep/internal/report"
)

// SweepDB manages the SQLite database holding the sweep event journal
type SweepDB struct {
	db *sql.DB
}

// EventRecord is one persisted sweep observation
type EventRecord struct {
	ID           int64
	Timestamp    time.Time
	Action       string
	Path         string
	ErrorMessage string
	CreatedAt    time.Time
}

// Stats summarizes the journal over a trailing window
type Stats struct {
	Total     int64
	ByAction  map[string]int64
	StartDate time.Time
	EndDate   time.Time
}

// NewSweepDB opens (creating if necessary) the journal database
func NewSweepDB(dbPath string) (*SweepDB, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	// file: prefix with _loc=auto enables automatic DATETIME parsing
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_loc=auto")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	// Simple query instead of Ping() so the database file gets created
	if _, err = db.Exec("SELECT 1"); err != nil {
		return nil, fmt.Errorf("failed to initialize database (check permissions on %s): %w", dbPath, err)
	}

	// WAL mode: multiple readers, one writer
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err = db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	sdb := &SweepDB{db: db}
	if err = sdb.initSchema(); err != nil {
		return nil, err
	}

	err = nil
	return sdb, nil
}

func (d *SweepDB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		action TEXT NOT NULL,
		path TEXT NOT NULL,
		error_message TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_events_action ON events(action);
	CREATE INDEX IF NOT EXISTS idx_events_path ON events(path);

	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	INSERT OR IGNORE INTO schema_version (version) VALUES (1);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Record inserts one sweep observation into the journal
func (d *SweepDB) Record(e report.Event) error {
	errMsg := ""
	if e.Err != nil {
		errMsg = e.Err.Error()
	}
	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := d.db.Exec(
		`INSERT INTO events (timestamp, action, path, error_message) VALUES (?, ?, ?, ?)`,
		ts, string(e.Action), e.Path, errMsg,
	)
	return err
}

// Recent returns the n most recent events, newest first
func (d *SweepDB) Recent(n int) ([]EventRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, timestamp, action, path, error_message, created_at
		 FROM events ORDER BY timestamp DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ByAction returns up to limit events with the given action, newest first
func (d *SweepDB) ByAction(action string, limit int) ([]EventRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, timestamp, action, path, error_message, created_at
		 FROM events WHERE action = ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		action, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ByPathPattern returns up to limit events whose path matches the SQL LIKE
// pattern, newest first
func (d *SweepDB) ByPathPattern(pattern string, limit int) ([]EventRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, timestamp, action, path, error_message, created_at
		 FROM events WHERE path LIKE ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// GetStats summarizes the journal over the last days days
func (d *SweepDB) GetStats(days int) (*Stats, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	stats := &Stats{
		ByAction:  make(map[string]int64),
		StartDate: start,
		EndDate:   end,
	}

	rows, err := d.db.Query(
		`SELECT action, COUNT(*) FROM events WHERE timestamp >= ? GROUP BY action`,
		start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var action string
		var count int64
		if err := rows.Scan(&action, &count); err != nil {
			return nil, err
		}
		stats.ByAction[action] = count
		stats.Total += count
	}
	return stats, rows.Err()
}

func scanEvents(rows *sql.Rows) ([]EventRecord, error) {
	var records []EventRecord
	for rows.Next() {
		var rec EventRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Action, &rec.Path, &rec.ErrorMessage, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database connection
func (d *SweepDB) Close() error {
	return d.db.Close()
}

// Vacuum optimizes the database (run periodically)
func (d *SweepDB) Vacuum() error {
	_, err := d.db.Exec("VACUUM")
	return err
}
