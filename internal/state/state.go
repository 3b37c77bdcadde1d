package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    host        TEXT NOT NULL DEFAULT '',
    argv        TEXT NOT NULL,
    queries     INTEGER NOT NULL DEFAULT 0,
    exit_code   INTEGER NOT NULL DEFAULT 0,
    stdout      TEXT NOT NULL DEFAULT '',
    stderr      TEXT NOT NULL DEFAULT '',
    parse_error TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// argvSep joins argv tokens; it cannot appear in a command-line argument.
const argvSep = "\x00"

// Store wraps a SQLite database holding the run history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns $XDG_STATE_HOME/xdoctl/history.db.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "xdoctl", "history.db"), nil
}

// Open opens the history database at DefaultPath.
func Open() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath creates or opens the history database at path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL mode so the TUI and one-shot commands can share the file
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Run is one recorded batch execution.
type Run struct {
	ID         int64
	Host       string
	Argv       []string
	Queries    int
	ExitCode   int
	Stdout     string
	Stderr     string
	ParseError string
	CreatedAt  time.Time
}

// Record stores a run and returns its id.
func (s *Store) Record(r Run) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO runs (host, argv, queries, exit_code, stdout, stderr, parse_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, r.Host, strings.Join(r.Argv, argvSep), r.Queries, r.ExitCode, r.Stdout, r.Stderr, r.ParseError)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns the most recent runs first.
func (s *Store) List(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, host, argv, queries, exit_code, stdout, stderr, parse_error, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var r Run
		var argv string
		var created string
		if err := rows.Scan(&r.ID, &r.Host, &argv, &r.Queries, &r.ExitCode,
			&r.Stdout, &r.Stderr, &r.ParseError, &created); err != nil {
			return nil, err
		}
		r.Argv = strings.Split(argv, argvSep)
		r.CreatedAt = parseTimestamp(created)
		result = append(result, r)
	}
	return result, rows.Err()
}

// Get returns a single run by id.
func (s *Store) Get(id int64) (*Run, error) {
	var r Run
	var argv, created string
	err := s.db.QueryRow(`
		SELECT id, host, argv, queries, exit_code, stdout, stderr, parse_error, created_at
		FROM runs WHERE id = ?
	`, id).Scan(&r.ID, &r.Host, &argv, &r.Queries, &r.ExitCode,
		&r.Stdout, &r.Stderr, &r.ParseError, &created)
	if err != nil {
		return nil, err
	}
	r.Argv = strings.Split(argv, argvSep)
	r.CreatedAt = parseTimestamp(created)
	return &r, nil
}

// Prune deletes all but the newest keep runs and reports how many were removed.
func (s *Store) Prune(keep int) (int64, error) {
	res, err := s.db.Exec(`
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY id DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// parseTimestamp accepts both the CURRENT_TIMESTAMP text form and RFC3339,
// which modernc's driver may hand back for TIMESTAMP columns.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
