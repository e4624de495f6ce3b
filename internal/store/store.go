// Package store persists texts, segmentation and location data in DuckDB.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
)

// ErrNotFound is returned when a requested text or record does not exist.
var ErrNotFound = errors.New("not found")

// Store manages all data persistence via DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ulysses-guide.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	seqs := []string{
		"CREATE SEQUENCE IF NOT EXISTS extracted_locations_seq",
	}
	for _, seq := range seqs {
		if _, err := s.DB.Exec(seq); err != nil {
			return fmt.Errorf("creating sequence: %w", err)
		}
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS texts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			source TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS passages (
			text_id TEXT NOT NULL,
			speaker TEXT NOT NULL,
			speaker_order INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			line INTEGER NOT NULL,
			body TEXT NOT NULL,
			PRIMARY KEY (text_id, speaker_order, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS sentiment (
			text_id TEXT NOT NULL,
			speaker TEXT NOT NULL,
			speaker_order INTEGER NOT NULL,
			neg DOUBLE NOT NULL,
			neu DOUBLE NOT NULL,
			pos DOUBLE NOT NULL,
			compound DOUBLE NOT NULL,
			PRIMARY KEY (text_id, speaker)
		)`,
		`CREATE TABLE IF NOT EXISTS extraction_meta (
			text_id TEXT PRIMARY KEY,
			backend TEXT NOT NULL,
			extracted_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS extracted_locations (
			id INTEGER PRIMARY KEY DEFAULT nextval('extracted_locations_seq'),
			text_id TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			context_quotes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			first_text_id TEXT NOT NULL,
			mention_count INTEGER NOT NULL,
			text_ids TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS coordinates (
			location_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE NOT NULL,
			lon DOUBLE NOT NULL,
			manual BOOLEAN NOT NULL DEFAULT false,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SetMeta records a key/value pair such as a run timestamp.
func (s *Store) SetMeta(key, value string) error {
	_, err := s.DB.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

// Meta returns a stored value, or "" when unset.
func (s *Store) Meta(key string) string {
	var v sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&v)
	return v.String
}

func (s *Store) count(query string, args ...any) int {
	var n int
	s.DB.QueryRow(query, args...).Scan(&n)
	return n
}

// TextCount returns the number of stored texts.
func (s *Store) TextCount() int {
	return s.count("SELECT COUNT(*) FROM texts")
}

// SegmentedCount returns how many texts have been segmented.
func (s *Store) SegmentedCount() int {
	return s.count("SELECT COUNT(DISTINCT text_id) FROM passages")
}

// ScoredCount returns how many texts have sentiment scores.
func (s *Store) ScoredCount() int {
	return s.count("SELECT COUNT(DISTINCT text_id) FROM sentiment")
}

// ExtractionCount returns how many texts have been extracted.
func (s *Store) ExtractionCount() int {
	return s.count("SELECT COUNT(*) FROM extraction_meta")
}

// LocationCount returns the number of aggregated locations.
func (s *Store) LocationCount() int {
	return s.count("SELECT COUNT(*) FROM locations")
}

// CoordinateCount returns the number of positioned locations.
func (s *Store) CoordinateCount() int {
	return s.count("SELECT COUNT(*) FROM coordinates")
}
