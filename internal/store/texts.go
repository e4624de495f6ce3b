package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// WriteText stores a text, assigning an id and timestamp when missing.
// Rewriting an existing id replaces its body.
func (s *Store) WriteText(t *model.Text) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt == "" {
		t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.DB.Exec("INSERT OR REPLACE INTO texts (id, title, source, body, created_at) VALUES (?, ?, ?, ?, ?)",
		t.ID, t.Title, t.Source, t.Body, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("writing text %s: %w", t.ID, err)
	}
	return nil
}

// ReadText loads a text by id, or by exact title when no id matches.
func (s *Store) ReadText(ref string) (*model.Text, error) {
	var t model.Text
	err := s.DB.QueryRow(`SELECT id, title, source, body, created_at FROM texts
		WHERE id = ? OR title = ? ORDER BY (id = ?) DESC, created_at LIMIT 1`, ref, ref, ref).
		Scan(&t.ID, &t.Title, &t.Source, &t.Body, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("text %q: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTexts returns all texts without their bodies, oldest first.
func (s *Store) ListTexts() ([]model.Text, error) {
	rows, err := s.DB.Query("SELECT id, title, source, created_at FROM texts ORDER BY created_at, title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var texts []model.Text
	for rows.Next() {
		var t model.Text
		if err := rows.Scan(&t.ID, &t.Title, &t.Source, &t.CreatedAt); err != nil {
			return nil, err
		}
		texts = append(texts, t)
	}
	return texts, rows.Err()
}
