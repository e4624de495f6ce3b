package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// WriteExtraction saves a text's extraction results, replacing earlier ones.
func (s *Store) WriteExtraction(ext *model.TextExtraction) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tbl := range []string{"extracted_locations", "extraction_meta"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE text_id = ?", tbl), ext.TextID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("INSERT INTO extraction_meta (text_id, backend, extracted_at) VALUES (?, ?, ?)",
		ext.TextID, ext.Backend, ext.ExtractedAt); err != nil {
		return err
	}

	for _, loc := range ext.Locations {
		quotes, _ := json.Marshal(loc.ContextQuotes)
		if _, err := tx.Exec("INSERT INTO extracted_locations (text_id, name, type, context_quotes) VALUES (?, ?, ?, ?)",
			ext.TextID, loc.Name, string(loc.Type), string(quotes)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReadExtraction loads a text's extraction results.
func (s *Store) ReadExtraction(textID string) (*model.TextExtraction, error) {
	ext := &model.TextExtraction{TextID: textID}

	err := s.DB.QueryRow("SELECT backend, extracted_at FROM extraction_meta WHERE text_id = ?", textID).
		Scan(&ext.Backend, &ext.ExtractedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("extraction for %s: %w", textID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.DB.QueryRow("SELECT title FROM texts WHERE id = ?", textID).Scan(&ext.TextTitle)

	rows, err := s.DB.Query("SELECT name, type, context_quotes FROM extracted_locations WHERE text_id = ? ORDER BY id", textID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var loc model.ExtractedLocation
		var typ string
		var quotes sql.NullString
		if err := rows.Scan(&loc.Name, &typ, &quotes); err != nil {
			return nil, err
		}
		loc.Type = model.LocationType(typ)
		if quotes.Valid {
			json.Unmarshal([]byte(quotes.String), &loc.ContextQuotes)
		}
		ext.Locations = append(ext.Locations, loc)
	}
	return ext, rows.Err()
}

// ExtractionExists checks if a text has been extracted.
func (s *Store) ExtractionExists(textID string) bool {
	return s.count("SELECT COUNT(*) FROM extraction_meta WHERE text_id = ?", textID) > 0
}

// ReadAllExtractions loads every extraction in text creation order.
func (s *Store) ReadAllExtractions() ([]*model.TextExtraction, error) {
	rows, err := s.DB.Query(`SELECT em.text_id FROM extraction_meta em
		LEFT JOIN texts t ON t.id = em.text_id ORDER BY t.created_at, em.text_id`)
	if err != nil {
		return nil, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	exts := make([]*model.TextExtraction, 0, len(ids))
	for _, id := range ids {
		ext, err := s.ReadExtraction(id)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// WriteAggregated replaces the aggregated location list.
func (s *Store) WriteAggregated(locs []model.AggregatedLocation) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM locations"); err != nil {
		return fmt.Errorf("clearing locations: %w", err)
	}

	for _, loc := range locs {
		ids, _ := json.Marshal(loc.TextIDs)
		if _, err := tx.Exec("INSERT INTO locations (id, name, type, first_text_id, mention_count, text_ids) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
			loc.ID, loc.Name, string(loc.Type), loc.FirstTextID, loc.MentionCount, string(ids)); err != nil {
			return fmt.Errorf("inserting location %s: %w", loc.ID, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('aggregated_at', ?)", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// ReadAggregated loads the aggregated locations, most mentioned first.
func (s *Store) ReadAggregated() ([]model.AggregatedLocation, error) {
	rows, err := s.DB.Query("SELECT id, name, type, first_text_id, mention_count, text_ids FROM locations ORDER BY mention_count DESC, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locs []model.AggregatedLocation
	for rows.Next() {
		var loc model.AggregatedLocation
		var typ string
		var ids sql.NullString
		if err := rows.Scan(&loc.ID, &loc.Name, &typ, &loc.FirstTextID, &loc.MentionCount, &ids); err != nil {
			return nil, err
		}
		loc.Type = model.LocationType(typ)
		if ids.Valid {
			json.Unmarshal([]byte(ids.String), &loc.TextIDs)
		}
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}

// WriteCoordinate inserts or updates a single location's coordinates.
func (s *Store) WriteCoordinate(c model.Coordinate) error {
	if c.UpdatedAt == "" {
		c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.DB.Exec("INSERT OR REPLACE INTO coordinates (location_id, name, lat, lon, manual, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		c.LocationID, c.Name, c.Lat, c.Lon, c.Manual, c.UpdatedAt)
	return err
}

// ReadCoordinates loads all coordinates.
func (s *Store) ReadCoordinates() ([]model.Coordinate, error) {
	rows, err := s.DB.Query("SELECT location_id, name, lat, lon, manual, updated_at FROM coordinates ORDER BY location_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coords []model.Coordinate
	for rows.Next() {
		var c model.Coordinate
		if err := rows.Scan(&c.LocationID, &c.Name, &c.Lat, &c.Lon, &c.Manual, &c.UpdatedAt); err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, rows.Err()
}
