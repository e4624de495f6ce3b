package store

import (
	"fmt"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// WriteSegments replaces the stored segmentation of a text. Speaker order
// and passage order are kept.
func (s *Store) WriteSegments(textID string, m *model.SegmentMap) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM passages WHERE text_id = ?", textID); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO passages (text_id, speaker, speaker_order, seq, line, body) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, sp := range m.Speakers() {
		for j, p := range m.Passages(sp) {
			if _, err := stmt.Exec(textID, string(sp), i, j, p.Line, p.Text); err != nil {
				return fmt.Errorf("inserting passage %d for %s: %w", j, sp, err)
			}
		}
	}
	return tx.Commit()
}

// ReadSegments loads a text's segmentation. A text that was never
// segmented yields an empty map.
func (s *Store) ReadSegments(textID string) (*model.SegmentMap, error) {
	rows, err := s.DB.Query("SELECT speaker, line, body FROM passages WHERE text_id = ? ORDER BY speaker_order, seq", textID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := model.NewSegmentMap()
	for rows.Next() {
		var sp string
		var p model.Passage
		if err := rows.Scan(&sp, &p.Line, &p.Text); err != nil {
			return nil, err
		}
		m.Append(model.SpeakerName(sp), p)
	}
	return m, rows.Err()
}

// WriteSentiment replaces the stored sentiment record of a text.
func (s *Store) WriteSentiment(textID string, rec model.SentimentRecord) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sentiment WHERE text_id = ?", textID); err != nil {
		return err
	}
	for i, r := range rec {
		if _, err := tx.Exec("INSERT INTO sentiment (text_id, speaker, speaker_order, neg, neu, pos, compound) VALUES (?, ?, ?, ?, ?, ?, ?)",
			textID, string(r.Speaker), i, r.Scores.Negative, r.Scores.Neutral, r.Scores.Positive, r.Scores.Compound); err != nil {
			return fmt.Errorf("inserting sentiment for %s: %w", r.Speaker, err)
		}
	}
	return tx.Commit()
}

// ReadSentiment loads a text's sentiment record in speaker order.
func (s *Store) ReadSentiment(textID string) (model.SentimentRecord, error) {
	rows, err := s.DB.Query("SELECT speaker, neg, neu, pos, compound FROM sentiment WHERE text_id = ? ORDER BY speaker_order", textID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rec model.SentimentRecord
	for rows.Next() {
		var sp string
		var sc model.SentimentScores
		if err := rows.Scan(&sp, &sc.Negative, &sc.Neutral, &sc.Positive, &sc.Compound); err != nil {
			return nil, err
		}
		rec = append(rec, model.SpeakerSentiment{Speaker: model.SpeakerName(sp), Scores: sc})
	}
	return rec, rows.Err()
}
