// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SQLStore keeps vote records in the song_vote table. The table carries
// UNIQUE (song_id, user_id), which is what makes Create conditional: a
// concurrent duplicate insert is rejected by the database and surfaces
// here as ErrConflict.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(userID, songID string) (Kind, bool, error) {
	var kind string
	err := s.db.QueryRow(`
		SELECT kind FROM song_vote WHERE user_id = $1 AND song_id = $2
	`, userID, songID).Scan(&kind)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("selecting vote: %w", err)
	}
	return Kind(kind), true, nil
}

func (s *SQLStore) Create(userID, songID string, k Kind) error {
	_, err := s.db.Exec(`
		INSERT INTO song_vote (id, song_id, user_id, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), songID, userID, string(k), time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("inserting vote: %w", err)
	}
	return nil
}

func (s *SQLStore) Update(userID, songID string, k Kind) error {
	_, err := s.db.Exec(`
		UPDATE song_vote SET kind = $1 WHERE user_id = $2 AND song_id = $3
	`, string(k), userID, songID)
	if err != nil {
		return fmt.Errorf("updating vote: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(userID, songID string) error {
	_, err := s.db.Exec(`
		DELETE FROM song_vote WHERE user_id = $1 AND song_id = $2
	`, userID, songID)
	if err != nil {
		return fmt.Errorf("deleting vote: %w", err)
	}
	return nil
}

func (s *SQLStore) ListBySong(songID string) ([]Record, error) {
	return s.list(`
		SELECT song_id, user_id, kind FROM song_vote WHERE song_id = $1
	`, songID)
}

func (s *SQLStore) ListByUser(userID string) ([]Record, error) {
	return s.list(`
		SELECT song_id, user_id, kind FROM song_vote WHERE user_id = $1
	`, userID)
}

func (s *SQLStore) ListAll() ([]Record, error) {
	return s.list(`
		SELECT song_id, user_id, kind FROM song_vote
	`)
}

func (s *SQLStore) list(query string, args ...interface{}) ([]Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying votes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var kind string
		if err := rows.Scan(&rec.SongID, &rec.UserID, &kind); err != nil {
			return nil, fmt.Errorf("scanning vote: %w", err)
		}
		rec.Kind = Kind(kind)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating votes: %w", err)
	}
	return records, nil
}

// isUniqueViolation matches the duplicate-key errors of both supported
// drivers (sqlite and postgres).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
