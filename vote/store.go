// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import "errors"

// ErrConflict is returned by Store.Create when a record for the same
// (user, song) pair already exists. Toggle recovers from it internally by
// re-reading state and re-deciding; it is never surfaced to callers.
var ErrConflict = errors.New("vote already exists for user and song")

// Record is one user's current stance on one song. At most one record
// exists per (UserID, SongID) pair; absence means "no vote".
type Record struct {
	UserID string
	SongID string
	Kind   Kind
}

// Store is the durable home of vote records. Implementations must enforce
// uniqueness on (user, song): Create on an existing pair fails with
// ErrConflict rather than inserting a duplicate. That constraint, combined
// with Toggle's conditional writes, serializes concurrent actions by the
// same user on the same song.
type Store interface {
	// Get returns the stored kind for a pair, with ok=false when no vote exists.
	Get(userID, songID string) (Kind, bool, error)
	// Create inserts a new record; ErrConflict if the pair already has one.
	Create(userID, songID string, k Kind) error
	// Update switches the kind of an existing record in place.
	Update(userID, songID string, k Kind) error
	// Delete removes the record for a pair.
	Delete(userID, songID string) error
	// ListBySong returns every record for one song.
	ListBySong(songID string) ([]Record, error)
	// ListByUser returns every record cast by one user.
	ListByUser(userID string) ([]Record, error)
	// ListAll returns every record. Used by the batched aggregation pass.
	ListAll() ([]Record, error)
}
