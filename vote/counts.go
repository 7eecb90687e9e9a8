// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import "fmt"

// Tally holds the like/dislike counts for one song.
type Tally struct {
	Likes    int
	Dislikes int
}

// SongTally augments a tally with the viewer's own vote, nil when the
// viewer is anonymous or has not voted that song.
type SongTally struct {
	Tally
	UserVote *Kind
}

// Counts recomputes the tally for one song from its stored records.
func Counts(store Store, songID string) (Tally, error) {
	records, err := store.ListBySong(songID)
	if err != nil {
		return Tally{}, fmt.Errorf("listing votes for song %s: %w", songID, err)
	}

	var t Tally
	for _, rec := range records {
		switch rec.Kind {
		case Like:
			t.Likes++
		case Dislike:
			t.Dislikes++
		}
	}
	return t, nil
}

// CountsForAll tallies a set of songs with a single pass over all vote
// records: records are grouped once, then each requested song reads its
// tally from the group, so the cost stays one scan regardless of catalog
// size. Songs with no votes get a zero tally. viewerID "" means anonymous.
//
// The grouping map lives only for this call; it is a per-request
// aggregation pass, not a cache.
func CountsForAll(store Store, songIDs []string, viewerID string) (map[string]SongTally, error) {
	records, err := store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("listing votes: %w", err)
	}

	grouped := make(map[string]SongTally, len(songIDs))
	for _, rec := range records {
		entry := grouped[rec.SongID]
		switch rec.Kind {
		case Like:
			entry.Likes++
		case Dislike:
			entry.Dislikes++
		}
		if viewerID != "" && rec.UserID == viewerID {
			k := rec.Kind
			entry.UserVote = &k
		}
		grouped[rec.SongID] = entry
	}

	result := make(map[string]SongTally, len(songIDs))
	for _, id := range songIDs {
		result[id] = grouped[id]
	}
	return result, nil
}
