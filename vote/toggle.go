// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"errors"
	"fmt"
)

// Result is what a vote action returns: fresh post-mutation counts for the
// song and the caller's resulting vote (nil after a toggle-off).
type Result struct {
	Likes    int
	Dislikes int
	UserVote *Kind
}

// Toggle applies one vote action for a (user, song) pair: it reads the
// current stored state, picks the transition, issues exactly one store
// mutation, and recounts the song from the authoritative record set. Any
// store failure aborts the whole action; stale counts are never returned
// as if they were current.
//
// A concurrent action by the same user on the same song can make the
// create step collide with the store's uniqueness constraint. That
// conflict is recovered once by re-reading and re-deciding; a second
// conflict escalates as a plain error.
func Toggle(store Store, userID, songID string, action Kind) (Result, error) {
	res, err := toggleOnce(store, userID, songID, action)
	if errors.Is(err, ErrConflict) {
		res, err = toggleOnce(store, userID, songID, action)
		if errors.Is(err, ErrConflict) {
			return Result{}, fmt.Errorf("vote conflict persisted after retry for song %s", songID)
		}
	}
	return res, err
}

func toggleOnce(store Store, userID, songID string, action Kind) (Result, error) {
	current := NoVote
	if held, ok, err := store.Get(userID, songID); err != nil {
		return Result{}, fmt.Errorf("reading current vote: %w", err)
	} else if ok {
		current = stateOf(held)
	}

	next, effect := Transition(current, action)

	var err error
	switch effect {
	case EffectCreate:
		err = store.Create(userID, songID, action)
	case EffectUpdate:
		err = store.Update(userID, songID, action)
	case EffectDelete:
		err = store.Delete(userID, songID)
	}
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("applying vote: %w", err)
	}

	tally, err := Counts(store, songID)
	if err != nil {
		return Result{}, fmt.Errorf("recounting votes: %w", err)
	}

	res := Result{Likes: tally.Likes, Dislikes: tally.Dislikes}
	if k, ok := next.Kind(); ok {
		res.UserVote = &k
	}
	return res, nil
}
