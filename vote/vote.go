// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import "fmt"

// Kind is one of the two stances a user can hold on a song.
type Kind string

const (
	Like    Kind = "like"
	Dislike Kind = "dislike"
)

// ParseKind validates a raw vote kind from a request body.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case Like:
		return Like, nil
	case Dislike:
		return Dislike, nil
	default:
		return "", fmt.Errorf("unrecognized vote kind %q", raw)
	}
}

// State is the stored vote state for one (user, song) pair.
type State int

const (
	NoVote State = iota
	Liked
	Disliked
)

// Kind returns the vote kind a state corresponds to, if any.
func (s State) Kind() (Kind, bool) {
	switch s {
	case Liked:
		return Like, true
	case Disliked:
		return Dislike, true
	default:
		return "", false
	}
}

// stateOf maps a stored record kind back to a state.
func stateOf(k Kind) State {
	if k == Like {
		return Liked
	}
	return Disliked
}

// Effect is the single store mutation a transition demands.
type Effect int

const (
	EffectCreate Effect = iota
	EffectUpdate
	EffectDelete
)

// Transition applies one vote action to the current state of a (user, song)
// pair. Voting the same kind twice removes the vote; voting the other kind
// replaces it. The full table:
//
//	NoVote   + Like    -> Liked    (create like)
//	NoVote   + Dislike -> Disliked (create dislike)
//	Liked    + Like    -> NoVote   (delete)
//	Liked    + Dislike -> Disliked (update to dislike)
//	Disliked + Dislike -> NoVote   (delete)
//	Disliked + Like    -> Liked    (update to like)
func Transition(current State, action Kind) (State, Effect) {
	if current == NoVote {
		return stateOf(action), EffectCreate
	}

	if held, _ := current.Kind(); held == action {
		return NoVote, EffectDelete
	}
	return stateOf(action), EffectUpdate
}
