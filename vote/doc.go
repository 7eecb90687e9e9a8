// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package vote implements the per-user/per-song vote state machine and the
count aggregation built on top of it.

# State machine

Each (user, song) pair is in one of three states: NoVote, Liked, Disliked.
A vote action is one of two kinds (like, dislike) and the machine is a
toggle, not an upsert: repeating the held kind removes the vote. Transition
is the pure six-row table; Toggle drives it against a Store with a
read-decide-write sequence and returns post-mutation counts.

# Store

Store is the durable accessor for vote records. The SQL implementation
relies on a UNIQUE (song_id, user_id) constraint so that two concurrent
creates for the same pair cannot both succeed; the loser gets ErrConflict
and Toggle retries once with fresh state.

# Aggregation

Counts recomputes one song's tally from its records on every call — the
record set is authoritative, there are no incremental counters to drift.
CountsForAll serves the catalog listing: one pass over all records, grouped
once, with the optional viewer's own vote attached per song.

Reads are not linearized against other users' concurrent writes; a listing
may be a few milliseconds stale, which is acceptable for aggregates.
*/
package vote
