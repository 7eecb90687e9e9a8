// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package profile derives a user's sound profile from their vote history.

The profile is a read-only aggregate over the user's vote records and the
genres of the songs they voted on (folded through package genre):

  - per-genre like/dislike counts with a weighted percent — likes-only
    weighting as soon as the user has any likes, participation volume
    before that
  - the dominant genre (top bucket after a stable sort by percent; ties
    keep the order buckets were first encountered while scanning votes)
  - toxicity, the share of dislikes over all votes
  - a Spanish mood label and tags driven by toxicity bands (70/40) and
    the dominant genre
  - badges unlocked at fixed thresholds, recomputed on every call

All rounding is round-half-away-from-zero (math.Round), so percentages sum
close to, but not necessarily exactly, 100.

A user with no votes gets a well-formed zero profile; that case is a
normal result. Store failures abort the query instead of degrading to it.
*/
package profile
