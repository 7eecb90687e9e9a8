// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package genre canonicalizes free-text genre labels.

Song genres are entered by hand, so "Dembow", "dembow" and "  DEMBOW " must
all count as the same genre when aggregating a user's taste profile.
Normalize folds case, whitespace and diacritics into a stable key and picks
a display label from a fixed dictionary:

	genre.Normalize("reggaetón") // {Key: "reggaeton", Label: "Reggaetón"}
	genre.Normalize("Boom Bap")  // {Key: "boom bap", Label: "Boom Bap"}
	genre.Normalize("phonk")     // {Key: "phonk", Label: "Phonk"}
	genre.Normalize("")          // {Key: "unknown", Label: "Unknown"}

Normalize is pure and has no failure modes beyond the empty-input fallback.
*/
package genre
