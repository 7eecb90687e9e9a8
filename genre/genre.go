// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genre

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical is the normalized form of a free-text genre label.
// Key is the grouping identifier; Label is what gets displayed.
type Canonical struct {
	Key   string
	Label string
}

// Display labels for the genres the platform actually curates.
// Anything else gets a synthesized label from its key.
var labels = map[string]string{
	"dembow":           "Dembow",
	"drill":            "Drill",
	"trap":             "Trap",
	"rap":              "Rap",
	"reggaeton":        "Reggaetón",
	"pop":              "Pop",
	"boom bap":         "Boom Bap",
	"reggaeton_dembow": "Reggaetón / Dembow",
}

// Normalize collapses spelling variants of a genre label into one canonical
// key: surrounding whitespace and case are dropped, and accented letters are
// decomposed so "reggaetón" and "reggaeton" share a key. Empty input maps to
// the "unknown" genre.
func Normalize(raw string) Canonical {
	base := strings.ToLower(strings.TrimSpace(raw))
	if base == "" {
		return Canonical{Key: "unknown", Label: "Unknown"}
	}

	base = stripMarks(base)

	if label, ok := labels[base]; ok {
		return Canonical{Key: base, Label: label}
	}
	return Canonical{Key: base, Label: capitalize(base)}
}

// stripMarks decomposes to NFD and drops the combining marks.
// Transformers carry internal state, so the chain is built per call.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Transform only fails on malformed input; keep the lowercased
		// original rather than losing the vote's genre entirely.
		return s
	}
	return folded
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
