// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/beefmusic/api/genre"
	"github.com/beefmusic/api/vote"
)

// GenreStat is one genre bucket of a user's profile.
type GenreStat struct {
	Name     string `json:"name"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
	Percent  int    `json:"percent"`
}

// Badge is an achievement unlocked by a fixed vote-count threshold.
type Badge struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Profile is the derived sound profile for one user. It is computed fresh
// on every query and never persisted.
type Profile struct {
	Username      string      `json:"username"`
	Toxicity      int         `json:"toxicity"`
	TotalVotes    int         `json:"totalVotes"`
	TotalLikes    int         `json:"totalLikes"`
	TotalDislikes int         `json:"totalDislikes"`
	Genres        []GenreStat `json:"genres"`
	DominantGenre *string     `json:"dominantGenre"`
	MoodLabel     string      `json:"moodLabel"`
	MoodTags      []string    `json:"moodTags"`
	Badges        []Badge     `json:"badges"`
}

// GenreSource resolves the raw genre label of each referenced song.
type GenreSource interface {
	GenresByID(songIDs []string) (map[string]string, error)
}

// Genres whose fans get the aggressive mood label at high toxicity.
var aggressiveGenres = map[string]bool{
	"Trap":   true,
	"Drill":  true,
	"Dembow": true,
	"Rap":    true,
}

// For derives the sound profile of one user from their vote records and
// the genres of the songs they voted on. A user with no votes gets the
// defined zero profile; that is a normal result, never an error fallback —
// store or genre-resolution failures abort the whole query instead.
func For(store vote.Store, songs GenreSource, userID string) (Profile, error) {
	votes, err := store.ListByUser(userID)
	if err != nil {
		return Profile{}, fmt.Errorf("listing user votes: %w", err)
	}

	if len(votes) == 0 {
		return Profile{
			Genres:    []GenreStat{},
			MoodLabel: "Aún sin datos suficientes",
			MoodTags:  []string{"dale like o dislike a alguna canción"},
			Badges:    []Badge{},
		}, nil
	}

	seen := make(map[string]bool, len(votes))
	songIDs := make([]string, 0, len(votes))
	for _, v := range votes {
		if !seen[v.SongID] {
			seen[v.SongID] = true
			songIDs = append(songIDs, v.SongID)
		}
	}

	genreBySong, err := songs.GenresByID(songIDs)
	if err != nil {
		return Profile{}, fmt.Errorf("resolving song genres: %w", err)
	}

	return build(votes, genreBySong), nil
}

// build runs the pure derivation over an in-memory snapshot of the votes.
func build(votes []vote.Record, genreBySong map[string]string) Profile {
	type bucket struct {
		label    string
		likes    int
		dislikes int
	}

	// Buckets are kept in first-encountered order while scanning the
	// votes; that order is the tie-break for equal percentages.
	buckets := make(map[string]*bucket)
	var order []string

	var totalVotes, totalLikes, totalDislikes int

	for _, v := range votes {
		canonical := genre.Normalize(genreBySong[v.SongID])

		b, ok := buckets[canonical.Key]
		if !ok {
			b = &bucket{label: canonical.Label}
			buckets[canonical.Key] = b
			order = append(order, canonical.Key)
		}

		switch v.Kind {
		case vote.Like:
			b.likes++
			totalLikes++
		case vote.Dislike:
			b.dislikes++
			totalDislikes++
		}
		totalVotes++
	}

	// Once the user has any likes, genre ranking reflects only positive
	// signal; before that, raw participation volume ranks genres.
	base := totalLikes
	if base == 0 {
		base = totalVotes
	}

	genres := make([]GenreStat, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		weight := b.likes
		if totalLikes == 0 {
			weight = b.likes + b.dislikes
		}
		genres = append(genres, GenreStat{
			Name:     b.label,
			Likes:    b.likes,
			Dislikes: b.dislikes,
			Percent:  roundPercent(weight, base),
		})
	}

	// Stable sort: buckets with equal percent keep their scan order.
	sort.SliceStable(genres, func(i, j int) bool {
		return genres[i].Percent > genres[j].Percent
	})

	var dominant *string
	if len(genres) > 0 {
		dominant = &genres[0].Name
	}

	toxicity := roundPercent(totalDislikes, totalVotes)

	return Profile{
		Toxicity:      toxicity,
		TotalVotes:    totalVotes,
		TotalLikes:    totalLikes,
		TotalDislikes: totalDislikes,
		Genres:        genres,
		DominantGenre: dominant,
		MoodLabel:     moodLabel(toxicity, dominant),
		MoodTags:      moodTags(toxicity, dominant, totalVotes),
		Badges:        badges(totalVotes, totalLikes, totalDislikes, dominant),
	}
}

// roundPercent rounds half away from zero, matching math.Round. The same
// rule applies to every percentage in the profile.
func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func moodLabel(toxicity int, dominant *string) string {
	if dominant == nil {
		return "Explorando sonidos"
	}

	if toxicity >= 70 {
		if aggressiveGenres[*dominant] {
			return "Modo demonio nocturno"
		}
		return "Crítico profesional de Spotify"
	}

	if toxicity >= 40 {
		return "Selectivo con el " + *dominant
	}
	return "Buen rollo con el " + *dominant
}

func moodTags(toxicity int, dominant *string, totalVotes int) []string {
	var tags []string

	if dominant != nil {
		tags = append(tags, "fan del "+strings.ToLower(*dominant))
	}

	switch {
	case toxicity >= 70:
		tags = append(tags, "hater fino", "no compro cualquier tema")
	case toxicity >= 40:
		tags = append(tags, "exigente", "o me flipa o nada")
	default:
		tags = append(tags, "flow chill", "mente abierta")
	}

	if totalVotes >= 50 {
		tags = append(tags, "usuario veterano")
	}
	if totalVotes < 10 {
		tags = append(tags, "recién llegado")
	}

	return tags
}

// badges is recomputed fresh on every query: a badge appears whenever its
// threshold holds, and the list is never stored.
func badges(totalVotes, totalLikes, totalDislikes int, dominant *string) []Badge {
	unlocked := []Badge{}

	if totalVotes >= 1 {
		unlocked = append(unlocked, Badge{Icon: "🔥", Label: "Primer beef votado"})
	}
	if totalLikes >= 10 {
		unlocked = append(unlocked, Badge{Icon: "🎧", Label: "10 canciones que te han volado la cabeza"})
	}
	if totalLikes >= 30 && dominant != nil {
		unlocked = append(unlocked, Badge{Icon: "🖤", Label: "Fan oficial del " + *dominant})
	}
	if totalDislikes >= 10 {
		unlocked = append(unlocked, Badge{Icon: "💣", Label: "Hater elegante (10 no me gusta)"})
	}

	return unlocked
}
