// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/profile"
	"github.com/beefmusic/api/vote"
)

type ProfileHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	votes vote.Store
	songs profile.GenreSource
}

func NewProfileHandler(db *sql.DB, cfg cliparse.Config) *ProfileHandler {
	return &ProfileHandler{
		db:    db,
		cfg:   cfg,
		votes: vote.NewSQLStore(db),
		songs: songGenres{db: db},
	}
}

// SoundProfile handles GET /api/sound-profile
// Always returns a well-formed profile, including for users with no votes.
func (h *ProfileHandler) SoundProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	p, err := profile.For(h.votes, h.songs, ident.UserID)
	if err != nil {
		slog.Error("failed to build sound profile", "error", err, "user_id", ident.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error obteniendo el perfil sonoro")
		return
	}
	p.Username = ident.Username

	middleware.JSONResponse(w, http.StatusOK, p)
}

// songGenres resolves raw genre labels for the profile engine.
type songGenres struct {
	db *sql.DB
}

func (s songGenres) GenresByID(songIDs []string) (map[string]string, error) {
	if len(songIDs) == 0 {
		return map[string]string{}, nil
	}

	placeholders := make([]string, len(songIDs))
	args := make([]interface{}, len(songIDs))
	for i, id := range songIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.Query(`
		SELECT id, genre FROM song WHERE id IN (`+strings.Join(placeholders, ", ")+`)
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying song genres: %w", err)
	}
	defer rows.Close()

	genres := make(map[string]string, len(songIDs))
	for rows.Next() {
		var id, g string
		if err := rows.Scan(&id, &g); err != nil {
			return nil, fmt.Errorf("scanning song genre: %w", err)
		}
		genres[id] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating song genres: %w", err)
	}
	return genres, nil
}
