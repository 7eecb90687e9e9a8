// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/models"
	"github.com/beefmusic/api/vote"
)

type VotingHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	votes vote.Store
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, votes: vote.NewSQLStore(db)}
}

// Vote handles POST /api/canciones/:id/vote
// Toggle semantics: repeating the held kind removes the vote. The response
// carries post-mutation counts, recomputed from the stored records.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	songID := r.PathValue("id")
	if songID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	// Validation and existence checks happen before any mutation
	kind, err := vote.ParseKind(req.Kind)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Tipo de voto no válido. Usa 'like' o 'dislike'.")
		return
	}

	var exists bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM song WHERE id = $1)
	`, songID).Scan(&exists)
	if err != nil {
		slog.Error("failed to check song", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error buscando la canción")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Canción no encontrada")
		return
	}

	result, err := vote.Toggle(h.votes, ident.UserID, songID, kind)
	if err != nil {
		slog.Error("failed to apply vote", "error", err, "song_id", songID, "user_id", ident.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error guardando el voto")
		return
	}

	slog.Info("vote applied",
		"song_id", songID,
		"user_id", ident.UserID,
		"action", string(kind),
		"likes", result.Likes,
		"dislikes", result.Dislikes,
	)

	resp := models.VoteResponse{
		Message:  "Voto registrado",
		Likes:    result.Likes,
		Dislikes: result.Dislikes,
	}
	if result.UserVote != nil {
		k := string(*result.UserVote)
		resp.UserVote = &k
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
