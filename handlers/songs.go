// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/models"
	"github.com/beefmusic/api/vote"
)

type SongsHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	votes vote.Store
}

func NewSongsHandler(db *sql.DB, cfg cliparse.Config) *SongsHandler {
	return &SongsHandler{db: db, cfg: cfg, votes: vote.NewSQLStore(db)}
}

// List handles GET /api/canciones
// Public; an authenticated caller additionally sees their own vote per song.
func (h *SongsHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, title, genre, duration, description, author, status, audio_url, created_at
		FROM song
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query songs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las canciones")
		return
	}
	defer rows.Close()

	songs := []models.Song{}
	for rows.Next() {
		var s models.Song
		var duration, description, audioURL sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.Genre, &duration, &description,
			&s.Author, &s.Status, &audioURL, &s.CreatedAt); err != nil {
			slog.Error("failed to scan song", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las canciones")
			return
		}
		s.Duration = duration.String
		s.Description = description.String
		s.AudioURL = audioURL.String
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate songs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las canciones")
		return
	}

	viewerID := ""
	if ident := middleware.OptionalIdentity(r, h.cfg.JWTSecret); ident != nil {
		viewerID = ident.UserID
	}

	songIDs := make([]string, len(songs))
	for i, s := range songs {
		songIDs[i] = s.ID
	}

	// One aggregation pass over all vote records, however long the catalog is
	tallies, err := vote.CountsForAll(h.votes, songIDs, viewerID)
	if err != nil {
		slog.Error("failed to aggregate votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las canciones")
		return
	}

	response := make([]models.SongWithVotes, len(songs))
	for i, s := range songs {
		tally := tallies[s.ID]
		entry := models.SongWithVotes{
			Song:     s,
			Likes:    tally.Likes,
			Dislikes: tally.Dislikes,
		}
		if tally.UserVote != nil {
			k := string(*tally.UserVote)
			entry.UserVote = &k
		}
		response[i] = entry
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// Create handles POST /api/canciones (admin)
func (h *SongsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSongRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if req.Title == "" || req.Genre == "" || req.Author == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Faltan campos obligatorios")
		return
	}

	status := req.Status
	if status == "" {
		status = models.SongStatusPublished
	}

	song := models.Song{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Description: req.Description,
		Author:      req.Author,
		Status:      status,
		AudioURL:    req.AudioURL,
		CreatedAt:   time.Now(),
	}

	_, err := h.db.Exec(`
		INSERT INTO song (id, title, genre, duration, description, author, status, audio_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, song.ID, song.Title, song.Genre, nullable(song.Duration), nullable(song.Description),
		song.Author, song.Status, nullable(song.AudioURL), song.CreatedAt)

	if err != nil {
		slog.Error("failed to insert song", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creando la canción")
		return
	}

	slog.Info("song created", "song_id", song.ID, "title", song.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSongResponse{
		Message: "Canción creada correctamente",
		Song:    song,
	})
}

// nullable maps "" to NULL so optional columns stay NULL instead of empty.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isUniqueViolation matches the duplicate-key errors of both supported drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
