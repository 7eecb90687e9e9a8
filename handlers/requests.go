// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/models"
	"github.com/beefmusic/api/notify"
)

type RequestsHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	notifier notify.Notifier
}

func NewRequestsHandler(db *sql.DB, cfg cliparse.Config, notifier notify.Notifier) *RequestsHandler {
	return &RequestsHandler{db: db, cfg: cfg, notifier: notifier}
}

// CreateRequest handles POST /api/peticiones (public)
func (h *RequestsHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSongRequestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if req.Nick == "" || req.Style == "" || req.Idea == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Faltan campos obligatorios")
		return
	}

	id := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO song_request (id, nick, style, idea, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, req.Nick, req.Style, req.Idea, models.RequestStatusPending, time.Now())

	if err != nil {
		slog.Error("failed to insert song request", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error guardando la petición")
		return
	}

	// Best-effort: the request is stored either way
	if err := h.notifier.SongRequest(r.Context(), req.Nick, req.Style, req.Idea, id); err != nil {
		slog.Warn("failed to notify song request", "error", err, "request_id", id)
	}

	slog.Info("song request created", "request_id", id, "nick", req.Nick)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		Message: "Petición creada correctamente",
		ID:      id,
	})
}

// ListRequests handles GET /api/peticiones (admin)
func (h *RequestsHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, nick, style, idea, status, created_at
		FROM song_request
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query song requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las peticiones")
		return
	}
	defer rows.Close()

	requests := []models.SongRequest{}
	for rows.Next() {
		var sr models.SongRequest
		if err := rows.Scan(&sr.ID, &sr.Nick, &sr.Style, &sr.Idea, &sr.Status, &sr.CreatedAt); err != nil {
			slog.Error("failed to scan song request", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las peticiones")
			return
		}
		requests = append(requests, sr)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate song requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al obtener las peticiones")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, requests)
}

// UpdateRequestStatus handles PATCH /api/peticiones/:id/estado (admin)
func (h *RequestsHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateRequestStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if !slices.Contains(models.RequestStatuses, req.Status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Estado no válido")
		return
	}

	result, err := h.db.Exec(`
		UPDATE song_request SET status = $1 WHERE id = $2
	`, req.Status, id)
	if err != nil {
		slog.Error("failed to update request status", "error", err, "request_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al actualizar el estado de la petición")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error al actualizar el estado de la petición")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Petición no encontrada")
		return
	}

	slog.Info("song request status updated", "request_id", id, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateRequestStatusResponse{
		ID:     id,
		Status: req.Status,
	})
}

// CreateSuggestion handles POST /api/sugerencias (public)
func (h *RequestsHandler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if req.Message == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Falta el campo 'message' de la sugerencia")
		return
	}

	id := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO suggestion (id, nick, message, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, nullable(req.Nick), req.Message, time.Now())

	if err != nil {
		slog.Error("failed to insert suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error guardando la sugerencia")
		return
	}

	if err := h.notifier.Suggestion(r.Context(), req.Nick, req.Message, id); err != nil {
		slog.Warn("failed to notify suggestion", "error", err, "suggestion_id", id)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		Message: "Sugerencia enviada correctamente",
		ID:      id,
	})
}

// CreateReport handles POST /api/reportes (public)
func (h *RequestsHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if req.Message == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Falta el campo 'message' del reporte")
		return
	}

	id := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO report (id, nick, message, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, nullable(req.Nick), req.Message, time.Now())

	if err != nil {
		slog.Error("failed to insert report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error guardando el reporte")
		return
	}

	if err := h.notifier.Report(r.Context(), req.Nick, req.Message, id); err != nil {
		slog.Warn("failed to notify report", "error", err, "report_id", id)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		Message: "Reporte enviado correctamente",
		ID:      id,
	})
}
