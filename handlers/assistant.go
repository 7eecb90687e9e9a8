// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/beefmusic/api/assistant"
	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/models"
)

type AssistantHandler struct {
	cfg    cliparse.Config
	client *assistant.Client // nil when no API key is configured
}

func NewAssistantHandler(cfg cliparse.Config) *AssistantHandler {
	h := &AssistantHandler{cfg: cfg}
	if cfg.OpenAIKey != "" {
		h.client = assistant.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIKey)
	}
	return h
}

// Ask handles POST /api/assistant (user)
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	if h.client == nil {
		slog.Error("assistant requested but no API key configured")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "La IA no está configurada en el servidor (falta API key).")
		return
	}

	var req models.AssistantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Falta el campo 'prompt'")
		return
	}

	text, err := h.client.Reply(r.Context(), ident.Username, req.Prompt)
	if err != nil {
		slog.Error("assistant call failed", "error", err, "user_id", ident.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error llamando a la IA")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssistantResponse{OK: true, Text: text})
}
