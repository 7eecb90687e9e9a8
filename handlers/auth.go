// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/beefmusic/api/auth"
	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/middleware"
	"github.com/beefmusic/api/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Faltan campos")
		return
	}
	if len(req.Password) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creando el usuario")
		return
	}

	// The UNIQUE constraint on username catches duplicates
	userID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO app_user (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Username, hash, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Ese usuario ya existe")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creando el usuario")
		return
	}

	token, err := auth.NewUserToken(h.cfg.JWTSecret, userID, req.Username)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creando el usuario")
		return
	}

	slog.Info("user registered", "user_id", userID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.TokenResponse{
		Message:  "Usuario registrado correctamente",
		Token:    token,
		Username: req.Username,
	})
}

// LoginUser handles POST /api/login-user
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Faltan campos")
		return
	}

	var userID, hash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM app_user WHERE username = $1
	`, req.Username).Scan(&userID, &hash)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Usuario o contraseña incorrectos")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error buscando usuario")
		return
	}

	if !auth.CheckPassword(hash, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Usuario o contraseña incorrectos")
		return
	}

	token, err := auth.NewUserToken(h.cfg.JWTSecret, userID, req.Username)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error en el servidor")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		Message:  "Login correcto",
		Token:    token,
		Username: req.Username,
	})
}

// LoginAdmin handles POST /api/login
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON no válido")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPass)) == 1
	if !userOK || !passOK {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Credenciales incorrectas")
		return
	}

	token, err := auth.NewAdminToken(h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to sign admin token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error en el servidor")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: token})
}
