// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Song status constants. Values are the product's Spanish data values,
// shared with the frontend and the existing rows.
const (
	SongStatusPublished = "publicada"
)

// Song request status constants
const (
	RequestStatusPending      = "pendiente"
	RequestStatusInProduction = "en_produccion"
	RequestStatusDone         = "terminada"
)

// RequestStatuses lists the states a song request may be moved to.
var RequestStatuses = []string{
	RequestStatusPending,
	RequestStatusInProduction,
	RequestStatusDone,
}

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VoteRequest struct {
	Kind string `json:"kind"`
}

type CreateSongRequest struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author"`
	Status      string `json:"status,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

type CreateSongRequestRequest struct {
	Nick  string `json:"nick"`
	Style string `json:"style"`
	Idea  string `json:"idea"`
}

type CreateSuggestionRequest struct {
	Nick    string `json:"nick,omitempty"`
	Message string `json:"message"`
}

type CreateReportRequest struct {
	Nick    string `json:"nick,omitempty"`
	Message string `json:"message"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

type AssistantRequest struct {
	Prompt string `json:"prompt"`
}

// Response types

type TokenResponse struct {
	Message  string `json:"message,omitempty"`
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
}

type VoteResponse struct {
	Message  string  `json:"message"`
	Likes    int     `json:"likes"`
	Dislikes int     `json:"dislikes"`
	UserVote *string `json:"userVote"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type CreateSongResponse struct {
	Message string `json:"message"`
	Song    Song   `json:"song"`
}

type UpdateRequestStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AssistantResponse struct {
	OK   bool   `json:"ok"`
	Text string `json:"text"`
}

// Domain types

type Song struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Duration    string    `json:"duration,omitempty"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	AudioURL    string    `json:"audioUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SongWithVotes is a catalog entry augmented with its aggregated counts
// and the viewer's own vote (null for anonymous viewers).
type SongWithVotes struct {
	Song
	Likes    int     `json:"likes"`
	Dislikes int     `json:"dislikes"`
	UserVote *string `json:"userVote"`
}

type SongRequest struct {
	ID        string    `json:"id"`
	Nick      string    `json:"nick"`
	Style     string    `json:"style"`
	Idea      string    `json:"idea"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
