// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest / LoginRequest: username, password
  - VoteRequest: kind ("like" or "dislike")
  - CreateSongRequest: catalog entry fields (admin)
  - CreateSongRequestRequest: nick, style, idea
  - CreateSuggestionRequest / CreateReportRequest: nick, message
  - UpdateRequestStatusRequest: status
  - AssistantRequest: prompt

# Response Types

  - TokenResponse: token, username
  - VoteResponse: message, likes, dislikes, userVote
  - CreatedResponse: message, id
  - CreateSongResponse: message, song
  - AssistantResponse: ok, text
  - ErrorResponse: error, message

The taste profile response is profile.Profile, defined next to its engine.

# Domain Types

  - Song: catalog entry
  - SongWithVotes: Song plus likes/dislikes/userVote for listings
  - SongRequest: listener song request and its production status

# Constants

Status values keep the product's Spanish data values:

	SongStatusPublished       = "publicada"
	RequestStatusPending      = "pendiente"
	RequestStatusInProduction = "en_produccion"
	RequestStatusDone         = "terminada"
*/
package models
