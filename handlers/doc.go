// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

Handlers are grouped by concern, each a struct built from the database
connection and the parsed config:

  - AuthHandler: user registration/login, admin login
  - SongsHandler: public catalog listing (with vote counts and the
    viewer's own vote) and admin song creation
  - VotingHandler: the like/dislike toggle on a song
  - ProfileHandler: the derived sound profile
  - RequestsHandler: song requests, suggestions, reports (with Discord
    notification), admin request management
  - AssistantHandler: the LLM composing assistant

The vote state machine and the profile derivation live in the vote and
profile packages; handlers validate input, resolve identity, call the
engines, and shape JSON responses. User-facing messages are Spanish, the
product's voice.
*/
package handlers
