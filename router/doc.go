// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the BeefMusic API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Auth (public, per-IP rate limit):

	POST /api/register   - Create user account
	POST /api/login-user - User login
	POST /api/login      - Admin login

Song catalog:

	GET  /api/canciones - Published songs with vote counts (public)
	POST /api/canciones - Create song (admin)

Voting and taste profile (user token):

	POST /api/canciones/{id}/vote - Toggle a like/dislike
	GET  /api/sound-profile       - Derived taste profile

Song requests:

	POST  /api/peticiones             - Submit request (public)
	GET   /api/peticiones             - List requests (admin)
	PATCH /api/peticiones/{id}/estado - Update status (admin)

Feedback (public):

	POST /api/sugerencias - Submit suggestion
	POST /api/reportes    - Submit problem report

Assistant (user token):

	POST /api/assistant - Ask the composing assistant

# Handler Initialization

The router creates handler instances with dependency injection: every
handler receives the database connection and configuration, and the
requests handler additionally gets the Discord notifier built from the
configured webhook URLs.
*/
package router
