// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the BeefMusic API server.

BeefMusic is an artist's song platform: listeners register, browse the
catalog, toggle like/dislike votes, request new songs, and get a derived
"sound profile" of their taste built from their voting history.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=beefmusic.db JWT_SECRET=... ADMIN_USER=... ADMIN_PASS=... go run main.go

Or with flags:

	go run main.go -p 4000 -d beefmusic.db -t sqlite

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database location (sqlite file or postgres URL)
  - JWT_SECRET (--jwt-secret): token signing secret
  - ADMIN_USER / ADMIN_PASS (--admin-user / --admin-pass): admin credentials

Optional settings:

  - PORT (-p): server port (default: 4000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DISCORD_WEBHOOK_PETICIONES / _SUGERENCIAS / _REPORTES: notification
    webhooks, each falling back to DISCORD_WEBHOOK_URL
  - OPENAI_API_KEY / OPENAI_BASE_URL: enables the composing assistant

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, songs, voting, profile, requests, assistant)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, auth guards, rate limiting
  - models: Request/response types
  - vote: The like/dislike toggle state machine and count aggregation
  - profile: Taste-profile derivation from vote history
  - genre: Genre label normalization
  - auth: Tokens and password hashing
  - notify: Discord webhook notifications
  - assistant: OpenAI-backed composing assistant
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
