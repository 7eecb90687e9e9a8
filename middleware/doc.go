// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# JSON helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize response
encoding and request decoding.

# Request wrappers

  - WithLogging: slog request/completion logging
  - CORS: cross-origin headers and preflight handling
  - RequireUser / RequireAdmin: bearer-token gates that place an Identity
    into the request context (read back with IdentityFrom)
  - OptionalIdentity: anonymous-tolerant identity resolution for public
    endpoints
  - RateLimiter.Wrap: per-IP throttling for the auth endpoints

GetClientIP resolves the caller's IP through X-Forwarded-For / X-Real-IP.
*/
package middleware
