// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables. Flags win; the environment fills the gaps.

Required settings:

  - DATABASE_URL (-d): connection string (postgres URL or sqlite path)
  - JWT_SECRET (--jwt-secret): bearer token signing secret
  - ADMIN_USER / ADMIN_PASS (--admin-user / --admin-pass): admin login

Optional settings:

  - PORT (-p): server port (default: 4000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DISCORD_WEBHOOK_PETICIONES / _SUGERENCIAS / _REPORTES: per-channel
    webhook URLs, each falling back to DISCORD_WEBHOOK_URL
  - OPENAI_API_KEY, OPENAI_BASE_URL: assistant endpoint configuration
*/
package cliparse
