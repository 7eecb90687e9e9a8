// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType selects the driver:
// "postgres" (lib/pq) or "sqlite" (modernc, pure Go). For sqlite a
// foreign_keys pragma is appended so ON DELETE CASCADE actually fires.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		return conn, nil
	case "sqlite":
		if !strings.Contains(url, "_pragma") {
			sep := "?"
			if strings.Contains(url, "?") {
				sep = "&"
			}
			url += sep + "_pragma=foreign_keys(1)"
		}
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to the
// dialect both drivers share.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Registered users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Song catalog
CREATE TABLE IF NOT EXISTS song (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    genre TEXT NOT NULL,
    duration TEXT,
    description TEXT,
    author TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'publicada',
    audio_url TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_song_created_at ON song(created_at);

-- Votes: at most one record per (song, user); absence means "no vote".
-- The UNIQUE pair is what serializes concurrent toggles for one pair.
CREATE TABLE IF NOT EXISTS song_vote (
    id TEXT PRIMARY KEY,
    song_id TEXT NOT NULL REFERENCES song(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    kind TEXT NOT NULL CHECK (kind IN ('like', 'dislike')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (song_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_song_vote_song_id ON song_vote(song_id);
CREATE INDEX IF NOT EXISTS idx_song_vote_user_id ON song_vote(user_id);

-- Song requests from listeners
CREATE TABLE IF NOT EXISTS song_request (
    id TEXT PRIMARY KEY,
    nick TEXT NOT NULL,
    style TEXT NOT NULL,
    idea TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pendiente' CHECK (status IN ('pendiente', 'en_produccion', 'terminada')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_song_request_status ON song_request(status);

-- Suggestions
CREATE TABLE IF NOT EXISTS suggestion (
    id TEXT PRIMARY KEY,
    nick TEXT,
    message TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Problem reports
CREATE TABLE IF NOT EXISTS report (
    id TEXT PRIMARY KEY,
    nick TEXT,
    message TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
