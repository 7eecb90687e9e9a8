// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening

Open picks the driver from the configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"sqlite" uses the pure-Go modernc driver (also the test database);
"postgres" uses lib/pq. Queries elsewhere use $N placeholders, which both
drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: registered users (bcrypt password hashes)
  - song: the catalog
  - song_vote: one row per (song, user) pair, UNIQUE-constrained
  - song_request: listener song requests and their production status
  - suggestion, report: public feedback

# Relationships

	song     1──* song_vote
	app_user 1──* song_vote

Foreign keys use ON DELETE CASCADE.
*/
package db
