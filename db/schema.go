// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/voxobserver/server/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := schemaSQLite
	if databaseType == cliparse.DatabasePostgres {
		schema = schemaPostgres
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Dates, times and timestamps are stored as ISO-8601 TEXT in both variants
// so scans behave identically under lib/pq and modernc.org/sqlite, and so
// malformed session dates can be tolerated at read time instead of breaking
// ingestion.

const schemaSQLite = `
-- Politicians
CREATE TABLE IF NOT EXISTS politicians (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    handle TEXT NOT NULL UNIQUE,
    twitter TEXT,
    wikipedia TEXT
);

CREATE INDEX IF NOT EXISTS idx_politicians_handle ON politicians(handle);

-- Party affiliations (time-boxed; valid_to NULL = current)
CREATE TABLE IF NOT EXISTS party_affiliations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    politician_id INTEGER NOT NULL REFERENCES politicians(id),
    party TEXT NOT NULL,
    valid_from TEXT NOT NULL,
    valid_to TEXT
);

CREATE INDEX IF NOT EXISTS idx_party_affiliations_politician_id ON party_affiliations(politician_id);

-- Voting sessions (date may be absent or malformed in ingested data)
CREATE TABLE IF NOT EXISTS voting_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    external_id TEXT NOT NULL UNIQUE,
    date TEXT,
    time TEXT,
    title TEXT NOT NULL,
    meeting_details TEXT
);

CREATE INDEX IF NOT EXISTS idx_voting_sessions_date ON voting_sessions(date);

-- Votes (one per politician per session)
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    politician_id INTEGER NOT NULL REFERENCES politicians(id),
    voting_session_id INTEGER NOT NULL REFERENCES voting_sessions(id),
    vote TEXT NOT NULL,
    UNIQUE (politician_id, voting_session_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_politician_id ON votes(politician_id);
CREATE INDEX IF NOT EXISTS idx_votes_voting_session_id ON votes(voting_session_id);

-- Search stats (lazily created counters)
CREATE TABLE IF NOT EXISTS search_stats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    politician_id INTEGER NOT NULL UNIQUE REFERENCES politicians(id),
    search_count INTEGER NOT NULL DEFAULT 0,
    last_searched TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_search_stats_search_count ON search_stats(search_count DESC);
`

const schemaPostgres = `
-- Politicians
CREATE TABLE IF NOT EXISTS politicians (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    handle TEXT NOT NULL UNIQUE,
    twitter TEXT,
    wikipedia TEXT
);

CREATE INDEX IF NOT EXISTS idx_politicians_handle ON politicians(handle);

-- Party affiliations (time-boxed; valid_to NULL = current)
CREATE TABLE IF NOT EXISTS party_affiliations (
    id SERIAL PRIMARY KEY,
    politician_id INTEGER NOT NULL REFERENCES politicians(id),
    party TEXT NOT NULL,
    valid_from TEXT NOT NULL,
    valid_to TEXT
);

CREATE INDEX IF NOT EXISTS idx_party_affiliations_politician_id ON party_affiliations(politician_id);

-- Voting sessions (date may be absent or malformed in ingested data)
CREATE TABLE IF NOT EXISTS voting_sessions (
    id SERIAL PRIMARY KEY,
    external_id TEXT NOT NULL UNIQUE,
    date TEXT,
    time TEXT,
    title TEXT NOT NULL,
    meeting_details TEXT
);

CREATE INDEX IF NOT EXISTS idx_voting_sessions_date ON voting_sessions(date);

-- Votes (one per politician per session)
CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    politician_id INTEGER NOT NULL REFERENCES politicians(id),
    voting_session_id INTEGER NOT NULL REFERENCES voting_sessions(id),
    vote TEXT NOT NULL,
    UNIQUE (politician_id, voting_session_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_politician_id ON votes(politician_id);
CREATE INDEX IF NOT EXISTS idx_votes_voting_session_id ON votes(voting_session_id);

-- Search stats (lazily created counters)
CREATE TABLE IF NOT EXISTS search_stats (
    id SERIAL PRIMARY KEY,
    politician_id INTEGER NOT NULL UNIQUE REFERENCES politicians(id),
    search_count INTEGER NOT NULL DEFAULT 0,
    last_searched TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_search_stats_search_count ON search_stats(search_count DESC);
`
