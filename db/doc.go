// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Two schema variants exist (sqlite and postgres) differing only in the
auto-increment primary key syntax.

# Tables

The schema includes:

  - politicians: Identity records (unique name, unique handle)
  - party_affiliations: Time-boxed party memberships
  - voting_sessions: One row per legislative vote event
  - votes: One vote value per politician per session
  - search_stats: Per-politician search counters

# Relationships

	politicians 1──* party_affiliations
	politicians 1──* votes
	voting_sessions 1──* votes
	politicians 1──1 search_stats

# Indexes

Performance indexes on:

  - politicians.name, politicians.handle (unique)
  - party_affiliations.politician_id
  - voting_sessions.external_id (unique)
  - voting_sessions.date
  - votes.(politician_id, voting_session_id) (unique)
  - search_stats.politician_id (unique)
  - search_stats.search_count (descending, for ranking)

# Date handling

date/time/timestamp columns are ISO-8601 TEXT in both variants. Ingested
session dates are not guaranteed well-formed; readers parse and skip bad
values rather than relying on driver date decoding.
*/
package db
