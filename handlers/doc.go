// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Vox Observer API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AttendanceHandler: Monthly attendance percentages
  - VotingHandler: Per-category vote summaries with a majority label
  - SearchHandler: Ranked politician search backed by a TTL cache
  - TrackHandler: Search-count tracking
  - PoliticianHandler: Profiles, party history and the raw vote log
  - ExternalHandler: Encyclopedia summaries, web search and completions

Handlers are created via constructor functions that accept *sql.DB and Config:

	attendanceHandler := handlers.NewAttendanceHandler(db, cfg)

# Aggregation

The aggregation logic is exported separately from the HTTP layer so it can
be tested without a recorder:

	attendance, err := handlers.ComputeMonthlyAttendance(db, handle)
	summary, err := handlers.ComputeVotingSummary(db, handle)

Attendance buckets dated sessions per calendar month and counts any vote
that is not "notloggedin" as participation. The voting summary tallies the
closed category set and derives a majority label, with ties reported as
"Undecided".

# Search Ranking

GET /api/search serves both the unfiltered top list and substring-filtered
lookups from one cached ranked snapshot (see the cache package). Tracked
searches increment counters through a single atomic upsert, so the ranking
never loses concurrent updates; the snapshot catches up when its TTL lapses.

# External Providers

ExternalHandler depends on small provider interfaces (SummaryProvider,
WebSearchProvider, CompletionProvider) rather than concrete clients. A
provider that is not configured yields 502, and so does any upstream
failure. POST /api/completion additionally requires a session token,
enforced at the router.
*/
package handlers
