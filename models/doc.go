// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - TrackSearchRequest: politicianId or handle
  - CompletionRequest: prompt

# Response Types

Types for JSON responses:

  - MonthlyAttendance: month label + attendancePercentage
  - VotingSummaryResponse: per-category slices, majorityLabel, totalVotes
  - SearchResponse / SearchResult: ranked or filtered politicians
  - TrackSearchResponse: success flag
  - VoteLogResponse / VoteLogEntry: raw vote log joined with sessions
  - SummaryResponse: encyclopedia extract
  - WebSearchResponse / WebSearchResult: title/url/snippet triples
  - CompletionResponse: completion text
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Politician: identity record (unique name, unique handle)
  - PartyAffiliation: time-boxed party membership
  - PoliticianProfile: politician + current party + history

# Vote Categories

Raw vote values in the ledger are free text. votes.go defines the closed
VoteCategory set (Yes, No, Abstain, NotLoggedIn, Refrained), the
case-insensitive NormalizeVote mapping, chart labels/fills, and the
majority-label rule:

	label := models.MajorityLabel(counts) // "Mostly Agreeable", ... or "Undecided"

Unrecognized raw values normalize to VoteUnrecognized and are excluded from
all tallies.
*/
package models
