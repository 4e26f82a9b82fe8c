// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Vox Observer API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Aggregations (public):

	GET /api/attendance/{handle} - Monthly attendance percentages
	GET /api/voting/{handle}     - Vote summary with majority label

Search (public):

	GET  /api/search       - Ranked search, optional ?query= filter
	POST /api/track-search - Increment a politician's search counter

Politician data (public):

	GET /api/politicians/{handle} - Profile with party history
	GET /api/votes/{handle}       - Raw vote log, newest session first

External lookups:

	GET  /api/summary/{handle} - Encyclopedia summary
	GET  /api/websearch        - Web search, requires ?query=
	POST /api/completion       - Completion proxy (requires X-Session-Token)

# Handler Initialization

The router creates handler instances with dependency injection:

	attendanceHandler := handlers.NewAttendanceHandler(db, cfg)
	searchHandler := handlers.NewSearchHandler(db, cfg, cache.New[[]models.SearchResult](handlers.SearchCacheTTL))

The search snapshot cache is created here so every search request shares
one ranked snapshot. Provider-backed routes get their clients here too;
a missing API key leaves the provider nil and the route answers 502.
*/
package router
