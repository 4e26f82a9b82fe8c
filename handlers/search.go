// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/voxobserver/server/cache"
	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
)

// SearchResultLimit caps every search response
const SearchResultLimit = 10

// SearchCacheTTL bounds how stale the ranked snapshot may get. Tracked
// searches do not invalidate it; the window is an accepted trade.
const SearchCacheTTL = 5 * time.Minute

type SearchHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	rankings *cache.Snapshot[[]models.SearchResult]
}

func NewSearchHandler(db *sql.DB, cfg cliparse.Config, rankings *cache.Snapshot[[]models.SearchResult]) *SearchHandler {
	return &SearchHandler{db: db, cfg: cfg, rankings: rankings}
}

// Search handles GET /api/search
// Without query text: the top politicians by search count. With text:
// case-insensitive substring match over name and handle. Both are served
// from one cached ranked snapshot; filtered queries filter the snapshot
// instead of hitting the store again.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	ranked, ok := h.rankings.Get()
	if !ok {
		var err error
		ranked, err = loadRankings(h.db)
		if err != nil {
			slog.Error("failed to load search rankings", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		h.rankings.Set(ranked)
	}

	results := make([]models.SearchResult, 0, SearchResultLimit)
	if query == "" {
		for _, p := range ranked {
			if len(results) == SearchResultLimit {
				break
			}
			results = append(results, p)
		}
	} else {
		needle := strings.ToLower(query)
		for _, p := range ranked {
			if len(results) == SearchResultLimit {
				break
			}
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Handle), needle) {
				results = append(results, p)
			}
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{Results: results})
}

// loadRankings reads the full politician list ordered by search count.
// Politicians never searched rank at the bottom with a zero count.
func loadRankings(db *sql.DB) ([]models.SearchResult, error) {
	rows, err := db.Query(`
		SELECT p.id, p.name, p.handle, COALESCE(s.search_count, 0), s.last_searched
		FROM politicians p
		LEFT JOIN search_stats s ON s.politician_id = p.id
		ORDER BY COALESCE(s.search_count, 0) DESC, p.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []models.SearchResult
	for rows.Next() {
		var res models.SearchResult
		var lastSearched sql.NullString
		if err := rows.Scan(&res.ID, &res.Name, &res.Handle, &res.SearchCount, &lastSearched); err != nil {
			return nil, err
		}
		if lastSearched.Valid {
			if ts, err := time.Parse(time.RFC3339, lastSearched.String); err == nil {
				res.LastSearched = humanize.Time(ts)
			}
		}
		ranked = append(ranked, res)
	}

	return ranked, rows.Err()
}
