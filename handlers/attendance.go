// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/middleware"
	"github.com/voxobserver/server/models"
)

type AttendanceHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAttendanceHandler(db *sql.DB, cfg cliparse.Config) *AttendanceHandler {
	return &AttendanceHandler{db: db, cfg: cfg}
}

// GetAttendance handles GET /api/attendance/:handle
// Returns per-month attendance percentages, chronologically ordered.
// An unknown handle yields an empty array, not a 404: the chart renders
// "no politician" and "no dated sessions" the same way.
func (h *AttendanceHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "handle is required")
		return
	}

	attendance, err := ComputeMonthlyAttendance(h.db, handle)
	if err != nil {
		slog.Error("failed to compute attendance", "error", err, "handle", handle)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, attendance)
}

// monthTally counts sessions within one calendar month
type monthTally struct {
	total        int
	participated int
}

// ComputeMonthlyAttendance calculates the share of voting sessions the
// politician took part in, per calendar month.
//
// The universe is every session with a parseable date. Participation is any
// vote that does not normalize to NotLoggedIn - abstaining and refraining
// both count as showing up. Months are keyed by (year, month), so January
// of different years never collapse into one bucket, and the output is
// sorted on the real date, never on the label.
func ComputeMonthlyAttendance(db *sql.DB, handle string) ([]models.MonthlyAttendance, error) {
	allDates, err := sessionDates(db, `
		SELECT date FROM voting_sessions
		WHERE date IS NOT NULL AND date <> ''
	`)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*monthTally)
	for _, raw := range allDates {
		month, ok := parseSessionMonth(raw)
		if !ok {
			slog.Warn("skipping session with unparseable date", "date", raw)
			continue
		}
		if buckets[month] == nil {
			buckets[month] = &monthTally{}
		}
		buckets[month].total++
	}

	// Sessions where the politician cast a counted vote
	rows, err := db.Query(`
		SELECT vs.date, v.vote
		FROM voting_sessions vs
		JOIN votes v ON v.voting_session_id = vs.id
		JOIN politicians p ON v.politician_id = p.id
		WHERE p.handle = $1 AND vs.date IS NOT NULL AND vs.date <> ''
	`, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voteRows := 0
	for rows.Next() {
		var raw, vote string
		if err := rows.Scan(&raw, &vote); err != nil {
			return nil, err
		}
		voteRows++
		if models.NormalizeVote(vote) == models.VoteNotLoggedIn {
			continue
		}
		month, ok := parseSessionMonth(raw)
		if !ok {
			continue // already logged while building the universe
		}
		if buckets[month] != nil {
			buckets[month].participated++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// No votes at all, so no months to report. A politician who only ever
	// stayed logged out still gets the full month list at 0%.
	if voteRows == 0 {
		return []models.MonthlyAttendance{}, nil
	}

	// Sort months on the real date
	months := make([]time.Time, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	attendance := make([]models.MonthlyAttendance, 0, len(months))
	for _, m := range months {
		tally := buckets[m]
		pct := float64(tally.participated) / float64(tally.total) * 100
		attendance = append(attendance, models.MonthlyAttendance{
			Month:                m.Month().String() + " " + strconv.Itoa(m.Year()),
			AttendancePercentage: math.Round(pct*100) / 100,
		})
	}

	return attendance, nil
}

// sessionDates runs a single-column date query and collects the raw values
func sessionDates(db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// parseSessionMonth maps a raw session date to the first day of its month.
// Ingested dates are ISO-8601 but not guaranteed well-formed; a bad value
// reports false and the caller skips it.
func parseSessionMonth(raw string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		d, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, false
		}
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), true
}
