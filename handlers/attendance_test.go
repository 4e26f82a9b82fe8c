// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voxobserver/server/models"
	"github.com/voxobserver/server/testutil"
)

func TestGetAttendance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAttendanceHandler(db, cfg)

	politicianID := testutil.CreatePolitician(t, db, "Petr Fiala", "petr-fiala")

	// Two January sessions, one February session
	jan1 := testutil.CreateSession(t, db, "s-1001", testutil.StrPtr("2024-01-10"), "Budget first reading")
	jan2 := testutil.CreateSession(t, db, "s-1002", testutil.StrPtr("2024-01-24"), "Budget second reading")
	feb1 := testutil.CreateSession(t, db, "s-1003", testutil.StrPtr("2024-02-14"), "Pension reform")

	// Present in both January sessions, absent in February
	testutil.CastVote(t, db, politicianID, jan1, "Yes")
	testutil.CastVote(t, db, politicianID, jan2, "Abstain")
	testutil.CastVote(t, db, politicianID, feb1, "Not logged in")

	tests := []struct {
		name           string
		handle         string
		expectedStatus int
		checkResponse  func(t *testing.T, resp []models.MonthlyAttendance)
	}{
		{
			name:           "monthly buckets in chronological order",
			handle:         "petr-fiala",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp []models.MonthlyAttendance) {
				if len(resp) != 2 {
					t.Fatalf("Expected 2 months, got %d", len(resp))
				}
				if resp[0].Month != "January 2024" {
					t.Errorf("Expected first month 'January 2024', got '%s'", resp[0].Month)
				}
				if resp[0].AttendancePercentage != 100 {
					t.Errorf("Expected 100%% in January, got %f", resp[0].AttendancePercentage)
				}
				if resp[1].Month != "February 2024" {
					t.Errorf("Expected second month 'February 2024', got '%s'", resp[1].Month)
				}
				if resp[1].AttendancePercentage != 0 {
					t.Errorf("Expected 0%% in February, got %f", resp[1].AttendancePercentage)
				}
			},
		},
		{
			name:           "unknown handle yields empty array",
			handle:         "nonexistent",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp []models.MonthlyAttendance) {
				if len(resp) != 0 {
					t.Errorf("Expected empty array for unknown handle, got %d months", len(resp))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/attendance/"+tt.handle, nil)
			req.SetPathValue("handle", tt.handle)
			w := httptest.NewRecorder()

			handler.GetAttendance(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp []models.MonthlyAttendance
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestGetAttendanceRounding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAttendanceHandler(db, cfg)

	politicianID := testutil.CreatePolitician(t, db, "Andrej Babis", "andrej-babis")

	// Three March sessions, one attended: 33.333... rounds to 33.33
	s1 := testutil.CreateSession(t, db, "s-2001", testutil.StrPtr("2024-03-05"), "Session A")
	testutil.CreateSession(t, db, "s-2002", testutil.StrPtr("2024-03-12"), "Session B")
	testutil.CreateSession(t, db, "s-2003", testutil.StrPtr("2024-03-19"), "Session C")
	testutil.CastVote(t, db, politicianID, s1, "No")

	req := httptest.NewRequest("GET", "/api/attendance/andrej-babis", nil)
	req.SetPathValue("handle", "andrej-babis")
	w := httptest.NewRecorder()

	handler.GetAttendance(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp []models.MonthlyAttendance
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 1 {
		t.Fatalf("Expected 1 month, got %d", len(resp))
	}
	if resp[0].AttendancePercentage != 33.33 {
		t.Errorf("Expected 33.33%%, got %f", resp[0].AttendancePercentage)
	}
}

func TestGetAttendanceSkipsUndatedAndMalformedSessions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAttendanceHandler(db, cfg)

	politicianID := testutil.CreatePolitician(t, db, "Marketa Adamova", "marketa-adamova")

	dated := testutil.CreateSession(t, db, "s-3001", testutil.StrPtr("2024-04-02"), "Dated session")
	undated := testutil.CreateSession(t, db, "s-3002", nil, "Undated session")
	garbled := testutil.CreateSession(t, db, "s-3003", testutil.StrPtr("not-a-date"), "Garbled session")

	testutil.CastVote(t, db, politicianID, dated, "Yes")
	testutil.CastVote(t, db, politicianID, undated, "Yes")
	testutil.CastVote(t, db, politicianID, garbled, "Yes")

	req := httptest.NewRequest("GET", "/api/attendance/marketa-adamova", nil)
	req.SetPathValue("handle", "marketa-adamova")
	w := httptest.NewRecorder()

	handler.GetAttendance(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp []models.MonthlyAttendance
	testutil.AssertJSON(t, w, &resp)

	// Only the well-dated session may contribute a bucket
	if len(resp) != 1 {
		t.Fatalf("Expected 1 month, got %d", len(resp))
	}
	if resp[0].Month != "April 2024" {
		t.Errorf("Expected 'April 2024', got '%s'", resp[0].Month)
	}
	if resp[0].AttendancePercentage != 100 {
		t.Errorf("Expected 100%%, got %f", resp[0].AttendancePercentage)
	}
}

func TestGetAttendanceSeparatesYears(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAttendanceHandler(db, cfg)

	politicianID := testutil.CreatePolitician(t, db, "Ivan Bartos", "ivan-bartos")

	// January of two different years must not collapse into one bucket
	old := testutil.CreateSession(t, db, "s-4001", testutil.StrPtr("2023-01-15"), "Old session")
	recent := testutil.CreateSession(t, db, "s-4002", testutil.StrPtr("2024-01-15"), "Recent session")
	testutil.CastVote(t, db, politicianID, old, "Yes")
	testutil.CastVote(t, db, politicianID, recent, "Not logged in")

	req := httptest.NewRequest("GET", "/api/attendance/ivan-bartos", nil)
	req.SetPathValue("handle", "ivan-bartos")
	w := httptest.NewRecorder()

	handler.GetAttendance(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp []models.MonthlyAttendance
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 2 {
		t.Fatalf("Expected 2 months, got %d", len(resp))
	}
	if resp[0].Month != "January 2023" || resp[0].AttendancePercentage != 100 {
		t.Errorf("Expected 'January 2023' at 100%%, got '%s' at %f", resp[0].Month, resp[0].AttendancePercentage)
	}
	if resp[1].Month != "January 2024" || resp[1].AttendancePercentage != 0 {
		t.Errorf("Expected 'January 2024' at 0%%, got '%s' at %f", resp[1].Month, resp[1].AttendancePercentage)
	}
}

func TestGetAttendanceIsReadOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAttendanceHandler(db, cfg)

	politicianID := testutil.CreatePolitician(t, db, "Vit Rakusan", "vit-rakusan")
	session := testutil.CreateSession(t, db, "s-5001", testutil.StrPtr("2024-05-07"), "Session")
	testutil.CastVote(t, db, politicianID, session, "Yes")

	// Two identical reads must agree
	var first, second []models.MonthlyAttendance
	for i, target := range []*[]models.MonthlyAttendance{&first, &second} {
		req := httptest.NewRequest("GET", "/api/attendance/vit-rakusan", nil)
		req.SetPathValue("handle", "vit-rakusan")
		w := httptest.NewRecorder()

		handler.GetAttendance(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertJSON(t, w, target)
		if i == 1 {
			if len(first) != len(second) {
				t.Fatalf("Repeated reads disagree: %d vs %d months", len(first), len(second))
			}
			for j := range first {
				if first[j] != second[j] {
					t.Errorf("Repeated reads disagree at %d: %+v vs %+v", j, first[j], second[j])
				}
			}
		}
	}
}
