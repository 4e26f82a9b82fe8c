// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voxobserver/server/models"
	"github.com/voxobserver/server/testutil"
)

type fakeSummaryProvider struct {
	resp models.SummaryResponse
	err  error

	// name the provider was asked about
	gotName string
}

func (f *fakeSummaryProvider) Summary(_ context.Context, name string) (models.SummaryResponse, error) {
	f.gotName = name
	return f.resp, f.err
}

type fakeWebSearchProvider struct {
	results []models.WebSearchResult
	err     error
}

func (f *fakeWebSearchProvider) Search(_ context.Context, _ string) ([]models.WebSearchResult, error) {
	return f.results, f.err
}

type fakeCompletionProvider struct {
	text string
	err  error
}

func (f *fakeCompletionProvider) Complete(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	testutil.CreatePolitician(t, db, "Petr Fiala", "petr-fiala")

	tests := []struct {
		name           string
		handle         string
		provider       *fakeSummaryProvider
		expectedStatus int
		checkResponse  func(t *testing.T, provider *fakeSummaryProvider, resp *models.SummaryResponse)
	}{
		{
			name:   "summary fetched by display name",
			handle: "petr-fiala",
			provider: &fakeSummaryProvider{
				resp: models.SummaryResponse{
					Title:   "Petr Fiala",
					Extract: "Czech politician and political scientist.",
					URL:     "https://en.wikipedia.org/wiki/Petr_Fiala",
				},
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, provider *fakeSummaryProvider, resp *models.SummaryResponse) {
				if provider.gotName != "Petr Fiala" {
					t.Errorf("Expected provider queried with display name, got '%s'", provider.gotName)
				}
				if resp.Extract != "Czech politician and political scientist." {
					t.Errorf("Unexpected extract '%s'", resp.Extract)
				}
			},
		},
		{
			name:           "politician not found",
			handle:         "nonexistent",
			provider:       &fakeSummaryProvider{},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "provider failure maps to bad gateway",
			handle:         "petr-fiala",
			provider:       &fakeSummaryProvider{err: errors.New("upstream timeout")},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewExternalHandler(db, cfg, tt.provider, nil, nil)

			req := httptest.NewRequest("GET", "/api/summary/"+tt.handle, nil)
			req.SetPathValue("handle", tt.handle)
			w := httptest.NewRecorder()

			handler.GetSummary(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.SummaryResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, tt.provider, &resp)
			}
		})
	}
}

func TestGetSummaryWithoutProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	testutil.CreatePolitician(t, db, "Petr Fiala", "petr-fiala")
	handler := NewExternalHandler(db, cfg, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/summary/petr-fiala", nil)
	req.SetPathValue("handle", "petr-fiala")
	w := httptest.NewRecorder()

	handler.GetSummary(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)
}

func TestWebSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()

	tests := []struct {
		name           string
		query          string
		provider       *fakeWebSearchProvider
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "results returned",
			query: "petr fiala",
			provider: &fakeWebSearchProvider{
				results: []models.WebSearchResult{
					{Title: "Petr Fiala", URL: "https://example.com/1", Snippet: "Prime minister"},
					{Title: "Government", URL: "https://example.com/2", Snippet: "Cabinet"},
				},
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "missing query",
			query:          "",
			provider:       &fakeWebSearchProvider{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no results",
			query:          "obscure",
			provider:       &fakeWebSearchProvider{},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "provider failure maps to bad gateway",
			query:          "petr fiala",
			provider:       &fakeWebSearchProvider{err: errors.New("rate limited")},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewExternalHandler(db, cfg, nil, tt.provider, nil)

			target := "/api/websearch"
			if tt.query != "" {
				target += "?query=" + strings.ReplaceAll(tt.query, " ", "+")
			}
			req := httptest.NewRequest("GET", target, nil)
			w := httptest.NewRecorder()

			handler.WebSearch(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.WebSearchResponse
				testutil.AssertJSON(t, w, &resp)
				if len(resp.Results) != tt.expectedCount {
					t.Errorf("Expected %d results, got %d", tt.expectedCount, len(resp.Results))
				}
			}
		})
	}
}

func TestComplete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()

	tests := []struct {
		name           string
		body           interface{}
		provider       *fakeCompletionProvider
		expectedStatus int
		expectedText   string
	}{
		{
			name:           "completion returned",
			body:           models.CompletionRequest{Prompt: "Summarize the stance on pension reform"},
			provider:       &fakeCompletionProvider{text: "Supportive"},
			expectedStatus: http.StatusOK,
			expectedText:   "Supportive",
		},
		{
			name:           "empty prompt",
			body:           models.CompletionRequest{Prompt: "   "},
			provider:       &fakeCompletionProvider{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "prompt too long",
			body:           models.CompletionRequest{Prompt: strings.Repeat("x", 1001)},
			provider:       &fakeCompletionProvider{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "provider failure maps to bad gateway",
			body:           models.CompletionRequest{Prompt: "Summarize"},
			provider:       &fakeCompletionProvider{err: errors.New("quota exceeded")},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewExternalHandler(db, cfg, nil, nil, tt.provider)

			req := testutil.MakeRequest("POST", "/api/completion", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Complete(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.CompletionResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Text != tt.expectedText {
					t.Errorf("Expected text '%s', got '%s'", tt.expectedText, resp.Text)
				}
			}
		})
	}
}

func TestCompleteWithoutProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewExternalHandler(db, cfg, nil, nil, nil)

	req := testutil.MakeRequest("POST", "/api/completion", models.CompletionRequest{Prompt: "Summarize"}, nil)
	w := httptest.NewRecorder()

	handler.Complete(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)
}
