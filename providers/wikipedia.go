// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/voxobserver/server/models"
)

const defaultWikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Wikipedia fetches encyclopedia page summaries keyed by display name.
// It is an opaque collaborator: one GET, no retries.
type Wikipedia struct {
	BaseURL string
	HTTP    *http.Client
}

func NewWikipedia() *Wikipedia {
	return &Wikipedia{
		BaseURL: defaultWikipediaBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Summary returns the page summary for a display name ("Petr Fiala").
func (w *Wikipedia) Summary(ctx context.Context, name string) (models.SummaryResponse, error) {
	endpoint := w.BaseURL + "/page/summary/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.SummaryResponse{}, fmt.Errorf("failed to build summary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return models.SummaryResponse{}, fmt.Errorf("summary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SummaryResponse{}, fmt.Errorf("summary provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Title       string `json:"title"`
		Extract     string `json:"extract"`
		ContentURLs struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.SummaryResponse{}, fmt.Errorf("failed to decode summary response: %w", err)
	}

	return models.SummaryResponse{
		Title:   payload.Title,
		Extract: payload.Extract,
		URL:     payload.ContentURLs.Desktop.Page,
	}, nil
}
