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

const defaultBraveBaseURL = "https://api.search.brave.com/res/v1"

// Brave wraps the Brave web search API. Opaque collaborator: one GET with
// the subscription token header, no retries.
type Brave struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewBrave(token string) *Brave {
	return &Brave{
		BaseURL: defaultBraveBaseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns title/url/snippet triples for a free-text query. An empty
// result list is not an error; callers decide how to report it.
func (b *Brave) Search(ctx context.Context, query string) ([]models.WebSearchResult, error) {
	endpoint := b.BaseURL + "/web/search?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build web search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.Token)

	resp, err := b.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web search provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Web struct {
			Results []struct {
				Title   string `json:"title"`
				URL     string `json:"url"`
				Snippet string `json:"snippet"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode web search response: %w", err)
	}

	results := make([]models.WebSearchResult, 0, len(payload.Web.Results))
	for _, r := range payload.Web.Results {
		title := r.Title
		if title == "" {
			title = "No title"
		}
		snippet := r.Snippet
		if snippet == "" {
			snippet = "No snippet"
		}
		results = append(results, models.WebSearchResult{
			Title:   title,
			URL:     r.URL,
			Snippet: snippet,
		})
	}

	return results, nil
}
