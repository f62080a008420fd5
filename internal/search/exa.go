// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// exaAPIBase is the Exa neural search endpoint. Declared as a var so tests
// can substitute an httptest server.
var exaAPIBase = "https://api.exa.ai/search"

// ExaProvider queries the Exa neural/semantic search API. Exa returns full
// document text rather than snippets, so its contribution usually wins the
// longer-snippet rule during merge.
type ExaProvider struct {
	Client *http.Client
	APIKey string
}

// Name returns the provider identifier.
func (p *ExaProvider) Name() string { return types.ProviderExa }

// Search queries Exa with the academic domain allow-list applied.
func (p *ExaProvider) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty Exa query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 7
	}

	body, err := json.Marshal(exaRequest{
		Query:          query,
		NumResults:     maxResults,
		Type:           "neural",
		IncludeDomains: AcademicDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding Exa request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, exaAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.APIKey)
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Exa API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Exa API returned HTTP %d", resp.StatusCode)
	}

	var er exaResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing Exa response: %w", err)
	}

	var results []types.SearchResult
	for _, hit := range er.Results {
		if hit.URL == "" {
			continue
		}
		results = append(results, types.SearchResult{
			Title:          hit.Title,
			URL:            hit.URL,
			ContentSnippet: hit.Text,
			SourceType:     types.SourceExaSearch,
			Authors:        hit.Author,
			Year:           yearFromDate(hit.PublishedDate),
			MainPubURL:     hit.URL,
		})
	}
	return results, nil
}

// yearFromDate takes the year component of an ISO date string ("2017-04-01"
// or just "2017"), or "" when absent.
func yearFromDate(date string) string {
	if date == "" {
		return ""
	}
	year, _, _ := strings.Cut(date, "-")
	if len(year) != 4 {
		return ""
	}
	return year
}

// Exa API JSON structures.
type exaRequest struct {
	Query          string   `json:"query"`
	NumResults     int      `json:"numResults"`
	Type           string   `json:"type"`
	IncludeDomains []string `json:"includeDomains,omitempty"`
}

type exaResponse struct {
	Results []exaResult `json:"results"`
}

type exaResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Text          string `json:"text"`
	Author        string `json:"author"`
	PublishedDate string `json:"publishedDate"`
}
