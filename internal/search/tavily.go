// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// tavilyAPIBase is the Tavily search endpoint. Declared as a var so tests
// can substitute an httptest server.
var tavilyAPIBase = "https://api.tavily.com/search"

// TavilyProvider queries the Tavily web search API. It is the lowest-
// precedence provider: it finds URLs and snippets but carries no
// bibliographic metadata.
type TavilyProvider struct {
	Client *http.Client
	APIKey string
}

// Name returns the provider identifier.
func (p *TavilyProvider) Name() string { return types.ProviderTavily }

// Search queries Tavily with the academic domain allow-list applied.
func (p *TavilyProvider) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty Tavily query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 7
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:         p.APIKey,
		Query:          query,
		SearchDepth:    "basic",
		MaxResults:     maxResults,
		IncludeDomains: AcademicDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding Tavily request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Tavily API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Tavily API returned HTTP %d", resp.StatusCode)
	}

	var tr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing Tavily response: %w", err)
	}

	var results []types.SearchResult
	for _, hit := range tr.Results {
		if hit.URL == "" {
			continue
		}
		results = append(results, types.SearchResult{
			Title:          hit.Title,
			URL:            hit.URL,
			ContentSnippet: hit.Content,
			SourceType:     types.SourceWebsite,
		})
	}
	return results, nil
}

// Tavily API JSON structures.
type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}
