// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/research-assistant/internal/bibtext"
	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// serpAPIBase is the SerpApi search endpoint. Declared as a var so tests
// can substitute an httptest server.
var serpAPIBase = "https://serpapi.com/search"

// ScholarProvider queries Google Scholar through SerpApi. Scholar returns
// bibliographic metadata only as a free-text publication summary, so this
// adapter leans on bibtext to recover authors, year, volume, pages, and
// journal name.
type ScholarProvider struct {
	Client *http.Client
	APIKey string
}

// Name returns the provider identifier.
func (p *ScholarProvider) Name() string { return types.ProviderGoogleScholar }

// Search queries SerpApi's google_scholar engine.
func (p *ScholarProvider) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty Google Scholar query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 7
	}

	params := url.Values{
		"engine":  {"google_scholar"},
		"q":       {query},
		"num":     {fmt.Sprintf("%d", maxResults)},
		"api_key": {p.APIKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("SerpApi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SerpApi returned HTTP %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing SerpApi response: %w", err)
	}

	// SerpApi reports provider-side failures in-band.
	if sr.Error != "" {
		return nil, fmt.Errorf("SerpApi error: %s", sr.Error)
	}
	if sr.SearchMetadata.Status != "" && sr.SearchMetadata.Status != "Success" {
		if sr.SearchMetadata.Error != "" {
			return nil, fmt.Errorf("SerpApi error: %s", sr.SearchMetadata.Error)
		}
		return nil, fmt.Errorf("SerpApi search status %q", sr.SearchMetadata.Status)
	}

	var results []types.SearchResult
	for _, hit := range sr.OrganicResults {
		r := types.SearchResult{
			Title:          hit.Title,
			ContentSnippet: hit.Snippet,
			SourceType:     types.SourceScholarArticle,
			MainPubURL:     hit.Link,
		}

		for _, res := range hit.Resources {
			if res.FileFormat == "PDF" && res.Link != "" {
				r.PDFURL = res.Link
				break
			}
		}

		r.URL = hit.Link
		if r.URL == "" {
			r.URL = r.PDFURL
		}
		if r.URL == "" {
			continue
		}

		if r.DOI = bibtext.ExtractDOI(hit.Snippet); r.DOI == "" {
			r.DOI = bibtext.ExtractDOI(hit.Link)
		}

		if summary := hit.PublicationInfo.Summary; summary != "" {
			r.Authors = bibtext.ExtractAuthorPrefix(summary)
			f := bibtext.ParseSummary(summary, r.Authors)
			r.Year = f.Year
			r.Volume = f.Volume
			r.Pages = f.Pages
			r.JournalName = f.Journal
		}

		results = append(results, r)
	}
	return results, nil
}

// SerpApi google_scholar JSON structures.
type serpResponse struct {
	Error          string           `json:"error"`
	SearchMetadata serpMetadata     `json:"search_metadata"`
	OrganicResults []serpOrganicHit `json:"organic_results"`
}

type serpMetadata struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type serpOrganicHit struct {
	Title           string      `json:"title"`
	Link            string      `json:"link"`
	Snippet         string      `json:"snippet"`
	Resources       []serpLink  `json:"resources"`
	PublicationInfo serpPubInfo `json:"publication_info"`
}

type serpLink struct {
	FileFormat string `json:"file_format"`
	Link       string `json:"link"`
}

type serpPubInfo struct {
	Summary string `json:"summary"`
}
