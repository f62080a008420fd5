// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// DOAJ (Directory of Open Access Journals) search endpoints. The query is
// embedded in the URL path, not a query parameter. Declared as vars so
// tests can substitute an httptest server.
var (
	doajArticlesBase = "https://doaj.org/api/v2/search/articles"
	doajJournalsBase = "https://doaj.org/api/v2/search/journals"
)

// DOAJArticleProvider queries the DOAJ article directory. DOAJ returns
// structured bibjson metadata, so fields map directly with no text
// heuristics; it sits high in the merge precedence for that reason.
type DOAJArticleProvider struct {
	Client *http.Client
}

// Name returns the provider identifier.
func (p *DOAJArticleProvider) Name() string { return types.ProviderDOAJArticle }

// Search queries the DOAJ articles endpoint.
func (p *DOAJArticleProvider) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	dr, err := doajFetch(ctx, p.Client, doajArticlesBase, query, cfg)
	if err != nil {
		return nil, err
	}

	var results []types.SearchResult
	for _, hit := range dr.Results {
		bj := hit.BibJSON

		r := types.SearchResult{
			Title:       bj.Title,
			SourceType:  types.SourceDOAJArticle,
			Year:        bj.Year,
			JournalName: bj.Journal.Title,
			Volume:      bj.Journal.Volume,
			Pages:       joinPages(bj.StartPage, bj.EndPage),
		}

		// Prefer a fulltext link as the record URL, fall back to any link.
		for _, l := range bj.Links {
			switch l.Type {
			case "fulltext":
				if r.URL == "" && l.URL != "" {
					r.URL = l.URL
					r.MainPubURL = l.URL
				}
			case "pdf":
				if r.PDFURL == "" {
					r.PDFURL = l.URL
				}
			}
		}
		if r.URL == "" {
			for _, l := range bj.Links {
				if l.URL != "" {
					r.URL = l.URL
					if r.MainPubURL == "" {
						r.MainPubURL = l.URL
					}
					break
				}
			}
		}
		if r.URL == "" {
			continue
		}

		var authors []string
		for _, a := range bj.Authors {
			if a.Name != "" {
				authors = append(authors, a.Name)
			}
		}
		r.Authors = strings.Join(authors, ", ")

		for _, id := range bj.Identifiers {
			if id.Type == "doi" && id.ID != "" {
				r.DOI = id.ID
				break
			}
		}

		// Search hits rarely carry an abstract; below ~50 chars it is
		// noise rather than a usable snippet.
		if len(bj.Abstract) >= 50 {
			r.ContentSnippet = bj.Abstract
		}

		results = append(results, r)
	}
	return results, nil
}

// DOAJJournalProvider queries the DOAJ journal directory. Journal entries
// have no authors, year, or pages; they contribute publisher and ISSN,
// which no other provider knows.
type DOAJJournalProvider struct {
	Client *http.Client
}

// Name returns the provider identifier.
func (p *DOAJJournalProvider) Name() string { return types.ProviderDOAJJournal }

// Search queries the DOAJ journals endpoint.
func (p *DOAJJournalProvider) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	dr, err := doajFetch(ctx, p.Client, doajJournalsBase, query, cfg)
	if err != nil {
		return nil, err
	}

	var results []types.SearchResult
	for _, hit := range dr.Results {
		bj := hit.BibJSON

		r := types.SearchResult{
			Title:       bj.Title,
			SourceType:  types.SourceDOAJJournal,
			JournalName: bj.Title,
			Publisher:   publisherName(bj.Publisher),
		}

		var issns []string
		for _, id := range bj.Identifiers {
			if (id.Type == "pissn" || id.Type == "eissn") && id.ID != "" {
				issns = append(issns, id.ID)
			}
		}
		r.ISSN = strings.Join(issns, ", ")

		// Homepage link first, then any link.
		for _, l := range bj.Links {
			if l.Type == "homepage" && l.URL != "" {
				r.URL = l.URL
				break
			}
		}
		if r.URL == "" {
			for _, l := range bj.Links {
				if l.URL != "" {
					r.URL = l.URL
					break
				}
			}
		}
		if r.URL == "" {
			continue
		}
		r.MainPubURL = r.URL

		if len(bj.Keywords) > 0 {
			r.ContentSnippet = "Keywords: " + strings.Join(bj.Keywords, ", ")
		}

		results = append(results, r)
	}
	return results, nil
}

// doajFetch performs a GET against a DOAJ search endpoint with the query
// path-escaped into the URL.
func doajFetch(ctx context.Context, client *http.Client, base, query string, cfg types.SearchConfig) (*doajResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("empty DOAJ query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 7
	}

	params := url.Values{
		"page":     {"1"},
		"pageSize": {fmt.Sprintf("%d", maxResults)},
	}
	reqURL := base + "/" + url.PathEscape(query) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("DOAJ API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DOAJ API returned HTTP %d", resp.StatusCode)
	}

	var dr doajResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("parsing DOAJ response: %w", err)
	}
	return &dr, nil
}

// joinPages combines start/end page numbers into a "start-end" range,
// degrading to whichever side is present.
func joinPages(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + "-" + end
	case start != "":
		return start
	default:
		return end
	}
}

// publisherName tolerates both bibjson publisher shapes: a plain string and
// an object with a name field.
func publisherName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

// DOAJ API JSON structures.
type doajResponse struct {
	Results []doajHit `json:"results"`
}

type doajHit struct {
	BibJSON doajBibJSON `json:"bibjson"`
}

type doajBibJSON struct {
	Title       string           `json:"title"`
	Abstract    string           `json:"abstract"`
	Year        string           `json:"year"`
	Keywords    []string         `json:"keywords"`
	Publisher   json.RawMessage  `json:"publisher"`
	StartPage   string           `json:"start_page"`
	EndPage     string           `json:"end_page"`
	Authors     []doajAuthor     `json:"author"`
	Journal     doajJournal      `json:"journal"`
	Links       []doajLink       `json:"link"`
	Identifiers []doajIdentifier `json:"identifier"`
}

type doajAuthor struct {
	Name string `json:"name"`
}

type doajJournal struct {
	Title  string `json:"title"`
	Volume string `json:"volume"`
}

type doajLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type doajIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
