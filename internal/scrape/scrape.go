// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape fetches full-text article content for a URL. Requests go
// through the ScraperAPI proxy (which handles JS rendering and UA rotation)
// and the response is reduced to plain text: HTML via main-content
// extraction, PDF via text extraction. Scraping either produces text or
// fails; callers treat failure as "no full text available".
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// scraperAPIBase is the ScraperAPI proxy endpoint. Declared as a var so
// tests can substitute an httptest server.
var scraperAPIBase = "http://api.scraperapi.com/"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Scraper fetches and extracts article text, rate-limited across calls.
type Scraper struct {
	Client  *http.Client
	APIKey  string
	MinLen  int
	limiter *rate.Limiter
}

// New builds a Scraper from config. Rate defaults to 1 request/second and
// the minimum accepted content length to 200 characters.
func New(cfg types.ScrapeConfig) *Scraper {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	minLen := cfg.MinContentLength
	if minLen <= 0 {
		minLen = 200
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Scraper{
		Client:  &http.Client{Timeout: timeout},
		APIKey:  cfg.ScraperAPIKey,
		MinLen:  minLen,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Scrape fetches target through ScraperAPI and returns its plain text.
// JS rendering is requested for HTML pages but skipped for likely-PDF URLs,
// where it only adds latency.
func (s *Scraper) Scrape(ctx context.Context, target string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("no URL provided")
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	params := url.Values{
		"api_key": {s.APIKey},
		"url":     {target},
	}
	if !strings.Contains(strings.ToLower(target), ".pdf") {
		params.Set("render", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scraperAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return "", fmt.Errorf("ScraperAPI request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("access forbidden (403): likely a paywall or anti-scraping measure")
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("ScraperAPI returned HTTP %d", resp.StatusCode)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(contentType, "application/pdf"):
		return s.extractPDF(resp.Body)
	case strings.Contains(contentType, "text/html"):
		return s.extractHTML(resp.Body)
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}
