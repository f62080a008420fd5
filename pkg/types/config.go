// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the unified search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the per-provider result cap (default 7).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Provider toggles. All default to on; a provider with a missing API
	// key is skipped with a warning rather than failing the search.
	EnableTavily      bool `json:"enable_tavily" yaml:"enable_tavily"`
	EnableScholar     bool `json:"enable_scholar" yaml:"enable_scholar"`
	EnableExa         bool `json:"enable_exa" yaml:"enable_exa"`
	EnableDOAJ        bool `json:"enable_doaj" yaml:"enable_doaj"`
	EnableDOAJJournal bool `json:"enable_doaj_journals" yaml:"enable_doaj_journals"`

	// API keys, usually loaded from .secrets/ rather than the config file.
	TavilyAPIKey  string `json:"tavily_api_key,omitempty" yaml:"tavily_api_key,omitempty"`
	SerpAPIKey    string `json:"serpapi_api_key,omitempty" yaml:"serpapi_api_key,omitempty"`
	ExaAPIKey     string `json:"exa_api_key,omitempty" yaml:"exa_api_key,omitempty"`

	// Precedence overrides the provider-identity order used to resolve
	// merge conflicts. Empty means DefaultPrecedence. The order is a
	// policy choice, not a correctness requirement.
	Precedence []string `json:"precedence,omitempty" yaml:"precedence,omitempty"`
}

// ScrapeConfig holds settings for full-text scraping.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// ScraperAPIKey authenticates against the ScraperAPI proxy.
	ScraperAPIKey string `json:"scraperapi_api_key,omitempty" yaml:"scraperapi_api_key,omitempty"`

	// RequestsPerSecond bounds the scrape rate (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// MinContentLength rejects scraped pages shorter than this (default 200).
	MinContentLength int `json:"min_content_length" yaml:"min_content_length"`
}

// AssistConfig holds settings for the Generative AI stage (query
// optimization, summaries, annotations).
type AssistConfig struct {
	// Model is the AI model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// GeminiAPIKey authenticates against the Gemini API.
	GeminiAPIKey string `json:"gemini_api_key,omitempty" yaml:"gemini_api_key,omitempty"`

	// ExaAPIKey authenticates against the Exa research endpoint.
	ExaAPIKey string `json:"exa_api_key,omitempty" yaml:"exa_api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LibraryBackend selects the library persistence backend.
type LibraryBackend string

const (
	BackendSQLite LibraryBackend = "sqlite"
	BackendRedis  LibraryBackend = "redis"
)

// LibraryConfig holds settings for the personal library store.
type LibraryConfig struct {
	// Backend selects sqlite or redis.
	Backend LibraryBackend `json:"backend" yaml:"backend"`

	// Path is the SQLite database path (sqlite backend).
	Path string `json:"path" yaml:"path"`

	// RedisURL is the connection URL (redis backend), e.g.
	// "redis://:password@localhost:6379/0".
	RedisURL string `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Scrape  ScrapeConfig  `json:"scrape" yaml:"scrape"`
	Assist  AssistConfig  `json:"assist" yaml:"assist"`
	Library LibraryConfig `json:"library" yaml:"library"`
}
