// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-assistant CLI. It wires
// the search, cite, scrape, report, and library stages into subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/secrets"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the research-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "research-assistant",
	Short: "Academic search, citation, and library tooling",
	Long: `research-assistant searches academic sources (Tavily, Google Scholar,
Exa, DOAJ), merges the results into one record per URL, and formats
citations in MLA, APA, Chicago, Harvard, and Vancouver styles.

Results can be scraped for full text, summarized, annotated, and saved
into a folder-organized library backed by SQLite or Redis.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-assistant.yaml or ~/.config/research-assistant/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-assistant"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_ASSISTANT")
	viper.AutomaticEnv()

	viper.SetDefault("search.max_results", 7)
	viper.SetDefault("search.timeout", "30s")
	viper.SetDefault("search.user_agent", "research-assistant/"+version)
	viper.SetDefault("scrape.requests_per_second", 1.0)
	viper.SetDefault("scrape.min_content_length", 200)
	viper.SetDefault("assist.model", "gemini-1.5-flash")
	viper.SetDefault("assist.max_retries", 3)
	viper.SetDefault("library.backend", string(types.BackendSQLite))
	viper.SetDefault("library.path", "library.db")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig assembles the search stage config from viper and secrets.
func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		MaxResults:        viper.GetInt("search.max_results"),
		TavilyAPIKey:      secrets.Value(loadedSecrets, "tavily-api-key", viper.GetString("search.tavily_api_key")),
		SerpAPIKey:        secrets.Value(loadedSecrets, "serpapi-api-key", viper.GetString("search.serpapi_api_key")),
		ExaAPIKey:         secrets.Value(loadedSecrets, "exa-api-key", viper.GetString("search.exa_api_key")),
		Precedence:        viper.GetStringSlice("search.precedence"),
		EnableTavily:      true,
		EnableScholar:     true,
		EnableExa:         true,
		EnableDOAJ:        true,
		EnableDOAJJournal: true,
	}
}

// scrapeConfig assembles the scrape stage config from viper and secrets.
func scrapeConfig() types.ScrapeConfig {
	return types.ScrapeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: viper.GetString("search.user_agent"),
		},
		ScraperAPIKey:     secrets.Value(loadedSecrets, "scraperapi-api-key", viper.GetString("scrape.scraperapi_api_key")),
		RequestsPerSecond: viper.GetFloat64("scrape.requests_per_second"),
		MinContentLength:  viper.GetInt("scrape.min_content_length"),
	}
}

// assistConfig assembles the Gemini/Exa assist config from viper and secrets.
func assistConfig() types.AssistConfig {
	return types.AssistConfig{
		Model:        viper.GetString("assist.model"),
		GeminiAPIKey: secrets.Value(loadedSecrets, "gemini-api-key", viper.GetString("assist.gemini_api_key")),
		ExaAPIKey:    secrets.Value(loadedSecrets, "exa-api-key", viper.GetString("search.exa_api_key")),
		MaxRetries:   viper.GetInt("assist.max_retries"),
	}
}

// libraryConfig assembles the library backend config from viper and secrets.
func libraryConfig() types.LibraryConfig {
	return types.LibraryConfig{
		Backend:  types.LibraryBackend(viper.GetString("library.backend")),
		Path:     viper.GetString("library.path"),
		RedisURL: secrets.Value(loadedSecrets, "redis-url", viper.GetString("library.redis_url")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
