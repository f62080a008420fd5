// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the merged configuration after defaults, the config file,
environment variables, and secret files are applied. API keys are redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.AppConfig{
			Search:  searchConfig(),
			Scrape:  scrapeConfig(),
			Assist:  assistConfig(),
			Library: libraryConfig(),
		}

		cfg.Search.TavilyAPIKey = redact(cfg.Search.TavilyAPIKey)
		cfg.Search.SerpAPIKey = redact(cfg.Search.SerpAPIKey)
		cfg.Search.ExaAPIKey = redact(cfg.Search.ExaAPIKey)
		cfg.Scrape.ScraperAPIKey = redact(cfg.Scrape.ScraperAPIKey)
		cfg.Assist.GeminiAPIKey = redact(cfg.Assist.GeminiAPIKey)
		cfg.Assist.ExaAPIKey = redact(cfg.Assist.ExaAPIKey)
		cfg.Library.RedisURL = redact(cfg.Library.RedisURL)

		return yaml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "(set)"
}

func init() {
	rootCmd.AddCommand(configCmd)
}
