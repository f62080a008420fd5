// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/assist"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search academic sources and merge the results",
	Long: `Search fans the query out to Tavily, Google Scholar (SerpApi), Exa, and
the DOAJ article and journal directories, then merges the results into one
record per URL. Higher-precedence sources win conflicting fields; empty
fields never overwrite filled ones.

When a Gemini API key is configured the query is first rewritten into a
keyword query tuned per source. Use --session to save the merged records
for later cite and library commands.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		cfg := searchConfig()
		if n, _ := cmd.Flags().GetInt("max-results"); n > 0 {
			cfg.MaxResults = n
		}

		client := &http.Client{Timeout: cfg.Timeout}

		scholarQuery := query
		directoryQuery := query
		if raw, _ := cmd.Flags().GetBool("raw-query"); !raw {
			if acfg := assistConfig(); acfg.GeminiAPIKey != "" {
				g := &assist.GeminiBackend{
					APIKey:     acfg.GeminiAPIKey,
					Model:      acfg.Model,
					Client:     client,
					MaxRetries: acfg.MaxRetries,
				}
				var err error
				if scholarQuery, err = assist.OptimizeQuery(cmd.Context(), g, query); err != nil {
					fmt.Fprintf(os.Stderr, "warning: query optimization failed: %v\n", err)
				}
				if directoryQuery, err = assist.OptimizeDirectoryQuery(cmd.Context(), g, query); err != nil {
					fmt.Fprintf(os.Stderr, "warning: directory query optimization failed: %v\n", err)
				}
			}
		}

		runs := providerRuns(cfg, client, scholarQuery, directoryQuery)
		if len(runs) == 0 {
			return fmt.Errorf("no search providers enabled (check API keys)")
		}

		records, warnings := search.Search(cmd.Context(), query, runs, cfg, os.Stderr)

		if path, _ := cmd.Flags().GetString("session"); path != "" {
			if err := search.WriteSessionFile(path, query, records, warnings); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", path)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return search.FormatJSON(records, os.Stdout)
		}
		search.FormatTable(records, nil, os.Stdout)
		return nil
	},
}

// providerRuns builds the provider fan-out. Keyed providers are skipped
// when their key is missing; DOAJ needs no key.
func providerRuns(cfg types.SearchConfig, client *http.Client, scholarQuery, directoryQuery string) []search.Run {
	var runs []search.Run
	if cfg.EnableTavily && cfg.TavilyAPIKey != "" {
		runs = append(runs, search.Run{
			Provider: &search.TavilyProvider{Client: client, APIKey: cfg.TavilyAPIKey},
			Query:    scholarQuery,
		})
	}
	if cfg.EnableScholar && cfg.SerpAPIKey != "" {
		runs = append(runs, search.Run{
			Provider: &search.ScholarProvider{Client: client, APIKey: cfg.SerpAPIKey},
			Query:    scholarQuery,
		})
	}
	if cfg.EnableExa && cfg.ExaAPIKey != "" {
		runs = append(runs, search.Run{
			Provider: &search.ExaProvider{Client: client, APIKey: cfg.ExaAPIKey},
			Query:    scholarQuery,
		})
	}
	if cfg.EnableDOAJ {
		runs = append(runs, search.Run{
			Provider: &search.DOAJArticleProvider{Client: client},
			Query:    directoryQuery,
		})
	}
	if cfg.EnableDOAJJournal {
		runs = append(runs, search.Run{
			Provider: &search.DOAJJournalProvider{Client: client},
			Query:    directoryQuery,
		})
	}
	return runs
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum results per provider (default from config)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("raw-query", false, "skip AI query optimization")
	searchCmd.Flags().String("session", "", "save merged records to a YAML session file")

	rootCmd.AddCommand(searchCmd)
}
