// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/assist"
	"github.com/pdiddy/research-assistant/internal/scrape"
	"github.com/pdiddy/research-assistant/internal/search"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <session.yaml>",
	Short: "Fetch full text for a session record and summarize it",
	Long: `Scrape fetches the full text of one record in a saved session through
ScraperAPI (PDF link preferred over the landing page), generates a
structured summary and an annotation with Gemini, and writes both back
into the session file. With --text the extracted text is printed instead
and nothing is summarized.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sf, err := search.ReadSessionFile(args[0])
		if err != nil {
			return err
		}

		rank, _ := cmd.Flags().GetInt("rank")
		if rank < 1 || rank > len(sf.Records) {
			return fmt.Errorf("rank %d out of range (session has %d records)", rank, len(sf.Records))
		}
		record := &sf.Records[rank-1]

		target := record.PDFURL
		if target == "" {
			target = record.URL
		}

		scraper := scrape.New(scrapeConfig())
		text, err := scraper.Scrape(cmd.Context(), target)
		if err != nil {
			return fmt.Errorf("scraping %s: %w", target, err)
		}

		if textOnly, _ := cmd.Flags().GetBool("text"); textOnly {
			fmt.Fprintln(os.Stdout, text)
			return nil
		}

		acfg := assistConfig()
		if acfg.GeminiAPIKey == "" {
			return fmt.Errorf("no Gemini API key configured; use --text to print the raw text")
		}
		g := &assist.GeminiBackend{
			APIKey:     acfg.GeminiAPIKey,
			Model:      acfg.Model,
			Client:     &http.Client{Timeout: scraper.Client.Timeout},
			MaxRetries: acfg.MaxRetries,
		}

		summary, err := assist.Summarize(cmd.Context(), g, *record, text)
		if err != nil {
			return fmt.Errorf("summarizing: %w", err)
		}
		record.Summary = summary

		annotation, err := assist.Annotate(cmd.Context(), g, *record, summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: annotation failed: %v\n", err)
		} else {
			record.Annotation = annotation
		}

		if err := search.WriteSessionFile(args[0], sf.Query, sf.Records, sf.Summary.Warnings); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, summary)
		if record.Annotation != "" {
			fmt.Fprintf(os.Stdout, "\nAnnotation:\n%s\n", record.Annotation)
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().Int("rank", 1, "record to scrape (1-based rank in the session)")
	scrapeCmd.Flags().Bool("text", false, "print extracted text without summarizing")

	rootCmd.AddCommand(scrapeCmd)
}
