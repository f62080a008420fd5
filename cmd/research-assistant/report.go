// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/assist"
)

var reportCmd = &cobra.Command{
	Use:   "report <query>",
	Short: "Generate a deep research report with Exa",
	Long: `Report sends the query to the Exa research model, which browses sources
itself and returns a synthesized report with inline citations. Reports
take minutes, not seconds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acfg := assistConfig()
		if acfg.ExaAPIKey == "" {
			return fmt.Errorf("no Exa API key configured")
		}

		client := &http.Client{Timeout: 10 * time.Minute}
		report, err := assist.ResearchReport(cmd.Context(), client, acfg.ExaAPIKey, args[0])
		if err != nil {
			return fmt.Errorf("generating report: %w", err)
		}

		fmt.Fprintln(os.Stdout, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
