// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/cite"
	"github.com/pdiddy/research-assistant/internal/search"
)

var citeCmd = &cobra.Command{
	Use:   "cite <session.yaml>",
	Short: "Format citations for records in a saved session",
	Long: `Cite formats each record in a saved search session in the five supported
styles: MLA, APA, Chicago, Harvard, and Vancouver. Missing bibliographic
fields are omitted rather than failing; a bare title still produces a
citation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sf, err := search.ReadSessionFile(args[0])
		if err != nil {
			return err
		}

		rank, _ := cmd.Flags().GetInt("rank")
		style, _ := cmd.Flags().GetString("style")
		if style != "" && !validStyle(style) {
			return fmt.Errorf("unknown citation style %q (want one of %v)", style, cite.Styles)
		}

		records := sf.Records
		if rank > 0 {
			if rank > len(records) {
				return fmt.Errorf("rank %d out of range (session has %d records)", rank, len(records))
			}
			records = records[rank-1 : rank]
		}

		for i, r := range records {
			set := cite.Format(r)
			if len(records) > 1 {
				fmt.Fprintf(os.Stdout, "[%d] %s\n", i+1, r.Title)
			}
			if style != "" {
				fmt.Fprintln(os.Stdout, set[style])
			} else {
				for _, s := range cite.Styles {
					fmt.Fprintf(os.Stdout, "%-10s %s\n", s+":", set[s])
				}
			}
			fmt.Fprintln(os.Stdout)
		}
		return nil
	},
}

func validStyle(style string) bool {
	for _, s := range cite.Styles {
		if s == style {
			return true
		}
	}
	return false
}

func init() {
	citeCmd.Flags().Int("rank", 0, "cite only the record at this rank (1-based)")
	citeCmd.Flags().String("style", "", "single style to print (MLA, APA, Chicago, Harvard, Vancouver)")

	rootCmd.AddCommand(citeCmd)
}
