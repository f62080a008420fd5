// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// FormatTable writes merged records as a human-readable table to w.
func FormatTable(records []types.MergedRecord, warnings []string, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
	} else {
		fmt.Fprintf(w, "%-4s  %-55s  %-22s  %-4s  %-24s  %s\n",
			"Rank", "Title", "Authors", "Year", "Source", "URL")
		fmt.Fprintln(w, strings.Repeat("-", 140))

		for i, r := range records {
			fmt.Fprintf(w, "%-4d  %-55s  %-22s  %-4s  %-24s  %s\n",
				i+1,
				truncate(r.Title, 55),
				truncate(r.Authors, 22),
				r.Year,
				truncate(r.SourceType, 24),
				r.URL)
		}
		fmt.Fprintf(w, "\n%d results\n", len(records))
	}

	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

// FormatJSON writes merged records as indented JSON to w.
func FormatJSON(records []types.MergedRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// truncate shortens s to max display runes, never splitting a multi-byte
// character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
