// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite formats merged records as bibliographic citations in five
// styles. Formatting is pure and total: missing fields are omitted and the
// output degrades to a shorter string, never an error. The output is
// best-effort, not style-guide compliant down to edge cases.
package cite

import (
	"strings"

	"github.com/pdiddy/research-assistant/internal/bibtext"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Style names, in display order.
const (
	StyleMLA       = "MLA"
	StyleAPA       = "APA"
	StyleChicago   = "Chicago"
	StyleHarvard   = "Harvard"
	StyleVancouver = "Vancouver"
)

// Styles lists all supported citation styles.
var Styles = []string{StyleMLA, StyleAPA, StyleChicago, StyleHarvard, StyleVancouver}

// Format renders one merged record in every supported style.
func Format(r types.MergedRecord) types.CitationSet {
	names := bibtext.SplitAuthors(r.Authors)

	mla := formatMLA(names, r)
	return types.CitationSet{
		StyleMLA:       mla,
		StyleAPA:       formatAPA(names, r),
		StyleChicago:   mla, // Chicago bibliography entries share the MLA shape here.
		StyleHarvard:   formatHarvard(names, r),
		StyleVancouver: formatVancouver(names, r),
	}
}

// joinParts concatenates non-empty segments with single spaces.
func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// fullName renders "Last, First" collapsing to "Last" when First is empty.
func fullName(n bibtext.Name) string {
	if n.First == "" {
		return n.Last
	}
	return n.Last + ", " + n.First
}

// initialName renders "Last, F.M." collapsing to "Last" when First is empty.
func initialName(n bibtext.Name) string {
	ini := n.Initials(".")
	if ini == "" {
		return n.Last
	}
	return n.Last + ", " + ini
}

// AuthorsMLA renders the author list in MLA bibliography form: full name
// for one author, "Last, First, and First Last" for two, "et al." beyond.
func AuthorsMLA(names []bibtext.Name) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fullName(names[0])
	case 2:
		second := strings.TrimSpace(names[1].First + " " + names[1].Last)
		return fullName(names[0]) + ", and " + second
	default:
		return fullName(names[0]) + ", et al."
	}
}

// AuthorsAPA renders initialed surnames joined with "&", truncating three
// or more authors to "et al.".
func AuthorsAPA(names []bibtext.Name) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return initialName(names[0])
	case 2:
		return initialName(names[0]) + " & " + initialName(names[1])
	default:
		return initialName(names[0]) + " et al."
	}
}

// AuthorsHarvard is AuthorsAPA with "and" as the pair separator.
func AuthorsHarvard(names []bibtext.Name) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return initialName(names[0])
	case 2:
		return initialName(names[0]) + " and " + initialName(names[1])
	default:
		return initialName(names[0]) + " et al."
	}
}

// AuthorsVancouver renders "Last FI" (no periods) for every author,
// comma-joined with no truncation.
func AuthorsVancouver(names []bibtext.Name) string {
	var parts []string
	for _, n := range names {
		name := strings.TrimSpace(n.Last + " " + n.Initials(""))
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// formatMLA: Authors. "Title." Journal Volume (Year): Pages.
func formatMLA(names []bibtext.Name, r types.MergedRecord) string {
	authors := AuthorsMLA(names)
	// The et al. form already ends with a period.
	if authors != "" && !strings.HasSuffix(authors, ".") {
		authors += "."
	}

	var title string
	if r.Title != "" {
		title = `"` + r.Title + `."`
	}

	var tail string
	if r.JournalName != "" {
		tail = r.JournalName
	}
	if r.Volume != "" {
		tail += " " + r.Volume
	}
	if r.Year != "" {
		tail += " (" + r.Year + ")"
	}
	if r.Pages != "" {
		tail += ": " + r.Pages
	}
	tail = strings.TrimSpace(tail)
	if tail != "" {
		tail += "."
	}

	return joinParts(authors, title, tail)
}

// formatAPA: Authors (Year). Title. Journal, Volume, Pages.
func formatAPA(names []bibtext.Name, r types.MergedRecord) string {
	var year string
	if r.Year != "" {
		year = "(" + r.Year + ")."
	}
	var title string
	if r.Title != "" {
		title = r.Title + "."
	}

	var tail string
	if r.JournalName != "" {
		tail = r.JournalName
	}
	if r.Volume != "" {
		tail += ", " + r.Volume
	}
	if r.Pages != "" {
		tail += ", " + r.Pages
	}
	tail = strings.Trim(tail, ", ")
	if tail != "" {
		tail += "."
	}

	return joinParts(AuthorsAPA(names), year, title, tail)
}

// formatHarvard: Authors Year. Title. Journal, Volume, pp.Pages.
func formatHarvard(names []bibtext.Name, r types.MergedRecord) string {
	var year string
	if r.Year != "" {
		year = r.Year + "."
	}
	var title string
	if r.Title != "" {
		title = r.Title + "."
	}

	var tail string
	if r.JournalName != "" {
		tail = r.JournalName
	}
	if r.Volume != "" {
		tail += ", " + r.Volume
	}
	if r.Pages != "" {
		tail += ", pp." + r.Pages
	}
	tail = strings.Trim(tail, ", ")
	if tail != "" {
		tail += "."
	}

	return joinParts(AuthorsHarvard(names), year, title, tail)
}

// formatVancouver: Authors. Title. Journal. Year Volume:Pages.
// The journal name is rendered without spaces or hyphens as a crude stand-in
// for Vancouver journal abbreviations.
func formatVancouver(names []bibtext.Name, r types.MergedRecord) string {
	var parts []string
	if a := AuthorsVancouver(names); a != "" {
		parts = append(parts, a+".")
	}
	if r.Title != "" {
		parts = append(parts, r.Title+".")
	}
	if r.JournalName != "" {
		j := strings.NewReplacer(" ", "", "-", "").Replace(r.JournalName)
		parts = append(parts, j+".")
	}

	tail := r.Year
	if r.Volume != "" {
		tail = strings.TrimSpace(tail + " " + r.Volume)
	}
	if r.Pages != "" {
		tail += ":" + r.Pages
	}
	if tail != "" {
		parts = append(parts, tail+".")
	}

	return strings.Join(parts, " ")
}
