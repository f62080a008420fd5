// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtext extracts bibliographic fields from unstructured
// publication text via ordered regex heuristics. Provider summaries have no
// fixed grammar, so every extractor degrades to an empty string instead of
// returning an error; an empty field is expected, a wrong field is the
// failure mode to watch in tests.
package bibtext

import (
	"regexp"
	"strings"
)

var (
	yearRe     = regexp.MustCompile(`\b(\d{4})\b`)
	digitsRe   = regexp.MustCompile(`\b\d+\b`)
	doiRe      = regexp.MustCompile(`10\.\d{4,}/[^\s]+`)
	authorRe   = regexp.MustCompile(`^(.*?)(?: - |\b\d{4}\b|$)`)
	delimRe    = regexp.MustCompile(`[,;:\-()]`)
	volPagesRe = regexp.MustCompile(`(\d+)(?:\((\d+)\))?(?:,\s*|:\s*|\s*)(S?\d+-S?\d+)`)
)

// Fields holds the bibliographic fields recovered from one publication
// summary string. Any subset may be empty.
type Fields struct {
	Year    string
	Volume  string
	Pages   string
	Journal string
}

// ParseSummary runs the extraction heuristics in order over a free-text
// publication summary (e.g. "J. Smith, A. Doe - Nature, 2017, 69(2), S36-S40").
// The authors argument, when non-empty and present in the summary, is
// stripped before volume/pages/journal parsing so author initials are not
// mistaken for numbers or names.
func ParseSummary(summary, authors string) Fields {
	var f Fields
	if strings.TrimSpace(summary) == "" {
		return f
	}

	f.Year = ExtractYear(summary)

	reduced := StripAuthors(summary, authors)
	f.Volume, f.Pages = ExtractVolumePages(reduced, f.Year)
	f.Journal = ExtractJournalName(reduced, f.Year, f.Volume, f.Pages)
	return f
}

// ExtractYear returns the first standalone 4-digit token, or "".
func ExtractYear(s string) string {
	m := yearRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractAuthorPrefix returns the leading author portion of a publication
// summary: the text before the first " - " separator or the first 4-digit
// year, whichever comes first.
func ExtractAuthorPrefix(summary string) string {
	m := authorRe.FindStringSubmatch(summary)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// StripAuthors removes the first literal occurrence of authors from summary
// together with an adjoining " - " or "," separator. When authors is empty
// or absent the summary is returned unchanged.
func StripAuthors(summary, authors string) string {
	if authors == "" || !strings.Contains(summary, authors) {
		return summary
	}
	s := strings.Replace(summary, authors, "", 1)
	s = strings.Trim(s, " -")
	s = strings.Trim(s, ",")
	return strings.TrimSpace(s)
}

// ExtractVolumePages matches "<volume>[(<issue>)]<sep><pages>" where pages
// is "S36-S40" supplement notation or a plain "1-10" range. When the
// combined pattern fails it falls back to the first standalone digit token
// that is not the already-extracted year, which becomes the volume with
// pages left empty.
func ExtractVolumePages(s, year string) (volume, pages string) {
	if m := volPagesRe.FindStringSubmatch(s); m != nil {
		return m[1], m[3]
	}
	for _, tok := range digitsRe.FindAllString(s, -1) {
		if tok != year {
			return tok, ""
		}
	}
	return "", ""
}

// ExtractJournalName strips the year, volume, and pages tokens plus any
// remaining bare digit runs and delimiter characters from the reduced
// summary; what is left, truncated at the first comma, is the journal name
// candidate. Candidates of length <= 3 are noise, not a name.
func ExtractJournalName(s, year, volume, pages string) string {
	if year != "" {
		s = strings.Replace(s, year, "", 1)
	}
	if volume != "" {
		s = strings.Replace(s, volume, "", 1)
	}
	if pages != "" {
		s = strings.Replace(s, pages, "", 1)
	}
	s = digitsRe.ReplaceAllString(s, "")

	// Truncate at the first comma before scrubbing delimiters so a
	// trailing ", Suppl" style tail does not leak into the name.
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = delimRe.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")

	if len(s) <= 3 {
		return ""
	}
	return s
}

// ExtractDOI returns the first DOI-shaped token ("10.<registrant>/<suffix>")
// found in s, or "".
func ExtractDOI(s string) string {
	return doiRe.FindString(s)
}
