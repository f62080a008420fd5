// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtext

import (
	"regexp"
	"strings"
)

var authorSplitRe = regexp.MustCompile(`,\s*| and | & `)

// Name is a parsed author name. First may be empty for single-word names.
type Name struct {
	Last  string
	First string
}

// SplitAuthors splits a raw provider author string on commas, "and", and
// "&" and parses each token. The final space-separated word is the last
// name and the rest joined are the first name(s). A single-word token is
// last-name-only.
func SplitAuthors(authors string) []Name {
	if strings.TrimSpace(authors) == "" {
		return nil
	}

	var names []Name
	for _, raw := range authorSplitRe.Split(authors, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) == 1 {
			names = append(names, Name{Last: parts[0]})
			continue
		}
		names = append(names, Name{
			Last:  parts[len(parts)-1],
			First: strings.Join(parts[:len(parts)-1], " "),
		})
	}
	return names
}

// Initials returns the upper-cased first letter of each word in first,
// joined with sep after each initial ("Jane Q" -> "J.Q." with sep ".").
func (n Name) Initials(sep string) string {
	var b strings.Builder
	for _, part := range strings.Fields(n.First) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
		b.WriteString(sep)
	}
	return b.String()
}
