// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"sort"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Merge reconciles per-provider contributions into one MergedRecord per
// distinct URL. Contributions are processed in precedence order (provider
// identity, not arrival order), so the output is deterministic regardless
// of how the providers were scheduled. Failed contributions become warning
// strings, one per provider; results with an empty URL are dropped
// silently. When every provider fails the record slice is empty, the
// warning list is complete, and Merge itself still does not fail.
func Merge(query string, contributions []Contribution, precedence []string) ([]types.MergedRecord, []string) {
	ordered := orderByPrecedence(contributions, precedence)

	byURL := make(map[string]*types.MergedRecord)
	var urls []string // first-seen order, for deterministic output
	var warnings []string

	for _, c := range ordered {
		if c.Err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", c.Provider, c.Err))
			continue
		}
		for _, r := range c.Results {
			if r.URL == "" {
				continue
			}
			rec, ok := byURL[r.URL]
			if !ok {
				rec = &types.MergedRecord{
					SearchResult:   r,
					Query:          query,
					OptimizedQuery: c.OptimizedQuery,
				}
				byURL[r.URL] = rec
				urls = append(urls, r.URL)
				continue
			}
			mergeRecord(rec, r, c.OptimizedQuery)
		}
	}

	records := make([]types.MergedRecord, 0, len(urls))
	for _, u := range urls {
		records = append(records, *byURL[u])
	}
	return records, warnings
}

// mergeRecord folds src into dst. A non-empty incoming value replaces the
// stored one; an empty incoming value never erases anything. Title and
// snippet instead keep the longer string. This is a heuristic: a long
// off-topic fragment can beat a concise accurate title. Summary and
// annotation belong to the AI stage and are never touched here.
func mergeRecord(dst *types.MergedRecord, src types.SearchResult, optimizedQuery string) {
	longer(&dst.Title, src.Title)
	longer(&dst.ContentSnippet, src.ContentSnippet)

	fill(&dst.SourceType, src.SourceType)
	fill(&dst.Authors, src.Authors)
	fill(&dst.Year, src.Year)
	fill(&dst.PDFURL, src.PDFURL)
	fill(&dst.MainPubURL, src.MainPubURL)
	fill(&dst.DOI, src.DOI)
	fill(&dst.JournalName, src.JournalName)
	fill(&dst.Volume, src.Volume)
	fill(&dst.Pages, src.Pages)
	fill(&dst.Publisher, src.Publisher)
	fill(&dst.ISSN, src.ISSN)
	fill(&dst.OptimizedQuery, optimizedQuery)
}

// fill overwrites dst only when src is non-empty.
func fill(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// longer keeps whichever of dst/src is longer.
func longer(dst *string, src string) {
	if len(src) > len(*dst) {
		*dst = src
	}
}

// orderByPrecedence sorts contributions by position in the precedence list.
// Providers absent from the list keep their relative input order and sort
// after every known provider, so an unexpected provider can only refine
// records, not be silently dropped.
func orderByPrecedence(contributions []Contribution, precedence []string) []Contribution {
	if len(precedence) == 0 {
		precedence = types.DefaultPrecedence
	}
	rank := make(map[string]int, len(precedence))
	for i, p := range precedence {
		rank[p] = i
	}

	ordered := make([]Contribution, len(contributions))
	copy(ordered, contributions)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, iok := rank[ordered[i].Provider]
		rj, jok := rank[ordered[j].Provider]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		default:
			return false
		}
	})
	return ordered
}
