// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestMergeOneRecordPerURL(t *testing.T) {
	contributions := []Contribution{
		{
			Provider: types.ProviderTavily,
			Results: []types.SearchResult{
				{URL: "https://a.example", Title: "A"},
				{URL: "https://b.example", Title: "B"},
			},
		},
		{
			Provider: types.ProviderGoogleScholar,
			Results: []types.SearchResult{
				{URL: "https://a.example", Title: "A", Year: "2020"},
			},
		},
	}

	records, warnings := Merge("q", contributions, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].URL != "https://a.example" || records[1].URL != "https://b.example" {
		t.Errorf("unexpected URL order: %s, %s", records[0].URL, records[1].URL)
	}
	if records[0].Year != "2020" {
		t.Errorf("scholar year should fill tavily record, got %q", records[0].Year)
	}
}

func TestMergeEmptyNeverOverwrites(t *testing.T) {
	contributions := []Contribution{
		{
			Provider: types.ProviderGoogleScholar,
			Results: []types.SearchResult{
				{URL: "https://a.example", Title: "A", Year: "2020", JournalName: "Journal Y"},
			},
		},
		{
			Provider: types.ProviderExa,
			Results: []types.SearchResult{
				{URL: "https://a.example", Title: "A"},
			},
		},
	}

	records, _ := Merge("q", contributions, nil)
	if records[0].Year != "2020" || records[0].JournalName != "Journal Y" {
		t.Errorf("empty exa fields overwrote scholar fields: %+v", records[0])
	}
}

func TestMergePrecedenceWinsRegardlessOfArrivalOrder(t *testing.T) {
	scholar := Contribution{
		Provider: types.ProviderGoogleScholar,
		Results:  []types.SearchResult{{URL: "https://a.example", Year: "2020"}},
	}
	exa := Contribution{
		Provider: types.ProviderExa,
		Results:  []types.SearchResult{{URL: "https://a.example", Year: "2021"}},
	}

	for name, contributions := range map[string][]Contribution{
		"scholar first": {scholar, exa},
		"exa first":     {exa, scholar},
	} {
		records, _ := Merge("q", contributions, nil)
		// Exa ranks above Scholar in the default precedence, so its year
		// must win no matter which contribution arrived first.
		if records[0].Year != "2021" {
			t.Errorf("%s: year = %q, want 2021", name, records[0].Year)
		}
	}
}

func TestMergeCustomPrecedence(t *testing.T) {
	contributions := []Contribution{
		{Provider: types.ProviderTavily, Results: []types.SearchResult{{URL: "https://a.example", Year: "1999"}}},
		{Provider: types.ProviderExa, Results: []types.SearchResult{{URL: "https://a.example", Year: "2021"}}},
	}

	// Reversed order: tavily outranks exa.
	records, _ := Merge("q", contributions, []string{types.ProviderExa, types.ProviderTavily})
	if records[0].Year != "1999" {
		t.Errorf("custom precedence ignored, year = %q", records[0].Year)
	}
}

func TestMergeLongerTitleAndSnippetWin(t *testing.T) {
	contributions := []Contribution{
		{
			Provider: types.ProviderGoogleScholar,
			Results: []types.SearchResult{{
				URL:            "https://a.example",
				Title:          "Short title",
				ContentSnippet: strings.Repeat("x", 17),
			}},
		},
		{
			Provider: types.ProviderExa,
			Results: []types.SearchResult{{
				URL:            "https://a.example",
				Title:          "A considerably longer title",
				ContentSnippet: strings.Repeat("y", 5),
			}},
		},
	}

	records, _ := Merge("q", contributions, nil)
	if records[0].Title != "A considerably longer title" {
		t.Errorf("longer title should win, got %q", records[0].Title)
	}
	if records[0].ContentSnippet != strings.Repeat("x", 17) {
		t.Errorf("longer snippet should survive a higher-precedence shorter one, got %q", records[0].ContentSnippet)
	}
}

func TestMergeDropsEmptyURLs(t *testing.T) {
	contributions := []Contribution{
		{
			Provider: types.ProviderTavily,
			Results: []types.SearchResult{
				{URL: "", Title: "no URL"},
				{URL: "https://a.example", Title: "A"},
			},
		},
	}

	records, warnings := Merge("q", contributions, nil)
	if len(records) != 1 || records[0].URL != "https://a.example" {
		t.Errorf("empty-URL result should be dropped silently, got %+v", records)
	}
	if len(warnings) != 0 {
		t.Errorf("dropping an empty URL should not warn, got %v", warnings)
	}
}

func TestMergeAllProvidersFail(t *testing.T) {
	contributions := []Contribution{
		{Provider: types.ProviderTavily, Err: errors.New("boom")},
		{Provider: types.ProviderGoogleScholar, Err: errors.New("quota")},
		{Provider: types.ProviderExa, Err: errors.New("timeout")},
	}

	records, warnings := Merge("q", contributions, nil)
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want one per failed provider: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, ":") {
			t.Errorf("warning should name the provider: %q", w)
		}
	}
}

func TestMergeRecordsQueryAndOptimizedQuery(t *testing.T) {
	contributions := []Contribution{
		{
			Provider:       types.ProviderGoogleScholar,
			OptimizedQuery: "keyword query",
			Results:        []types.SearchResult{{URL: "https://a.example"}},
		},
	}

	records, _ := Merge("original question", contributions, nil)
	if records[0].Query != "original question" {
		t.Errorf("Query = %q, want original question", records[0].Query)
	}
	if records[0].OptimizedQuery != "keyword query" {
		t.Errorf("OptimizedQuery = %q, want keyword query", records[0].OptimizedQuery)
	}
}

func TestMergeUnknownProviderSortsLast(t *testing.T) {
	contributions := []Contribution{
		{Provider: "mystery", Results: []types.SearchResult{{URL: "https://a.example", Year: "1990"}}},
		{Provider: types.ProviderTavily, Results: []types.SearchResult{{URL: "https://a.example", Year: "2000"}}},
	}

	records, _ := Merge("q", contributions, nil)
	// An unknown provider is applied after every known one, so its
	// non-empty field wins the overwrite.
	if records[0].Year != "1990" {
		t.Errorf("unknown provider should be applied last, year = %q", records[0].Year)
	}
}
