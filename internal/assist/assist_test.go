// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// stubGenerator returns a fixed response or error.
type stubGenerator struct {
	out        string
	err        error
	lastPrompt string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.out, g.err
}

func TestOptimizeQueryScrubsModelOutput(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"quotes removed", `"machine learning" diabetes`, "machine learning diabetes"},
		{"commas become spaces", "metformin, longevity, aging", "metformin longevity aging"},
		{"whitespace collapsed", "  metformin \n longevity  ", "metformin longevity"},
		{"clean output kept", "metformin longevity", "metformin longevity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGenerator{out: tt.out}
			got, err := OptimizeQuery(context.Background(), g, "raw query")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("OptimizeQuery scrubbed to %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptimizeQueryFallsBackOnError(t *testing.T) {
	g := &stubGenerator{err: errors.New("quota")}
	got, err := OptimizeQuery(context.Background(), g, "original question")
	if err == nil {
		t.Error("model error should be returned for the caller to warn about")
	}
	if got != "original question" {
		t.Errorf("fallback = %q, want the raw query", got)
	}
}

func TestOptimizeQueryEmptyModelOutput(t *testing.T) {
	g := &stubGenerator{out: "   "}
	got, err := OptimizeQuery(context.Background(), g, "original question")
	if err != nil {
		t.Fatal(err)
	}
	if got != "original question" {
		t.Errorf("empty model output should fall back to the raw query, got %q", got)
	}
}

func TestOptimizeDirectoryQueryRemovesCommas(t *testing.T) {
	g := &stubGenerator{out: "climate, change, agriculture"}
	got, err := OptimizeDirectoryQuery(context.Background(), g, "raw")
	if err != nil {
		t.Fatal(err)
	}
	if got != "climate change agriculture" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(g.lastPrompt, "DOAJ") {
		t.Error("directory prompt should mention the directory use case")
	}
}

func TestSummarize(t *testing.T) {
	r := types.MergedRecord{
		SearchResult: types.SearchResult{
			Title:       "Study X",
			Authors:     "Jane Doe",
			Year:        "2020",
			JournalName: "Journal Y",
			DOI:         "10.1371/journal.pone.0001",
		},
	}

	g := &stubGenerator{out: "  **1. Full Citation of Article**\n...  "}
	got, err := Summarize(context.Background(), g, r, "article text")
	if err != nil {
		t.Fatal(err)
	}
	if got != "**1. Full Citation of Article**\n..." {
		t.Errorf("summary should be trimmed, got %q", got)
	}

	for _, want := range []string{"article text", "Jane Doe", "(2020)", "DOI:10.1371/journal.pone.0001"} {
		if !strings.Contains(g.lastPrompt, want) {
			t.Errorf("summary prompt missing %q", want)
		}
	}
}

func TestSummarizeTruncatesLongContent(t *testing.T) {
	g := &stubGenerator{out: "summary"}
	long := strings.Repeat("x", maxSummaryInput+500)
	if _, err := Summarize(context.Background(), g, types.MergedRecord{}, long); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(g.lastPrompt, strings.Repeat("x", maxSummaryInput+1)) {
		t.Error("content should be capped before prompting")
	}
	if !strings.Contains(g.lastPrompt, "Not available in snippet.") {
		t.Error("citation line should degrade when no fields are known")
	}
}

func TestAnnotate(t *testing.T) {
	r := types.MergedRecord{
		SearchResult: types.SearchResult{Title: "Study X", URL: "https://a.example"},
		Query:        "metformin longevity",
	}

	g := &stubGenerator{out: "An annotation."}
	got, err := Annotate(context.Background(), g, r, "the summary body")
	if err != nil {
		t.Fatal(err)
	}
	if got != "An annotation." {
		t.Errorf("got %q", got)
	}
	for _, want := range []string{"Study X", "the summary body", "metformin longevity"} {
		if !strings.Contains(g.lastPrompt, want) {
			t.Errorf("annotation prompt missing %q", want)
		}
	}
	// Authors and Year are unknown here and must not leave empty labels.
	if strings.Contains(g.lastPrompt, "Authors: \n") || strings.Contains(g.lastPrompt, "Year: \n") {
		t.Error("empty bibliographic labels leaked into the prompt")
	}
}

func TestAnnotateError(t *testing.T) {
	g := &stubGenerator{err: errors.New("blocked")}
	if _, err := Annotate(context.Background(), g, types.MergedRecord{}, "s"); err == nil {
		t.Error("model error should propagate")
	}
}
