// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assist wraps the Generative AI calls around the search pipeline:
// query optimization before the providers run, and summaries / annotations
// for individual records after. The model is a collaborator, not part of
// the merge logic: every helper here degrades to its input or an error the
// caller can treat as a warning.
package assist

import (
	"context"
	"regexp"
	"strings"
)

// Generator abstracts the Generative AI API so tests can supply a mock.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var spaceRe = regexp.MustCompile(`\s+`)

// OptimizeQuery rewrites a natural-language research query into a concise
// keyword query suitable for Google Scholar, Tavily, and Exa. On any model
// error the raw query is returned along with the error so the caller can
// proceed with a warning. The model sometimes quotes or comma-separates
// keywords despite instructions; its output is scrubbed either way.
func OptimizeQuery(ctx context.Context, g Generator, query string) (string, error) {
	out, err := g.Generate(ctx, scholarOptimizePrompt(query))
	if err != nil {
		return query, err
	}

	out = strings.ReplaceAll(out, `"`, "")
	out = strings.ReplaceAll(out, ",", " ")
	out = spaceRe.ReplaceAllString(strings.TrimSpace(out), " ")
	if out == "" {
		return query, nil
	}
	return out, nil
}

// OptimizeDirectoryQuery is OptimizeQuery tuned for the DOAJ directory,
// which matches best on a plain space-separated keyword list.
func OptimizeDirectoryQuery(ctx context.Context, g Generator, query string) (string, error) {
	out, err := g.Generate(ctx, directoryOptimizePrompt(query))
	if err != nil {
		return query, err
	}

	out = strings.ReplaceAll(out, `"`, "")
	out = strings.ReplaceAll(out, ",", "")
	out = spaceRe.ReplaceAllString(strings.TrimSpace(out), " ")
	if out == "" {
		return query, nil
	}
	return out, nil
}
