// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search fans a query out to external search providers and
// reconciles their results into one record per URL. Providers are
// independent: each failure degrades to a warning while the merge continues
// with whatever succeeded.
package search

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Provider searches a single external API. Each provider (Tavily, Google
// Scholar via SerpApi, Exa, DOAJ articles, DOAJ journals) implements this
// interface and normalizes its native payload into SearchResults.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error)
}

// Run pairs a provider with the (possibly optimized) query string it
// should be called with. Query optimization happens upstream; the search
// stage only carries its output.
type Run struct {
	Provider Provider
	Query    string
}

// Contribution is one provider's outcome for a single search: its results,
// or the error that replaced them. Exactly one of Results/Err is meaningful.
type Contribution struct {
	Provider       string
	OptimizedQuery string
	Results        []types.SearchResult
	Err            error
}

// Search executes all runs concurrently, waits for every provider, and
// merges the contributions under the configured precedence order.
// Precedence is decided by provider identity, never by completion order, so
// concurrent execution cannot change the merged output. The returned
// warnings hold one entry per failing provider; they are also written to w
// as they arrive. query is the original user query recorded on each record.
func Search(ctx context.Context, query string, runs []Run, cfg types.SearchConfig, w io.Writer) ([]types.MergedRecord, []string) {
	ch := make(chan Contribution, len(runs))
	var wg sync.WaitGroup

	for _, run := range runs {
		wg.Add(1)
		go func(run Run) {
			defer wg.Done()
			results, err := run.Provider.Search(ctx, run.Query, cfg)
			ch <- Contribution{
				Provider:       run.Provider.Name(),
				OptimizedQuery: run.Query,
				Results:        results,
				Err:            err,
			}
		}(run)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var contributions []Contribution
	for c := range ch {
		if c.Err != nil {
			fmt.Fprintf(w, "warning: provider %s failed: %v\n", c.Provider, c.Err)
		}
		contributions = append(contributions, c)
	}

	return Merge(query, contributions, cfg.Precedence)
}
