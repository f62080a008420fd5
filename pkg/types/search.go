// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research-assistant
// pipeline: provider search results, merged records, saved library items,
// and per-stage configuration.
package types

// Provider identifiers, in default merge precedence order. Later providers
// are treated as more authoritative for bibliographic metadata.
const (
	ProviderTavily        = "tavily"
	ProviderGoogleScholar = "google_scholar"
	ProviderExa           = "exa"
	ProviderDOAJArticle   = "doaj_article"
	ProviderDOAJJournal   = "doaj_journal"
)

// DefaultPrecedence is the provider-identity order used to resolve field
// conflicts during merge. It mirrors the order the providers are invoked in.
var DefaultPrecedence = []string{
	ProviderTavily,
	ProviderGoogleScholar,
	ProviderExa,
	ProviderDOAJArticle,
	ProviderDOAJJournal,
}

// Source type labels carried on results so the caller can tell where a
// record came from.
const (
	SourceWebsite        = "Website"
	SourceScholarArticle = "Google Scholar Article"
	SourceExaSearch      = "Exa.ai Search"
	SourceDOAJArticle    = "DOAJ Article"
	SourceDOAJJournal    = "DOAJ Journal"
)

// SearchResult is one hit from one provider, normalized into the common
// shape. Bibliographic fields are raw strings because provider formats vary;
// the merge and citation stages tolerate any of them being empty. A result
// with an empty URL is discarded before merging.
type SearchResult struct {
	Title          string `json:"title" yaml:"title"`
	URL            string `json:"url" yaml:"url"`
	ContentSnippet string `json:"content_snippet" yaml:"content_snippet"`
	SourceType     string `json:"source_type" yaml:"source_type"`

	// Authors is the raw author string as the provider supplied it
	// (comma/and-separated, initials or full names).
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is a 4-digit string when known; may be empty or "N.D.".
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	PDFURL      string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	MainPubURL  string `json:"main_pub_url,omitempty" yaml:"main_pub_url,omitempty"`
	DOI         string `json:"doi,omitempty" yaml:"doi,omitempty"`
	JournalName string `json:"journal_name,omitempty" yaml:"journal_name,omitempty"`
	Volume      string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Pages       string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Publisher and ISSN are populated by the journal directory only.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ISSN      string `json:"issn,omitempty" yaml:"issn,omitempty"`
}

// MergedRecord is the reconciled representation of one URL across all
// providers for one query. Summary and Annotation are filled by the AI
// stage after the merge; the merger never writes them.
type MergedRecord struct {
	SearchResult `yaml:",inline"`

	// Query is the original user query.
	Query string `json:"query" yaml:"query"`

	// OptimizedQuery is the provider-tuned query that fetched this record.
	OptimizedQuery string `json:"optimized_query,omitempty" yaml:"optimized_query,omitempty"`

	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// CitationSet maps a citation style name (MLA, APA, Chicago, Harvard,
// Vancouver) to a formatted citation string. Recomputed on demand, never
// stored.
type CitationSet map[string]string
