// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"

	"github.com/pdiddy/research-assistant/internal/bibtext"
	"github.com/pdiddy/research-assistant/pkg/types"
)

func record(authors string) types.MergedRecord {
	return types.MergedRecord{
		SearchResult: types.SearchResult{
			Title:       "Study X",
			Authors:     authors,
			Year:        "2020",
			JournalName: "Journal Y",
			Volume:      "12",
			Pages:       "34-56",
		},
	}
}

func TestFormatAllStyles(t *testing.T) {
	set := Format(record("Jane Doe, John Smith"))

	want := map[string]string{
		StyleMLA:       `Doe, Jane, and John Smith. "Study X." Journal Y 12 (2020): 34-56.`,
		StyleAPA:       "Doe, J. & Smith, J. (2020). Study X. Journal Y, 12, 34-56.",
		StyleChicago:   `Doe, Jane, and John Smith. "Study X." Journal Y 12 (2020): 34-56.`,
		StyleHarvard:   "Doe, J. and Smith, J. 2020. Study X. Journal Y, 12, pp.34-56.",
		StyleVancouver: "Doe J, Smith J. Study X. JournalY. 2020 12:34-56.",
	}
	for _, style := range Styles {
		if set[style] != want[style] {
			t.Errorf("%s citation = %q, want %q", style, set[style], want[style])
		}
	}
}

func TestFormatSingleAuthor(t *testing.T) {
	set := Format(record("Jane Doe"))

	if got, want := set[StyleMLA], `Doe, Jane. "Study X." Journal Y 12 (2020): 34-56.`; got != want {
		t.Errorf("MLA = %q, want %q", got, want)
	}
	if got, want := set[StyleAPA], "Doe, J. (2020). Study X. Journal Y, 12, 34-56."; got != want {
		t.Errorf("APA = %q, want %q", got, want)
	}
}

func TestFormatManyAuthors(t *testing.T) {
	set := Format(record("Jane Doe, John Smith, Alice Jones, Bob Brown"))

	// MLA, APA, and Harvard truncate to et al.; Vancouver lists everyone.
	if !strings.HasPrefix(set[StyleMLA], "Doe, Jane, et al.") {
		t.Errorf("MLA should truncate to et al., got %q", set[StyleMLA])
	}
	if strings.Contains(set[StyleMLA], "..") {
		t.Errorf("MLA et al. form should not double its period, got %q", set[StyleMLA])
	}
	if !strings.HasPrefix(set[StyleAPA], "Doe, J. et al.") {
		t.Errorf("APA should truncate to et al., got %q", set[StyleAPA])
	}
	if !strings.HasPrefix(set[StyleHarvard], "Doe, J. et al.") {
		t.Errorf("Harvard should truncate to et al., got %q", set[StyleHarvard])
	}
	if !strings.HasPrefix(set[StyleVancouver], "Doe J, Smith J, Jones A, Brown B.") {
		t.Errorf("Vancouver should list all authors, got %q", set[StyleVancouver])
	}
}

func TestFormatMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		r     types.MergedRecord
		style string
		want  string
	}{
		{
			name:  "title only MLA",
			r:     types.MergedRecord{SearchResult: types.SearchResult{Title: "Study X"}},
			style: StyleMLA,
			want:  `"Study X."`,
		},
		{
			name:  "title only APA",
			r:     types.MergedRecord{SearchResult: types.SearchResult{Title: "Study X"}},
			style: StyleAPA,
			want:  "Study X.",
		},
		{
			name: "no pages Harvard",
			r: types.MergedRecord{SearchResult: types.SearchResult{
				Title: "Study X", Authors: "Jane Doe", Year: "2020", JournalName: "Journal Y",
			}},
			style: StyleHarvard,
			want:  "Doe, J. 2020. Study X. Journal Y.",
		},
		{
			name: "no journal Vancouver",
			r: types.MergedRecord{SearchResult: types.SearchResult{
				Title: "Study X", Authors: "Jane Doe", Year: "2020",
			}},
			style: StyleVancouver,
			want:  "Doe J. Study X. 2020.",
		},
		{
			name:  "empty record",
			r:     types.MergedRecord{},
			style: StyleAPA,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.r)[tt.style]; got != tt.want {
				t.Errorf("%s = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestVancouverJournalStripping(t *testing.T) {
	r := record("Jane Doe")
	r.JournalName = "New England Journal of Medicine"
	got := Format(r)[StyleVancouver]
	if !strings.Contains(got, "NewEnglandJournalofMedicine.") {
		t.Errorf("Vancouver journal should drop spaces, got %q", got)
	}
}

func TestAuthorListRenderers(t *testing.T) {
	names := []bibtext.Name{
		{Last: "Doe", First: "Jane"},
		{Last: "Smith", First: "John"},
	}
	if got, want := AuthorsMLA(names), "Doe, Jane, and John Smith"; got != want {
		t.Errorf("AuthorsMLA = %q, want %q", got, want)
	}
	if got, want := AuthorsAPA(names), "Doe, J. & Smith, J."; got != want {
		t.Errorf("AuthorsAPA = %q, want %q", got, want)
	}
	if got, want := AuthorsHarvard(names), "Doe, J. and Smith, J."; got != want {
		t.Errorf("AuthorsHarvard = %q, want %q", got, want)
	}
	if got, want := AuthorsVancouver(names), "Doe J, Smith J"; got != want {
		t.Errorf("AuthorsVancouver = %q, want %q", got, want)
	}
	if got := AuthorsMLA(nil); got != "" {
		t.Errorf("AuthorsMLA(nil) = %q, want empty", got)
	}
}
