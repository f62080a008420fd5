// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RootFolder is the pseudo-folder id for items saved outside any folder.
const RootFolder = "root"

// Folder groups saved library items.
type Folder struct {
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Created time.Time `json:"created" yaml:"created"`
}

// LibraryItem is a persisted subset of a MergedRecord plus library
// bookkeeping. Summary and Annotation are stored as they were at save time.
type LibraryItem struct {
	ID       string    `json:"id" yaml:"id"`
	FolderID string    `json:"folder_id,omitempty" yaml:"folder_id,omitempty"`
	Added    time.Time `json:"added" yaml:"added"`

	Title          string `json:"title" yaml:"title"`
	URL            string `json:"url" yaml:"url"`
	Query          string `json:"query,omitempty" yaml:"query,omitempty"`
	SourceType     string `json:"source_type,omitempty" yaml:"source_type,omitempty"`
	ContentSnippet string `json:"content_snippet,omitempty" yaml:"content_snippet,omitempty"`
	Summary        string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Annotation     string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Authors        string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year           string `json:"year,omitempty" yaml:"year,omitempty"`
	PDFURL         string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	MainPubURL     string `json:"main_pub_url,omitempty" yaml:"main_pub_url,omitempty"`
	DOI            string `json:"doi,omitempty" yaml:"doi,omitempty"`
	JournalName    string `json:"journal_name,omitempty" yaml:"journal_name,omitempty"`
	Volume         string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Pages          string `json:"pages,omitempty" yaml:"pages,omitempty"`
	Publisher      string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ISSN           string `json:"issn,omitempty" yaml:"issn,omitempty"`
}

// FromRecord builds a LibraryItem from a merged record. The caller assigns
// ID, FolderID, and Added.
func FromRecord(r MergedRecord) LibraryItem {
	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	return LibraryItem{
		Title:          title,
		URL:            r.URL,
		Query:          r.Query,
		SourceType:     r.SourceType,
		ContentSnippet: r.ContentSnippet,
		Summary:        r.Summary,
		Annotation:     r.Annotation,
		Authors:        r.Authors,
		Year:           r.Year,
		PDFURL:         r.PDFURL,
		MainPubURL:     r.MainPubURL,
		DOI:            r.DOI,
		JournalName:    r.JournalName,
		Volume:         r.Volume,
		Pages:          r.Pages,
		Publisher:      r.Publisher,
		ISSN:           r.ISSN,
	}
}

// Record converts a stored item back into a MergedRecord so the citation
// formatter can consume either shape.
func (it LibraryItem) Record() MergedRecord {
	return MergedRecord{
		SearchResult: SearchResult{
			Title:          it.Title,
			URL:            it.URL,
			ContentSnippet: it.ContentSnippet,
			SourceType:     it.SourceType,
			Authors:        it.Authors,
			Year:           it.Year,
			PDFURL:         it.PDFURL,
			MainPubURL:     it.MainPubURL,
			DOI:            it.DOI,
			JournalName:    it.JournalName,
			Volume:         it.Volume,
			Pages:          it.Pages,
			Publisher:      it.Publisher,
			ISSN:           it.ISSN,
		},
		Query:      it.Query,
		Summary:    it.Summary,
		Annotation: it.Annotation,
	}
}
