// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteFolderLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	f1, err := s.CreateFolder(ctx, "Zoology")
	if err != nil {
		t.Fatal(err)
	}
	if f1.ID == "" || f1.Created.IsZero() {
		t.Errorf("folder missing assigned fields: %+v", f1)
	}
	f2, err := s.CreateFolder(ctx, "astronomy")
	if err != nil {
		t.Fatal(err)
	}

	folders, err := s.Folders(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 2 {
		t.Fatalf("got %d folders, want 2", len(folders))
	}
	// Case-insensitive name order.
	if folders[0].ID != f2.ID || folders[1].ID != f1.ID {
		t.Errorf("folders not sorted by name: %+v", folders)
	}

	if err := s.DeleteFolder(ctx, f1.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteFolder(ctx, f1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting a missing folder = %v, want ErrNotFound", err)
	}

	if _, err := s.CreateFolder(ctx, "   "); err == nil {
		t.Error("blank folder name should be rejected")
	}
}

func TestSQLiteItemLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	folder, err := s.CreateFolder(ctx, "Diabetes")
	if err != nil {
		t.Fatal(err)
	}

	record := types.MergedRecord{
		SearchResult: types.SearchResult{
			Title:   "Study X",
			URL:     "https://a.example",
			Authors: "Jane Doe",
			Year:    "2020",
			DOI:     "10.1371/journal.pone.0001",
		},
		Query:   "diabetes",
		Summary: "a structured summary",
	}

	item := types.FromRecord(record)
	item.FolderID = folder.ID
	saved, err := s.SaveItem(ctx, item)
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" || saved.Added.IsZero() {
		t.Errorf("saved item missing assigned fields: %+v", saved)
	}

	items, err := s.Items(ctx, folder.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items in folder, want 1", len(items))
	}
	got := items[0]
	if got.Title != "Study X" || got.DOI != record.DOI || got.Summary != record.Summary {
		t.Errorf("stored item lost fields: %+v", got)
	}
	if got.Query != "diabetes" {
		t.Errorf("Query = %q", got.Query)
	}

	// Round-trip back into a record for citation.
	if r := got.Record(); r.Authors != "Jane Doe" || r.Year != "2020" {
		t.Errorf("Record() = %+v", r)
	}

	root, err := s.Items(ctx, types.RootFolder)
	if err != nil {
		t.Fatal(err)
	}
	if len(root) != 0 {
		t.Errorf("root should be empty, got %d items", len(root))
	}

	if err := s.DeleteItem(ctx, saved.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteItem(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting a missing item = %v, want ErrNotFound", err)
	}
}

func TestSQLiteDeleteFolderMovesItemsToRoot(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	folder, err := s.CreateFolder(ctx, "Temp")
	if err != nil {
		t.Fatal(err)
	}

	item := types.LibraryItem{Title: "Orphan", URL: "https://a.example", FolderID: folder.ID}
	if _, err := s.SaveItem(ctx, item); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteFolder(ctx, folder.ID); err != nil {
		t.Fatal(err)
	}

	root, err := s.Items(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(root) != 1 || root[0].Title != "Orphan" {
		t.Errorf("folder items should move to root on delete, got %+v", root)
	}
}

func TestSQLiteUntitledDefault(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	saved, err := s.SaveItem(ctx, types.LibraryItem{URL: "https://a.example"})
	if err != nil {
		t.Fatal(err)
	}
	if saved.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", saved.Title)
	}
}

func TestOpenDispatch(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, types.LibraryConfig{
		Backend: types.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "lib.db"),
	})
	if err != nil {
		t.Fatal(err)
	}
	store.Close()

	if _, err := Open(ctx, types.LibraryConfig{Backend: "mongodb"}); err == nil {
		t.Error("unknown backend should be rejected")
	}
}
