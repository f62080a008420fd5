// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func openTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := OpenRedis(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisFolderLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestRedis(t)

	f1, err := s.CreateFolder(ctx, "Zoology")
	if err != nil {
		t.Fatal(err)
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
	if folders[0].ID != f2.ID || folders[1].ID != f1.ID {
		t.Errorf("folders not sorted by name: %+v", folders)
	}

	if err := s.DeleteFolder(ctx, f1.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteFolder(ctx, f1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting a missing folder = %v, want ErrNotFound", err)
	}
}

func TestRedisItemLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestRedis(t)

	folder, err := s.CreateFolder(ctx, "Diabetes")
	if err != nil {
		t.Fatal(err)
	}

	item := types.FromRecord(types.MergedRecord{
		SearchResult: types.SearchResult{
			Title:   "Study X",
			URL:     "https://a.example",
			Authors: "Jane Doe",
			Year:    "2020",
		},
		Query: "diabetes",
	})
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
	if got.Title != "Study X" || got.Authors != "Jane Doe" || got.Year != "2020" {
		t.Errorf("stored item lost fields: %+v", got)
	}
	if !got.Added.Equal(saved.Added) {
		t.Errorf("Added round-trip: %v vs %v", got.Added, saved.Added)
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

	items, err = s.Items(ctx, folder.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("folder membership should be cleaned up, got %+v", items)
	}
}

func TestRedisDeleteFolderMovesItemsToRoot(t *testing.T) {
	ctx := context.Background()
	s := openTestRedis(t)

	folder, err := s.CreateFolder(ctx, "Temp")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.SaveItem(ctx, types.LibraryItem{
		Title: "Orphan", URL: "https://a.example", FolderID: folder.ID,
	}); err != nil {
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

func TestRedisRootItems(t *testing.T) {
	ctx := context.Background()
	s := openTestRedis(t)

	folder, err := s.CreateFolder(ctx, "Filed")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveItem(ctx, types.LibraryItem{Title: "filed", FolderID: folder.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveItem(ctx, types.LibraryItem{Title: "loose"}); err != nil {
		t.Fatal(err)
	}

	root, err := s.Items(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(root) != 1 || root[0].Title != "loose" {
		t.Errorf("root listing should exclude filed items, got %+v", root)
	}
}

func TestOpenRedisBadURL(t *testing.T) {
	if _, err := OpenRedis(context.Background(), "not-a-url"); err == nil {
		t.Error("invalid redis URL should be rejected")
	}
}
