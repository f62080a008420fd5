// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists saved search results into a personal library
// organized by folders. Two backends implement the same Store interface: a
// SQLite file for single-machine use and Redis for hosted deployments.
package library

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ErrNotFound is returned when a folder or item id does not exist.
var ErrNotFound = errors.New("not found")

// Store is the library persistence contract. Implementations assign the ID
// and Added/Created timestamps when saving.
type Store interface {
	// CreateFolder creates a folder with the given (non-blank) name.
	CreateFolder(ctx context.Context, name string) (types.Folder, error)

	// Folders lists all folders sorted by name, case-insensitively.
	Folders(ctx context.Context) ([]types.Folder, error)

	// DeleteFolder removes a folder; its items move to the root.
	DeleteFolder(ctx context.Context, id string) error

	// SaveItem stores an item. FolderID may be empty or types.RootFolder
	// for the root. The stored item (with assigned ID and timestamp) is
	// returned.
	SaveItem(ctx context.Context, item types.LibraryItem) (types.LibraryItem, error)

	// Items lists items in a folder (types.RootFolder or "" for the
	// root), newest first.
	Items(ctx context.Context, folderID string) ([]types.LibraryItem, error)

	// DeleteItem removes an item by id.
	DeleteItem(ctx context.Context, id string) error

	Close() error
}

// Open constructs the configured backend.
func Open(ctx context.Context, cfg types.LibraryConfig) (Store, error) {
	switch cfg.Backend {
	case types.BackendRedis:
		return OpenRedis(ctx, cfg.RedisURL)
	case types.BackendSQLite, "":
		path := cfg.Path
		if path == "" {
			path = "library.db"
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown library backend %q", cfg.Backend)
	}
}

func validateFolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	return nil
}

func normalizeFolderID(id string) string {
	if id == types.RootFolder {
		return ""
	}
	return id
}

func newID() string { return uuid.New().String() }

func sortFolders(folders []types.Folder) {
	sort.Slice(folders, func(i, j int) bool {
		return strings.ToLower(folders[i].Name) < strings.ToLower(folders[j].Name)
	})
}

func sortItemsNewestFirst(items []types.LibraryItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Added.After(items[j].Added)
	})
}

func now() time.Time { return time.Now().UTC().Truncate(time.Second) }
