// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// SQLiteStore persists the library in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the library database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			folder_id TEXT NOT NULL DEFAULT '',
			added TEXT NOT NULL,
			title TEXT,
			url TEXT,
			query TEXT,
			source_type TEXT,
			content_snippet TEXT,
			summary TEXT,
			annotation TEXT,
			authors TEXT,
			year TEXT,
			pdf_url TEXT,
			main_pub_url TEXT,
			doi TEXT,
			journal_name TEXT,
			volume TEXT,
			pages TEXT,
			publisher TEXT,
			issn TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_folder_id ON items(folder_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// CreateFolder creates a folder with the given name.
func (s *SQLiteStore) CreateFolder(ctx context.Context, name string) (types.Folder, error) {
	if err := validateFolderName(name); err != nil {
		return types.Folder{}, err
	}
	f := types.Folder{ID: newID(), Name: name, Created: now()}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO folders (id, name, created) VALUES (?, ?, ?)`,
		f.ID, f.Name, f.Created.Format(time.RFC3339))
	if err != nil {
		return types.Folder{}, fmt.Errorf("creating folder: %w", err)
	}
	return f, nil
}

// Folders lists all folders sorted by name.
func (s *SQLiteStore) Folders(ctx context.Context) ([]types.Folder, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created FROM folders`)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	defer rows.Close()

	var folders []types.Folder
	for rows.Next() {
		var f types.Folder
		var created string
		if err := rows.Scan(&f.ID, &f.Name, &created); err != nil {
			return nil, fmt.Errorf("scanning folder: %w", err)
		}
		f.Created, _ = time.Parse(time.RFC3339, created)
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	sortFolders(folders)
	return folders, nil
}

// DeleteFolder removes the folder and moves its items to the root.
func (s *SQLiteStore) DeleteFolder(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE items SET folder_id = '' WHERE folder_id = ?`, id); err != nil {
		return fmt.Errorf("unfiling folder items: %w", err)
	}
	return tx.Commit()
}

// SaveItem stores an item, assigning its ID and timestamp.
func (s *SQLiteStore) SaveItem(ctx context.Context, item types.LibraryItem) (types.LibraryItem, error) {
	if item.ID == "" {
		item.ID = newID()
	}
	if item.Added.IsZero() {
		item.Added = now()
	}
	item.FolderID = normalizeFolderID(item.FolderID)
	if item.Title == "" {
		item.Title = "Untitled"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (
			id, folder_id, added, title, url, query, source_type,
			content_snippet, summary, annotation, authors, year, pdf_url,
			main_pub_url, doi, journal_name, volume, pages, publisher, issn
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.FolderID, item.Added.Format(time.RFC3339), item.Title,
		item.URL, item.Query, item.SourceType, item.ContentSnippet,
		item.Summary, item.Annotation, item.Authors, item.Year, item.PDFURL,
		item.MainPubURL, item.DOI, item.JournalName, item.Volume, item.Pages,
		item.Publisher, item.ISSN)
	if err != nil {
		return types.LibraryItem{}, fmt.Errorf("saving item: %w", err)
	}
	return item, nil
}

// Items lists items in a folder, newest first.
func (s *SQLiteStore) Items(ctx context.Context, folderID string) ([]types.LibraryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, folder_id, added, title, url, query, source_type,
			content_snippet, summary, annotation, authors, year, pdf_url,
			main_pub_url, doi, journal_name, volume, pages, publisher, issn
		FROM items WHERE folder_id = ?`, normalizeFolderID(folderID))
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []types.LibraryItem
	for rows.Next() {
		var it types.LibraryItem
		var added string
		if err := rows.Scan(&it.ID, &it.FolderID, &added, &it.Title, &it.URL,
			&it.Query, &it.SourceType, &it.ContentSnippet, &it.Summary,
			&it.Annotation, &it.Authors, &it.Year, &it.PDFURL, &it.MainPubURL,
			&it.DOI, &it.JournalName, &it.Volume, &it.Pages, &it.Publisher,
			&it.ISSN); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		it.Added, _ = time.Parse(time.RFC3339, added)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	sortItemsNewestFirst(items)
	return items, nil
}

// DeleteItem removes an item by id.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return nil
}
