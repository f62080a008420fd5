// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Redis key layout: a master set of folder keys, one hash per folder, one
// membership set per folder, and one hash per item.
const (
	folderMasterKey   = "folders"
	folderPrefix      = "folder:"
	folderItemsPrefix = "folder_items:"
	itemPrefix        = "item:"
)

// RedisStore persists the library in Redis.
type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects to the Redis instance described by rawURL
// (e.g. "redis://:password@localhost:6379/0") and verifies the connection.
func OpenRedis(ctx context.Context, rawURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error { return s.client.Close() }

// CreateFolder creates a folder with the given name.
func (s *RedisStore) CreateFolder(ctx context.Context, name string) (types.Folder, error) {
	if err := validateFolderName(name); err != nil {
		return types.Folder{}, err
	}
	f := types.Folder{ID: newID(), Name: name, Created: now()}
	key := folderPrefix + f.ID

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"id":      f.ID,
		"name":    f.Name,
		"created": f.Created.Format(time.RFC3339),
	})
	pipe.SAdd(ctx, folderMasterKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return types.Folder{}, fmt.Errorf("creating folder: %w", err)
	}
	return f, nil
}

// Folders lists all folders sorted by name. Keys in the master set whose
// hash has gone missing are pruned rather than reported.
func (s *RedisStore) Folders(ctx context.Context) ([]types.Folder, error) {
	keys, err := s.client.SMembers(ctx, folderMasterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	var folders []types.Folder
	for _, key := range keys {
		data, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("reading folder %s: %w", key, err)
		}
		if data["id"] == "" || data["name"] == "" {
			s.client.SRem(ctx, folderMasterKey, key)
			continue
		}
		created, _ := time.Parse(time.RFC3339, data["created"])
		folders = append(folders, types.Folder{
			ID:      data["id"],
			Name:    data["name"],
			Created: created,
		})
	}
	sortFolders(folders)
	return folders, nil
}

// DeleteFolder removes the folder and moves its items to the root.
func (s *RedisStore) DeleteFolder(ctx context.Context, id string) error {
	key := folderPrefix + id
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}

	itemsKey := folderItemsPrefix + id
	itemKeys, err := s.client.SMembers(ctx, itemsKey).Result()
	if err != nil {
		return fmt.Errorf("reading folder items: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, ik := range itemKeys {
		pipe.HSet(ctx, ik, "folder_id", "")
	}
	pipe.Del(ctx, key, itemsKey)
	pipe.SRem(ctx, folderMasterKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	return nil
}

// SaveItem stores an item, assigning its ID and timestamp.
func (s *RedisStore) SaveItem(ctx context.Context, item types.LibraryItem) (types.LibraryItem, error) {
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

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, itemPrefix+item.ID, itemToMap(item))
	if item.FolderID != "" {
		pipe.SAdd(ctx, folderItemsPrefix+item.FolderID, itemPrefix+item.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return types.LibraryItem{}, fmt.Errorf("saving item: %w", err)
	}
	return item, nil
}

// Items lists items in a folder, newest first. Root items are found by
// scanning item keys for an empty folder_id.
func (s *RedisStore) Items(ctx context.Context, folderID string) ([]types.LibraryItem, error) {
	folderID = normalizeFolderID(folderID)

	var itemKeys []string
	if folderID == "" {
		var cursor uint64
		for {
			keys, next, err := s.client.Scan(ctx, cursor, itemPrefix+"*", 100).Result()
			if err != nil {
				return nil, fmt.Errorf("scanning items: %w", err)
			}
			itemKeys = append(itemKeys, keys...)
			if next == 0 {
				break
			}
			cursor = next
		}
	} else {
		keys, err := s.client.SMembers(ctx, folderItemsPrefix+folderID).Result()
		if err != nil {
			return nil, fmt.Errorf("listing folder items: %w", err)
		}
		itemKeys = keys
	}

	var items []types.LibraryItem
	for _, key := range itemKeys {
		data, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("reading item %s: %w", key, err)
		}
		if len(data) == 0 {
			continue
		}
		it := itemFromMap(data)
		if folderID == "" && it.FolderID != "" {
			continue
		}
		items = append(items, it)
	}
	sortItemsNewestFirst(items)
	return items, nil
}

// DeleteItem removes an item and its folder membership.
func (s *RedisStore) DeleteItem(ctx context.Context, id string) error {
	key := itemPrefix + id
	folderID, err := s.client.HGet(ctx, key, "folder_id").Result()
	if err == redis.Nil {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if folderID != "" {
		pipe.SRem(ctx, folderItemsPrefix+folderID, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

func itemToMap(it types.LibraryItem) map[string]any {
	return map[string]any{
		"id":              it.ID,
		"folder_id":       it.FolderID,
		"added":           it.Added.Format(time.RFC3339),
		"title":           it.Title,
		"url":             it.URL,
		"query":           it.Query,
		"source_type":     it.SourceType,
		"content_snippet": it.ContentSnippet,
		"summary":         it.Summary,
		"annotation":      it.Annotation,
		"authors":         it.Authors,
		"year":            it.Year,
		"pdf_url":         it.PDFURL,
		"main_pub_url":    it.MainPubURL,
		"doi":             it.DOI,
		"journal_name":    it.JournalName,
		"volume":          it.Volume,
		"pages":           it.Pages,
		"publisher":       it.Publisher,
		"issn":            it.ISSN,
	}
}

func itemFromMap(data map[string]string) types.LibraryItem {
	added, _ := time.Parse(time.RFC3339, data["added"])
	return types.LibraryItem{
		ID:             data["id"],
		FolderID:       data["folder_id"],
		Added:          added,
		Title:          data["title"],
		URL:            data["url"],
		Query:          data["query"],
		SourceType:     data["source_type"],
		ContentSnippet: data["content_snippet"],
		Summary:        data["summary"],
		Annotation:     data["annotation"],
		Authors:        data["authors"],
		Year:           data["year"],
		PDFURL:         data["pdf_url"],
		MainPubURL:     data["main_pub_url"],
		DOI:            data["doi"],
		JournalName:    data["journal_name"],
		Volume:         data["volume"],
		Pages:          data["pages"],
		Publisher:      data["publisher"],
		ISSN:           data["issn"],
	}
}
