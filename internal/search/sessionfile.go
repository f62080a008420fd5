// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// SessionFile is the on-disk representation of one search: the query, the
// provider-tuned variants that were actually sent, the merged records, and
// any provider warnings. A saved session lets cite and library commands run
// later without re-querying APIs.
type SessionFile struct {
	Query   string               `yaml:"query"`
	Records []types.MergedRecord `yaml:"records"`
	Summary SessionSummary       `yaml:"summary"`
}

// SessionSummary stores result statistics and a timestamp.
type SessionSummary struct {
	Total     int       `yaml:"total"`
	Warnings  []string  `yaml:"warnings,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSessionFile saves a search session to a YAML file.
func WriteSessionFile(path, query string, records []types.MergedRecord, warnings []string) error {
	sf := SessionFile{
		Query:   query,
		Records: records,
		Summary: SessionSummary{
			Total:     len(records),
			Warnings:  warnings,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling session file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSessionFile loads a previously saved search session from disk.
func ReadSessionFile(path string) (*SessionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var sf SessionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return &sf, nil
}
