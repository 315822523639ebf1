// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// QueryFile is the on-disk representation of a search query and its results.
// A search saved to a file can be reloaded later without re-querying the
// sources.
type QueryFile struct {
	Query   types.SearchParams `yaml:"query"`
	Sources []types.Source     `yaml:"sources"`
	Papers  []types.Paper      `yaml:"papers"`
	Summary QuerySummary       `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves query parameters and results to a YAML file.
func WriteQueryFile(path string, params types.SearchParams, res types.SearchResult) error {
	qf := QueryFile{
		Query:   params,
		Sources: res.Sources,
		Papers:  res.Papers,
		Summary: QuerySummary{
			Total:     len(res.Papers),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// Result rebuilds the saved search result.
func (qf *QueryFile) Result() types.SearchResult {
	return types.SearchResult{Papers: qf.Papers, Sources: qf.Sources}
}
