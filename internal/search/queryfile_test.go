// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-engine/pkg/types"
)

func TestQueryFile_WriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attention.yaml")

	minCites := 100
	params := types.SearchParams{
		Query:        "attention",
		Author:       "Vaswani",
		MaxResults:   5,
		Categories:   []string{"cs.CL"},
		MinCitations: &minCites,
		Year:         "2017",
	}
	res := types.SearchResult{
		Papers: []types.Paper{
			{
				ArxivID:       "1706.03762",
				Title:         "Attention Is All You Need",
				Authors:       []types.Author{{Name: "Ashish Vaswani"}},
				PublishedDate: time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC),
			},
			{ScholarID: "abc", Title: "Second", CitationCount: 42},
		},
		Sources: []types.Source{types.SourceArxiv, types.SourceSemanticScholar},
	}

	require.NoError(t, WriteQueryFile(path, params, res))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)

	assert.Equal(t, params, qf.Query)
	assert.Equal(t, 2, qf.Summary.Total)
	assert.False(t, qf.Summary.Timestamp.IsZero())

	got := qf.Result()
	assert.Equal(t, res.Sources, got.Sources)
	require.Len(t, got.Papers, 2)
	assert.Equal(t, "Attention Is All You Need", got.Papers[0].Title)
	assert.Equal(t, "Ashish Vaswani", got.Papers[0].Authors[0].Name)
	assert.True(t, got.Papers[0].PublishedDate.Equal(res.Papers[0].PublishedDate))
	assert.Equal(t, 42, got.Papers[1].CitationCount)
}

func TestReadQueryFile_Missing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading query file")
}

func TestReadQueryFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query: [unclosed"), 0o644))

	_, err := ReadQueryFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing query file")
}
