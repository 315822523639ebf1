// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-engine/pkg/types"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abc", "abc", 1},
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"one substitution", "abcd", "abcx", 0.75},
		{"multibyte counted in runes", "日本語", "日本人", 1 - 1.0/3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestBestMatchSelf(t *testing.T) {
	candidates := []types.Paper{{Title: "Attention Is All You Need"}}

	m, ok := BestMatch("Attention Is All You Need", candidates)

	require.True(t, ok)
	assert.Equal(t, 0.0, m.Distance)
	assert.Equal(t, 0, m.Index)
}

func TestBestMatchIgnoresCaseAndPunctuation(t *testing.T) {
	candidates := []types.Paper{
		{Title: "Deep Residual Learning for Image Recognition"},
		{Title: "Attention Is All You Need!"},
	}

	m, ok := BestMatch("attention is all you need", candidates)

	require.True(t, ok)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, 0.0, m.Distance)
}

func TestBestMatchEmpty(t *testing.T) {
	_, ok := BestMatch("anything", nil)
	assert.False(t, ok)
}

func TestBestMatchTiesGoToFirst(t *testing.T) {
	candidates := []types.Paper{
		{Title: "abcx", ScholarID: "first"},
		{Title: "abcy", ScholarID: "second"},
	}

	m, ok := BestMatch("abcd", candidates)

	require.True(t, ok)
	assert.Equal(t, "first", m.Paper.ScholarID)
}

func TestAcceptMatch(t *testing.T) {
	candidates := []types.Paper{
		{Title: "Attention Is All You Need"},
		{Title: "Generative Adversarial Networks"},
	}

	t.Run("within threshold", func(t *testing.T) {
		m, err := AcceptMatch("Attention is all you need", candidates, DefaultThreshold)
		require.NoError(t, err)
		assert.Equal(t, "Attention Is All You Need", m.Paper.Title)
	})

	t.Run("beyond threshold", func(t *testing.T) {
		_, err := AcceptMatch("Quantum Chromodynamics on the Lattice", candidates, DefaultThreshold)
		var nm *NoMatchError
		require.True(t, errors.As(err, &nm))
		assert.Greater(t, nm.Distance, DefaultThreshold)
		assert.Equal(t, DefaultThreshold, nm.Threshold)
		assert.Contains(t, err.Error(), "threshold 0.30")
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := AcceptMatch("anything", nil, DefaultThreshold)
		assert.ErrorIs(t, err, ErrNoPapersFound)
	})
}
