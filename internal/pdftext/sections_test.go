// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-engine/pkg/types"
)

const samplePageText = `Attention Is All You Need
Ashish Vaswani

Abstract
The dominant sequence transduction models.
1 Introduction
Recurrent neural networks.
have been established.
2 Background
3 Model Architecture
Most competitive models.
References
[1] A. Vaswani, N. Shazeer, and I. Polosukhin. Attention is all you need. In NIPS, 2017.
[2] Kaiming He, Xiangyu Zhang. Deep residual learning for image recog-
nition. In CVPR, 2016.
`

// --- Heading detection ---

func TestHeadingTitle(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"Introduction", "Introduction", true},
		{"INTRODUCTION", "INTRODUCTION", true},
		{"  Conclusion:  ", "Conclusion", true},
		{"Related Work", "Related Work", true},
		{"2.1 Data Sets", "Data Sets", true},
		{"3. Results", "Results", true},
		{"IV. DISCUSSION", "DISCUSSION", true},
		{"3 We show that results hold.", "", false},
		{"2017 was a good year", "", false},
		{"1 Introduction to the many wonderful and varied methods of deep learning", "", false},
		{"Recurrent neural networks.", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := headingTitle(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Sections ---

func TestSplitSections(t *testing.T) {
	sections := SplitSections(samplePageText)
	require.Len(t, sections, 5)

	titles := make([]string, len(sections))
	for i, s := range sections {
		assert.Equal(t, i, s.Index)
		titles[i] = s.Title
	}
	assert.Equal(t, []string{PreambleTitle, "Abstract", "Introduction", "Model Architecture", "References"}, titles)

	assert.Equal(t, "Attention Is All You Need\nAshish Vaswani", sections[0].Content)
	assert.Equal(t, "Recurrent neural networks.\nhave been established.", sections[2].Content)
}

func TestSplitSections_NoHeadings(t *testing.T) {
	sections := SplitSections("just some text\nwithout headings")
	require.Len(t, sections, 1)
	assert.Equal(t, PreambleTitle, sections[0].Title)
}

func TestSplitSections_Empty(t *testing.T) {
	assert.Empty(t, SplitSections(" \n\n \n"))
}

func TestPlainTextAndMarkdown(t *testing.T) {
	sections := []types.Section{
		{Index: 0, Title: "Abstract", Content: "a"},
		{Index: 1, Title: "Introduction", Content: "b"},
	}
	assert.Equal(t, "a\n\nb", PlainText(sections))
	assert.Equal(t, "## Abstract\n\na\n\n## Introduction\n\nb", Markdown(sections))
}

func TestBuild(t *testing.T) {
	pt := Build(samplePageText, "https://arxiv.org/pdf/1706.03762")
	require.NotNil(t, pt)

	assert.True(t, pt.IsValid())
	assert.Equal(t, "https://arxiv.org/pdf/1706.03762", pt.SourceURL)
	assert.Equal(t, PlainText(pt.Sections), pt.PlainText)
	assert.Contains(t, pt.Markdown, "## Model Architecture\n\nMost competitive models.")

	abstract, ok := pt.Section("abstract")
	require.True(t, ok)
	assert.Equal(t, "The dominant sequence transduction models.", abstract.Content)

	require.Len(t, pt.References, 2)
	assert.Equal(t, "1", pt.References[0].Key)
	assert.Equal(t, "2", pt.References[1].Key)
}

func TestBuild_NoText(t *testing.T) {
	assert.Nil(t, Build("  \n\n", "https://example.org/x.pdf"))
}
