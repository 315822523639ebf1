// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReferences(t *testing.T) {
	content := `[1] A. Vaswani, N. Shazeer, and I. Polosukhin. Attention is all you need. In NIPS, 2017.
[2] Kaiming He, Xiangyu Zhang. Deep residual learning for image recog-
nition. In CVPR, 2016.
[3] T. Brown et al. Language models are few-shot learners. NeurIPS, 2020.
[4] Attention is all you need. 2017.`

	refs := ParseReferences(content)
	require.Len(t, refs, 4)

	assert.Equal(t, "1", refs[0].Key)
	assert.Equal(t, "A. Vaswani, N. Shazeer, and I. Polosukhin", refs[0].Authors)
	assert.Equal(t, "Attention is all you need", refs[0].Title)
	assert.Equal(t, "2017", refs[0].Year)

	assert.Equal(t, "Kaiming He, Xiangyu Zhang", refs[1].Authors)
	assert.Equal(t, "Deep residual learning for image recognition", refs[1].Title)
	assert.Equal(t, "2016", refs[1].Year)
	assert.Equal(t, "Kaiming He, Xiangyu Zhang. Deep residual learning for image recognition. In CVPR, 2016.", refs[1].Raw)

	assert.Equal(t, "T. Brown et al", refs[2].Authors)
	assert.Equal(t, "Language models are few-shot learners", refs[2].Title)

	assert.Empty(t, refs[3].Authors)
	assert.Equal(t, "Attention is all you need", refs[3].Title)
	assert.Equal(t, "2017", refs[3].Year)
}

func TestParseReferences_DottedNumbers(t *testing.T) {
	refs := ParseReferences("1. J. Smith and A. Doe. Graph networks. Nature, 2020.\n2. Second entry title. 2019.")
	require.Len(t, refs, 2)
	assert.Equal(t, "1", refs[0].Key)
	assert.Equal(t, "J. Smith and A. Doe", refs[0].Authors)
	assert.Equal(t, "Graph networks", refs[0].Title)
	assert.Equal(t, "2", refs[1].Key)
	assert.Equal(t, "Second entry title", refs[1].Title)
}

func TestParseReferences_Unnumbered(t *testing.T) {
	assert.Nil(t, ParseReferences("Smith, J. Some paper. 2020.\nDoe, A. Another. 2021."))
}

func TestParseReferences_LeadingTextIgnored(t *testing.T) {
	refs := ParseReferences("stray header line\n[7] Only entry. 2001.")
	require.Len(t, refs, 1)
	assert.Equal(t, "7", refs[0].Key)
	assert.Equal(t, "Only entry", refs[0].Title)
}

func TestSplitOnPeriods(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A. Author. Title here. Venue, 2020.", []string{"A. Author", "Title here", "Venue, 2020"}},
		{"Smith et al., 2020. Title", []string{"Smith et al., 2020", "Title"}},
		{"Uses e.g. transformers. Venue", []string{"Uses e.g. transformers", "Venue"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitOnPeriods(tt.in))
		})
	}
}
