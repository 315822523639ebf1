// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-engine/internal/httputil"
	"github.com/pdiddy/paper-engine/pkg/types"
)

const arxivFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <updated>2023-08-02T00:41:18Z</updated>
    <published>2017-06-12T17:57:34Z</published>
    <title>Attention Is All
      You Need</title>
    <summary>  The dominant sequence transduction models are based on complex recurrent networks.  </summary>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <arxiv:doi>10.48550/arXiv.1706.03762</arxiv:doi>
    <arxiv:journal_ref>NeurIPS 2017</arxiv:journal_ref>
    <link href="http://arxiv.org/abs/1706.03762v7" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v7" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
</feed>`

const arxivErrorFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/api/errors#incorrect_id_format_for_bogus</id>
    <title>Error</title>
    <summary>incorrect id format for bogus</summary>
  </entry>
</feed>`

func withArxivServer(t *testing.T, h http.HandlerFunc) *ArxivSource {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	t.Cleanup(func() { arxivAPIBase = old })

	return &ArxivSource{Client: ts.Client(), UserAgent: "paper-engine/test", Retry: httputil.Policy{BaseDelay: time.Millisecond}}
}

// --- Query building ---

func TestBuildArxivQuery(t *testing.T) {
	tests := []struct {
		name   string
		params types.SearchParams
		want   string
	}{
		{"free text", types.SearchParams{Query: "transformers"}, "all:transformers"},
		{"free text phrase", types.SearchParams{Query: "graph neural networks"}, `all:"graph neural networks"`},
		{"title only", types.SearchParams{Title: "Attention Is All You Need"}, `ti:"Attention Is All You Need"`},
		{"title and author", types.SearchParams{Title: "attention", Author: "Vaswani"}, "ti:attention AND au:Vaswani"},
		{"fields override free text", types.SearchParams{Query: "ignored", Abstract: "diffusion"}, "abs:diffusion"},
		{"single category", types.SearchParams{Query: "llm", Categories: []string{"cs.CL"}}, "all:llm AND cat:cs.CL"},
		{"several categories", types.SearchParams{Author: "Hinton", Categories: []string{"cs.LG", "stat.ML"}}, "au:Hinton AND (cat:cs.LG OR cat:stat.ML)"},
		{"quotes stripped", types.SearchParams{Title: `"quoted" title`}, `ti:"quoted title"`},
		{"nothing", types.SearchParams{Categories: []string{"cs.CL"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildArxivQuery(tt.params))
		})
	}
}

// --- HTTP ---

func TestArxivSearch(t *testing.T) {
	var captured *http.Request
	s := withArxivServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, arxivFeedXML)
	})

	records, err := s.Search(context.Background(), types.SearchParams{Title: "attention", MaxResults: 5})
	require.NoError(t, err)

	q := captured.URL.Query()
	assert.Equal(t, "ti:attention", q.Get("search_query"))
	assert.Equal(t, "5", q.Get("max_results"))
	assert.Equal(t, "submittedDate", q.Get("sortBy"))
	assert.Equal(t, "descending", q.Get("sortOrder"))
	assert.Equal(t, "paper-engine/test", captured.Header.Get("User-Agent"))

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "http://arxiv.org/abs/1706.03762v7", rec.ID)
	assert.Equal(t, []string{"Ashish Vaswani", "Noam Shazeer"}, rec.Authors)
	assert.Equal(t, "10.48550/arXiv.1706.03762", rec.DOI)
	assert.Equal(t, "NeurIPS 2017", rec.JournalRef)
	assert.Equal(t, "cs.CL", rec.PrimaryCategory)
	assert.Equal(t, []string{"cs.CL", "cs.LG"}, rec.Categories)
	assert.Equal(t, "http://arxiv.org/pdf/1706.03762v7", rec.PDFURL)
	assert.Equal(t, 2017, rec.Published.Year())
	assert.Equal(t, "The dominant sequence transduction models are based on complex recurrent networks.", rec.Summary)

	p := types.PaperFromArxiv(rec)
	assert.Equal(t, "Attention Is All You Need", p.Title)
	assert.Equal(t, "1706.03762", p.ArxivID)
	assert.Equal(t, "NeurIPS 2017", p.Journal)
}

func TestArxivSearchNoCriteria(t *testing.T) {
	s := &ArxivSource{}
	_, err := s.Search(context.Background(), types.SearchParams{})
	assert.ErrorIs(t, err, ErrNoCriteria)
}

func TestArxivFetchByID(t *testing.T) {
	var captured *http.Request
	s := withArxivServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, arxivFeedXML)
	})

	rec, err := s.FetchByID(context.Background(), "1706.03762v7")

	require.NoError(t, err)
	assert.Equal(t, "1706.03762", captured.URL.Query().Get("id_list"))
	assert.Equal(t, "http://arxiv.org/abs/1706.03762v7", rec.ID)
}

func TestArxivFetchByIDErrorEntry(t *testing.T) {
	s := withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, arxivErrorFeedXML)
	})

	_, err := s.FetchByID(context.Background(), "bogus")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArxivHTTPError(t *testing.T) {
	s := withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := s.Search(context.Background(), types.SearchParams{Query: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "arxiv", apiErr.Source)
}

func TestArxivMalformedFeed(t *testing.T) {
	s := withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<feed><entry>")
	})

	_, err := s.Search(context.Background(), types.SearchParams{Query: "x"})

	assert.ErrorContains(t, err, "parsing arXiv response")
}
