// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/httputil"
	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivSource queries the arXiv Atom API.
type ArxivSource struct {
	Client    *http.Client
	UserAgent string
	Retry     httputil.Policy
	Logger    *zap.Logger
}

// NewArxivSource builds an arXiv adapter from the shared HTTP settings.
func NewArxivSource(cfg types.HTTPConfig, log *zap.Logger) *ArxivSource {
	return &ArxivSource{
		Client:    &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
		Retry:     httputil.Policy{MaxRetries: cfg.RetryCount, BaseDelay: cfg.RetryWait, Logger: log},
		Logger:    logging.OrNop(log),
	}
}

// Name returns the source identifier.
func (s *ArxivSource) Name() types.Source { return types.SourceArxiv }

// Search runs a field query against arXiv, newest submissions first.
func (s *ArxivSource) Search(ctx context.Context, params types.SearchParams) ([]types.ArxivRecord, error) {
	q := buildArxivQuery(params)
	if q == "" {
		return nil, ErrNoCriteria
	}

	v := url.Values{
		"search_query": {q},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(params.Limit())},
		"sortBy":       {"submittedDate"},
		"sortOrder":    {"descending"},
	}
	return s.query(ctx, v)
}

// FetchByID returns the single arXiv record for id. Version suffixes and
// abs URLs are accepted.
func (s *ArxivSource) FetchByID(ctx context.Context, id string) (types.ArxivRecord, error) {
	bare := types.ExtractArxivID(id)
	if bare == "" {
		return types.ArxivRecord{}, fmt.Errorf("empty arXiv ID: %w", ErrNotFound)
	}

	records, err := s.query(ctx, url.Values{"id_list": {bare}, "max_results": {"1"}})
	if err != nil {
		return types.ArxivRecord{}, err
	}
	if len(records) == 0 {
		return types.ArxivRecord{}, fmt.Errorf("arXiv paper %s: %w", bare, ErrNotFound)
	}
	return records[0], nil
}

func (s *ArxivSource) query(ctx context.Context, v url.Values) ([]types.ArxivRecord, error) {
	reqURL := arxivAPIBase + "?" + v.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	logging.OrNop(s.Logger).Debug("arxiv request", zap.String("url", reqURL))
	resp, err := httputil.DoWithRetry(ctx, s.Client, req, s.Retry)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Source: string(types.SourceArxiv), StatusCode: resp.StatusCode}
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	records := make([]types.ArxivRecord, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		// Error entries carry an api/errors URL instead of an abs URL.
		if !strings.Contains(e.ID, "/abs/") {
			continue
		}
		records = append(records, e.record())
	}
	return records, nil
}

// buildArxivQuery ANDs the title, author and abstract filters. With none
// of them set the free-text query searches all fields. A category filter
// is ORed across categories and ANDed onto the rest.
func buildArxivQuery(p types.SearchParams) string {
	var conds []string
	if p.Title != "" {
		conds = append(conds, fieldTerm("ti", p.Title))
	}
	if p.Author != "" {
		conds = append(conds, fieldTerm("au", p.Author))
	}
	if p.Abstract != "" {
		conds = append(conds, fieldTerm("abs", p.Abstract))
	}
	if len(conds) == 0 && p.Query != "" {
		conds = append(conds, fieldTerm("all", p.Query))
	}
	if len(conds) == 0 {
		return ""
	}

	if len(p.Categories) > 0 {
		cats := make([]string, len(p.Categories))
		for i, c := range p.Categories {
			cats[i] = "cat:" + strings.TrimSpace(c)
		}
		if len(cats) == 1 {
			conds = append(conds, cats[0])
		} else {
			conds = append(conds, "("+strings.Join(cats, " OR ")+")")
		}
	}
	return strings.Join(conds, " AND ")
}

// fieldTerm quotes multi-word values so arXiv treats them as a phrase.
func fieldTerm(field, value string) string {
	value = strings.Join(strings.Fields(strings.ReplaceAll(value, `"`, "")), " ")
	if strings.Contains(value, " ") {
		return field + `:"` + value + `"`
	}
	return field + ":" + value
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID              string          `xml:"id"`
	Title           string          `xml:"title"`
	Summary         string          `xml:"summary"`
	Published       string          `xml:"published"`
	Updated         string          `xml:"updated"`
	Authors         []arxivAuthor   `xml:"author"`
	Links           []arxivLink     `xml:"link"`
	Categories      []arxivCategory `xml:"category"`
	PrimaryCategory arxivCategory   `xml:"http://arxiv.org/schemas/atom primary_category"`
	DOI             string          `xml:"http://arxiv.org/schemas/atom doi"`
	JournalRef      string          `xml:"http://arxiv.org/schemas/atom journal_ref"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

func (e arxivEntry) record() types.ArxivRecord {
	rec := types.ArxivRecord{
		ID:              strings.TrimSpace(e.ID),
		Title:           strings.TrimSpace(e.Title),
		Summary:         strings.TrimSpace(e.Summary),
		DOI:             strings.TrimSpace(e.DOI),
		JournalRef:      strings.TrimSpace(e.JournalRef),
		PrimaryCategory: e.PrimaryCategory.Term,
	}
	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			rec.Authors = append(rec.Authors, name)
		}
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			rec.Categories = append(rec.Categories, c.Term)
		}
	}
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			rec.PDFURL = l.Href
			break
		}
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
		rec.Published = t
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Updated)); err == nil {
		rec.Updated = t
	}
	return rec
}
