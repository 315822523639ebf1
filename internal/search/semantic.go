// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/paper-engine/internal/httputil"
	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// semanticAPIBase is the Semantic Scholar Graph API root. Declared as a var
// so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1"

const (
	semanticFields = "paperId,externalIds,url,title,abstract,venue,year,publicationDate,journal," +
		"authors,citationCount,referenceCount,influentialCitationCount,isOpenAccess,openAccessPdf,citationStyles"

	// Details also ask for the per-author metrics used by enrichment.
	semanticDetailFields = semanticFields +
		",authors.authorId,authors.name,authors.hIndex,authors.affiliations,authors.paperCount,authors.citationCount"

	semanticNetworkFields = "paperId,externalIds,url,title,abstract,venue,year,publicationDate,journal," +
		"authors,citationCount,influentialCitationCount"

	// The citations and references endpoints cap a page at 1000.
	semanticMaxPage = 1000

	// Extra edges requested beyond the limit to make up for edges whose
	// paper has no title and is dropped.
	semanticEdgeMargin = 10
)

// Requests per second allowed by Semantic Scholar with and without a key.
const (
	semanticRateKeyed     = 10
	semanticRateAnonymous = 1
)

// SemanticScholarSource queries the Semantic Scholar Graph API.
type SemanticScholarSource struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
	Retry     httputil.Policy
	Limiter   *rate.Limiter
	Logger    *zap.Logger
}

// NewSemanticScholarSource builds a Semantic Scholar adapter. The rate
// limiter is sized for keyed or anonymous access.
func NewSemanticScholarSource(cfg types.SourceConfig, log *zap.Logger) *SemanticScholarSource {
	rps := semanticRateAnonymous
	if cfg.SemanticScholarAPIKey != "" {
		rps = semanticRateKeyed
	}
	return &SemanticScholarSource{
		Client:    &http.Client{Timeout: cfg.Timeout},
		APIKey:    cfg.SemanticScholarAPIKey,
		UserAgent: cfg.UserAgent,
		Retry:     httputil.Policy{MaxRetries: cfg.RetryCount, BaseDelay: cfg.RetryWait, Logger: log},
		Limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		Logger:    logging.OrNop(log),
	}
}

// Name returns the source identifier.
func (s *SemanticScholarSource) Name() types.Source { return types.SourceSemanticScholar }

// Search runs a relevance search. The query text is the free-text query,
// else the title, else the author; the abstract filter alone is not
// searchable here.
func (s *SemanticScholarSource) Search(ctx context.Context, params types.SearchParams) ([]types.ScholarRecord, error) {
	q := semanticQueryText(params)
	if q == "" {
		return nil, ErrNoCriteria
	}

	v := url.Values{
		"query":  {q},
		"limit":  {strconv.Itoa(params.Limit())},
		"fields": {semanticFields},
	}
	if params.Year != "" {
		v.Set("year", params.Year)
	}
	if params.MinCitations != nil {
		v.Set("minCitationCount", strconv.Itoa(*params.MinCitations))
	}

	var sr semanticSearchResponse
	if err := s.get(ctx, "/paper/search", v, &sr); err != nil {
		return nil, err
	}
	return sr.Data, nil
}

// MatchTitle returns the single paper Semantic Scholar considers the best
// title match. It returns an error satisfying IsNotFound when there is none.
func (s *SemanticScholarSource) MatchTitle(ctx context.Context, title string) (types.ScholarRecord, error) {
	v := url.Values{"query": {title}, "fields": {semanticDetailFields}}

	var sr semanticSearchResponse
	if err := s.get(ctx, "/paper/search/match", v, &sr); err != nil {
		return types.ScholarRecord{}, err
	}
	if len(sr.Data) == 0 {
		return types.ScholarRecord{}, fmt.Errorf("title %q: %w", title, ErrNotFound)
	}
	return sr.Data[0], nil
}

// FetchDetails returns the full record for a Semantic Scholar paper ID,
// including author metrics. Prefixed IDs such as "arXiv:1706.03762" and
// "DOI:..." are passed through.
func (s *SemanticScholarSource) FetchDetails(ctx context.Context, id string) (types.ScholarRecord, error) {
	var rec types.ScholarRecord
	err := s.get(ctx, "/paper/"+url.PathEscape(id), url.Values{"fields": {semanticDetailFields}}, &rec)
	return rec, err
}

// FetchCitations returns up to limit papers citing id.
func (s *SemanticScholarSource) FetchCitations(ctx context.Context, id string, limit int) ([]types.ScholarRecord, error) {
	var resp struct {
		Data []struct {
			CitingPaper *types.ScholarRecord `json:"citingPaper"`
		} `json:"data"`
	}
	if err := s.get(ctx, "/paper/"+url.PathEscape(id)+"/citations", networkQuery(limit), &resp); err != nil {
		return nil, err
	}
	records := make([]types.ScholarRecord, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.CitingPaper != nil && d.CitingPaper.Title != "" {
			records = append(records, *d.CitingPaper)
		}
	}
	return truncateEdges(records, limit), nil
}

// FetchReferences returns up to limit papers referenced by id.
func (s *SemanticScholarSource) FetchReferences(ctx context.Context, id string, limit int) ([]types.ScholarRecord, error) {
	var resp struct {
		Data []struct {
			CitedPaper *types.ScholarRecord `json:"citedPaper"`
		} `json:"data"`
	}
	if err := s.get(ctx, "/paper/"+url.PathEscape(id)+"/references", networkQuery(limit), &resp); err != nil {
		return nil, err
	}
	records := make([]types.ScholarRecord, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.CitedPaper != nil && d.CitedPaper.Title != "" {
			records = append(records, *d.CitedPaper)
		}
	}
	return truncateEdges(records, limit), nil
}

// networkQuery asks for limit edges plus a margin, capped at one page. A
// non-positive limit asks for a full page.
func networkQuery(limit int) url.Values {
	if limit <= 0 {
		limit = semanticMaxPage
	}
	limit = min(limit+semanticEdgeMargin, semanticMaxPage)
	return url.Values{"fields": {semanticNetworkFields}, "limit": {strconv.Itoa(limit)}}
}

func truncateEdges(records []types.ScholarRecord, limit int) []types.ScholarRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

// get issues a rate-limited GET against the Graph API and decodes the
// JSON body into out.
func (s *SemanticScholarSource) get(ctx context.Context, path string, v url.Values, out any) error {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	reqURL := semanticAPIBase + path
	if len(v) > 0 {
		reqURL += "?" + v.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	if s.APIKey != "" {
		req.Header.Set("x-api-key", s.APIKey)
	}

	logging.OrNop(s.Logger).Debug("semantic scholar request", zap.String("path", path))
	resp, err := httputil.DoWithRetry(ctx, s.Client, req, s.Retry)
	if err != nil {
		return fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			Source:     string(types.SourceSemanticScholar),
			StatusCode: resp.StatusCode,
			Message:    semanticErrorMessage(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return nil
}

// semanticErrorMessage pulls the "error" or "message" field out of an
// error body, falling back to the trimmed body.
func semanticErrorMessage(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return strings.TrimSpace(string(body))
}

func semanticQueryText(p types.SearchParams) string {
	switch {
	case p.Query != "":
		return p.Query
	case p.Title != "":
		return p.Title
	default:
		return p.Author
	}
}

type semanticSearchResponse struct {
	Total int                   `json:"total"`
	Data  []types.ScholarRecord `json:"data"`
}
