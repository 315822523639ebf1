// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext downloads paper PDFs and turns their page text into
// sections, Markdown and parsed bibliography entries.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/httputil"
	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

var (
	// ErrNoPDFURL is returned when Extract is called without a URL.
	ErrNoPDFURL = errors.New("no PDF URL available")

	// ErrNoText is returned when a PDF yields no extractable text.
	ErrNoText = errors.New("no text extracted from PDF")
)

// MaxPDFBytes bounds the size of a downloaded PDF.
const MaxPDFBytes = 64 << 20

// Extractor fetches PDFs over HTTP and extracts their text.
type Extractor struct {
	Client    *http.Client
	UserAgent string
	Retry     httputil.Policy
	Logger    *zap.Logger
}

// NewExtractor builds an Extractor from the shared HTTP settings. PDF
// downloads get a longer timeout than API calls.
func NewExtractor(cfg types.HTTPConfig, log *zap.Logger) *Extractor {
	timeout := cfg.Timeout
	if timeout > 0 && timeout < 2*time.Minute {
		timeout = 2 * time.Minute
	}
	return &Extractor{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: cfg.UserAgent,
		Retry:     httputil.Policy{MaxRetries: cfg.RetryCount, BaseDelay: cfg.RetryWait, Logger: log},
		Logger:    logging.OrNop(log),
	}
}

// Extract downloads pdfURL and returns its text split into sections.
func (e *Extractor) Extract(ctx context.Context, pdfURL string) (*types.PaperText, error) {
	if strings.TrimSpace(pdfURL) == "" {
		return nil, ErrNoPDFURL
	}
	log := logging.OrNop(e.Logger)

	data, err := e.download(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	log.Debug("pdf downloaded", zap.String("url", pdfURL), zap.Int("bytes", len(data)))

	text, err := readText(data)
	if err != nil {
		return nil, fmt.Errorf("parsing PDF %s: %w", pdfURL, err)
	}

	pt := Build(text, pdfURL)
	if pt == nil {
		return nil, fmt.Errorf("%s: %w", pdfURL, ErrNoText)
	}
	pt.ExtractedAt = time.Now()
	log.Info("pdf text extracted",
		zap.String("url", pdfURL),
		zap.Int("sections", len(pt.Sections)),
		zap.Int("chars", len(pt.PlainText)),
		zap.Int("references", len(pt.References)))
	return pt, nil
}

// download fetches url into memory. It sets User-Agent and requests PDF
// via the Accept header; redirects are followed by the client.
func (e *Extractor) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if e.UserAgent != "" {
		req.Header.Set("User-Agent", e.UserAgent)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, e.Client, req, e.Retry)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPDFBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading download: %w", err)
	}
	if len(data) > MaxPDFBytes {
		return nil, fmt.Errorf("PDF from %s exceeds %d bytes", url, MaxPDFBytes)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, fmt.Errorf("response from %s is not a PDF", url)
	}
	return data, nil
}

// readText concatenates the plain text of every page. The PDF parser
// panics on some malformed inputs; that is reported as an error.
func readText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}
