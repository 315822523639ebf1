// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoCriteria is returned before any network access when a search
	// carries neither an ID nor a query, title, author or abstract filter.
	ErrNoCriteria = errors.New("no search criteria: provide a query, title, author, abstract, or ID")

	// ErrNoPapersFound is returned when no source produced a usable record.
	ErrNoPapersFound = errors.New("no papers found matching the search criteria")

	// ErrNotFound is returned when a direct ID or exact-title lookup finds nothing.
	ErrNotFound = errors.New("paper not found")
)

// APIError is a non-success response from a source API.
type APIError struct {
	Source     string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API returned HTTP %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s API returned HTTP %d: %s", e.Source, e.StatusCode, e.Message)
}

// IsNotFound reports whether err means the requested paper does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether err is a rate-limit response that survived
// the retry policy.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// NoMatchError reports that the best fuzzy candidate was farther from the
// query than the accepted threshold.
type NoMatchError struct {
	Query     string
	BestTitle string
	Distance  float64
	Threshold float64
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no paper matching %q within threshold %.2f (best match %q at distance %.3f)",
		e.Query, e.Threshold, e.BestTitle, e.Distance)
}
