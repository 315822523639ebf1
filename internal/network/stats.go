// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package network

import (
	"sort"

	"github.com/pdiddy/paper-engine/pkg/types"
)

const (
	topVenueLimit       = 10
	mostInfluentialSize = 5
)

// CitationStats derives the citation statistics of a set of summaries.
func CitationStats(papers []types.PaperSummary) types.CitationStatistics {
	return types.CitationStatistics{
		ByYear:           byYear(papers),
		TopVenues:        topVenues(papers),
		AvgCitationCount: avgCitations(papers),
		MostInfluential:  mostInfluential(papers),
	}
}

// ReferenceStats derives the reference statistics of a set of summaries.
func ReferenceStats(papers []types.PaperSummary) types.ReferenceStatistics {
	return types.ReferenceStatistics{
		ByYear:    byYear(papers),
		YearRange: yearRange(papers),
		TopVenues: topVenues(papers),
	}
}

// byYear counts papers per known year, ascending by year.
func byYear(papers []types.PaperSummary) []types.YearCount {
	counts := make(map[int]int)
	for _, p := range papers {
		if p.Year > 0 {
			counts[p.Year]++
		}
	}
	out := make([]types.YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, types.YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// topVenues counts non-empty venues and keeps the ten most frequent. Ties
// keep the order in which venues were first seen.
func topVenues(papers []types.PaperSummary) []types.VenueCount {
	index := make(map[string]int)
	var out []types.VenueCount
	for _, p := range papers {
		if p.Venue == "" {
			continue
		}
		if i, ok := index[p.Venue]; ok {
			out[i].Count++
			continue
		}
		index[p.Venue] = len(out)
		out = append(out, types.VenueCount{Venue: p.Venue, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > topVenueLimit {
		out = out[:topVenueLimit]
	}
	return out
}

func avgCitations(papers []types.PaperSummary) float64 {
	if len(papers) == 0 {
		return 0
	}
	total := 0
	for _, p := range papers {
		total += p.CitationCount
	}
	return float64(total) / float64(len(papers))
}

// mostInfluential returns the titles of the five most cited papers.
func mostInfluential(papers []types.PaperSummary) []string {
	sorted := make([]types.PaperSummary, len(papers))
	copy(sorted, papers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CitationCount > sorted[j].CitationCount })
	if len(sorted) > mostInfluentialSize {
		sorted = sorted[:mostInfluentialSize]
	}
	titles := make([]string, len(sorted))
	for i, p := range sorted {
		titles[i] = p.Title
	}
	return titles
}

// yearRange is nil when no paper has a known year.
func yearRange(papers []types.PaperSummary) *types.YearRange {
	var r *types.YearRange
	for _, p := range papers {
		if p.Year <= 0 {
			continue
		}
		if r == nil {
			r = &types.YearRange{Min: p.Year, Max: p.Year}
			continue
		}
		r.Min = min(r.Min, p.Year)
		r.Max = max(r.Max, p.Year)
	}
	return r
}
