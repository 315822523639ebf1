// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// PreambleTitle names the text that precedes the first heading: title,
// authors and affiliations in most papers.
const PreambleTitle = "Preamble"

// knownHeadings are unnumbered section titles recognized on a line of
// their own, compared case-insensitively.
var knownHeadings = map[string]bool{
	"abstract":               true,
	"introduction":           true,
	"background":             true,
	"related work":           true,
	"method":                 true,
	"methods":                true,
	"methodology":            true,
	"approach":               true,
	"experiments":            true,
	"experimental setup":     true,
	"evaluation":             true,
	"results":                true,
	"discussion":             true,
	"limitations":            true,
	"conclusion":             true,
	"conclusions":            true,
	"acknowledgments":        true,
	"acknowledgements":       true,
	"references":             true,
	"bibliography":           true,
	"appendix":               true,
	"supplementary material": true,
}

// numberedHeadingRe matches "3 Results", "2.1 Data Sets" and "IV. DISCUSSION".
var numberedHeadingRe = regexp.MustCompile(`^(?:\d{1,2}(?:\.\d{1,2})*\.?|[IVX]{1,4}\.)\s+([A-Z][A-Za-z0-9 ,:&()/'-]{1,80})$`)

const maxHeadingWords = 8

// headingTitle reports whether line is a section heading and returns its
// title without numbering or trailing colon.
func headingTitle(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || len(line) > 100 {
		return "", false
	}

	bare := strings.TrimRight(line, ": ")
	if knownHeadings[strings.ToLower(bare)] {
		return bare, true
	}

	m := numberedHeadingRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	title := strings.TrimRight(strings.TrimSpace(m[1]), ": ")
	if strings.HasSuffix(title, ".") || len(strings.Fields(title)) > maxHeadingWords {
		return "", false
	}
	return title, true
}

// SplitSections breaks page text into sections at detected headings.
// Text before the first heading becomes the preamble section. Sections
// with no content are dropped and the rest are indexed from zero.
func SplitSections(text string) []types.Section {
	var sections []types.Section
	title := PreambleTitle
	var body []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if content != "" {
			sections = append(sections, types.Section{
				Index:   len(sections),
				Title:   title,
				Content: content,
			})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if t, ok := headingTitle(line); ok {
			flush()
			title = t
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			body = append(body, trimmed)
		}
	}
	flush()
	return sections
}

// PlainText joins section contents with blank lines.
func PlainText(sections []types.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.Content
	}
	return strings.Join(parts, "\n\n")
}

// Markdown renders each section as a level-two heading followed by its
// content.
func Markdown(sections []types.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = "## " + s.Title + "\n\n" + s.Content
	}
	return strings.Join(parts, "\n\n")
}

// Build assembles a PaperText from raw page text. It returns nil when the
// text has no content.
func Build(text, sourceURL string) *types.PaperText {
	sections := SplitSections(text)
	if len(sections) == 0 {
		return nil
	}
	pt := &types.PaperText{
		PlainText: PlainText(sections),
		Sections:  sections,
		Markdown:  Markdown(sections),
		SourceURL: sourceURL,
	}
	for _, s := range sections {
		if isBibliographyTitle(s.Title) {
			pt.References = ParseReferences(s.Content)
			break
		}
	}
	return pt
}

func isBibliographyTitle(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "references") || strings.Contains(t, "bibliography")
}
