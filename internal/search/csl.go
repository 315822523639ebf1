// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-YAML schema so that
// output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Number         string    `yaml:"number,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes papers as a CSL-YAML list to w.
func FormatCSL(papers []types.Paper, w io.Writer) error {
	items := make([]CSLItem, len(papers))
	for i, p := range papers {
		items[i] = toCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a Paper to a CSLItem. Preprints without a journal
// are typed "article"; published papers are "article-journal".
func toCSLItem(p types.Paper) CSLItem {
	item := CSLItem{
		ID:       cslID(p),
		Type:     "article",
		Title:    p.Title,
		Abstract: p.Abstract,
		DOI:      p.DOI,
		URL:      p.URL,
	}

	if p.Journal != "" && !strings.EqualFold(p.Journal, "arXiv") {
		item.Type = "article-journal"
		item.ContainerTitle = p.Journal
	}
	if p.ArxivID != "" {
		item.Number = "arXiv:" + p.ArxivID
	}

	for _, a := range p.Authors {
		item.Author = append(item.Author, parseAuthorName(a.Name))
	}

	if !p.PublishedDate.IsZero() {
		d := p.PublishedDate
		item.Issued = &CSLDate{DateParts: [][]int{{d.Year(), int(d.Month()), d.Day()}}}
	}
	return item
}

// cslID picks the most portable identifier: arXiv, then DOI, then the
// Semantic Scholar ID.
func cslID(p types.Paper) string {
	switch {
	case p.ArxivID != "":
		return p.ArxivID
	case p.DOI != "":
		return p.DOI
	default:
		return p.ScholarID
	}
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
