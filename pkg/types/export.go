// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/xml"
	"time"
)

// ExportSchemaVersion is the version of the ExportedPaper layout.
const ExportSchemaVersion = "1.0.0"

// ExportedPaper is the composite export record: a paper plus the optional
// blocks requested by the caller.
type ExportedPaper struct {
	XMLName xml.Name `json:"-" yaml:"-" toml:"-" xml:"exported_paper"`

	SchemaVersion  string         `json:"schema_version" yaml:"schema_version" toml:"schema_version" xml:"schema_version"`
	ExportMetadata ExportMetadata `json:"export_metadata" yaml:"export_metadata" toml:"export_metadata" xml:"export_metadata"`
	Paper          Paper          `json:"paper" yaml:"paper" toml:"paper" xml:"paper"`

	Citations       *CitationData    `json:"citations,omitempty" yaml:"citations,omitempty" toml:"citations,omitempty" xml:"citations,omitempty"`
	References      *ReferenceData   `json:"references,omitempty" yaml:"references,omitempty" toml:"references,omitempty" xml:"references,omitempty"`
	Keywords        *KeywordsData    `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty" xml:"keywords,omitempty"`
	ResearchContext *ResearchContext `json:"research_context,omitempty" yaml:"research_context,omitempty" toml:"research_context,omitempty" xml:"research_context,omitempty"`
}

// ExportMetadata records when and how an export was produced.
type ExportMetadata struct {
	ExportID    string        `json:"export_id" yaml:"export_id" toml:"export_id" xml:"export_id"`
	ExportedAt  time.Time     `json:"exported_at" yaml:"exported_at" toml:"exported_at" xml:"exported_at"`
	ToolVersion string        `json:"tool_version" yaml:"tool_version" toml:"tool_version" xml:"tool_version"`
	Options     ExportOptions `json:"options" yaml:"options" toml:"options" xml:"options"`
	Warnings    []string      `json:"warnings" yaml:"warnings" toml:"warnings" xml:"warnings>warning"`
}

// ExportOptions records which optional steps were requested.
type ExportOptions struct {
	Analyzed           bool   `json:"analyzed" yaml:"analyzed" toml:"analyzed" xml:"analyzed"`
	TextExtracted      bool   `json:"text_extracted" yaml:"text_extracted" toml:"text_extracted" xml:"text_extracted"`
	CitationsIncluded  bool   `json:"citations_included" yaml:"citations_included" toml:"citations_included" xml:"citations_included"`
	ReferencesIncluded bool   `json:"references_included" yaml:"references_included" toml:"references_included" xml:"references_included"`
	KeywordsExtracted  bool   `json:"keywords_extracted" yaml:"keywords_extracted" toml:"keywords_extracted" xml:"keywords_extracted"`
	MaxCitations       int    `json:"max_citations" yaml:"max_citations" toml:"max_citations" xml:"max_citations"`
	LLMProvider        string `json:"llm_provider,omitempty" yaml:"llm_provider,omitempty" toml:"llm_provider,omitempty" xml:"llm_provider,omitempty"`
	LLMModel           string `json:"llm_model,omitempty" yaml:"llm_model,omitempty" toml:"llm_model,omitempty" xml:"llm_model,omitempty"`
}

// KeywordsData holds LLM-extracted keywords, topics and terms.
type KeywordsData struct {
	Keywords       []string        `json:"keywords" yaml:"keywords" toml:"keywords" xml:"keywords>keyword"`
	Topics         []string        `json:"topics" yaml:"topics" toml:"topics" xml:"topics>topic"`
	TechnicalTerms []TechnicalTerm `json:"technical_terms" yaml:"technical_terms" toml:"technical_terms" xml:"technical_terms>term"`
	Methods        []string        `json:"methods" yaml:"methods" toml:"methods" xml:"methods>method"`
	Datasets       []string        `json:"datasets" yaml:"datasets" toml:"datasets" xml:"datasets>dataset"`
}

// TechnicalTerm is a term with an optional short definition.
type TechnicalTerm struct {
	Term       string `json:"term" yaml:"term" toml:"term" xml:"term"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty" toml:"definition,omitempty" xml:"definition,omitempty"`
}

// ResearchContext places a paper within its research field.
type ResearchContext struct {
	PrimaryField string   `json:"primary_field" yaml:"primary_field" toml:"primary_field" xml:"primary_field"`
	SubFields    []string `json:"sub_fields" yaml:"sub_fields" toml:"sub_fields" xml:"sub_fields>field"`

	// ResearchType is one of empirical, theoretical, survey, methodology, application.
	ResearchType      string   `json:"research_type" yaml:"research_type" toml:"research_type" xml:"research_type"`
	Positioning       string   `json:"positioning" yaml:"positioning" toml:"positioning" xml:"positioning"`
	RelatedDirections []string `json:"related_directions" yaml:"related_directions" toml:"related_directions" xml:"related_directions>direction"`
}
