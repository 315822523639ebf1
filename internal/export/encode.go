// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Format is a serialization format for export records.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatXML, FormatTOML, FormatYAML}

// ParseFormat maps a name (case-insensitive, "yml" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatXML, FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json, xml, toml or yaml)", s)
	}
}

// Encode writes v to w in format f. Compact drops indentation where the
// format has any; TOML and YAML have a single layout.
func Encode(w io.Writer, v any, f Format, compact bool) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)

	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		if !compact {
			enc.Indent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding xml: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err

	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(!compact)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// Decode reads a record written by Encode.
func Decode(r io.Reader, v any, f Format) error {
	switch f {
	case FormatJSON:
		return json.NewDecoder(r).Decode(v)
	case FormatXML:
		return xml.NewDecoder(r).Decode(v)
	case FormatTOML:
		return toml.NewDecoder(r).Decode(v)
	case FormatYAML:
		return yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
