// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ExportFormat selects the serialization written by the exporter.
type ExportFormat string

const (
	FormatXLSX   ExportFormat = "xlsx"
	FormatYAML   ExportFormat = "yaml"
	FormatJSON   ExportFormat = "json"
	FormatSQLite ExportFormat = "sqlite"
)

// DefaultOutput is the output path used when none is configured.
const DefaultOutput = "validation_rules.xlsx"

// defaultOutputBase is DefaultOutput without its extension.
const defaultOutputBase = "validation_rules"

// DefaultOutputFor returns the output path used when none is configured,
// with an extension matching format.
func DefaultOutputFor(format ExportFormat) string {
	switch format {
	case FormatYAML:
		return defaultOutputBase + ".yaml"
	case FormatJSON:
		return defaultOutputBase + ".json"
	case FormatSQLite:
		return defaultOutputBase + ".db"
	default:
		return DefaultOutput
	}
}

// ParseExportFormat validates a user-supplied format name. The empty string
// selects FormatXLSX.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case "":
		return FormatXLSX, nil
	case FormatXLSX, FormatYAML, FormatJSON, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use xlsx, yaml, json, or sqlite", s)
	}
}

// ConversionConfig holds settings for one conversion run.
type ConversionConfig struct {
	// SkipInput is the path to the skip-logic workbook.
	SkipInput string `json:"skip_input" yaml:"skip_input"`

	// ConstructedInput is the path to the constructed-list script.
	ConstructedInput string `json:"constructed_input" yaml:"constructed_input"`

	// Output is the path of the generated rules file. Empty selects
	// DefaultOutputFor(Format).
	Output string `json:"output" yaml:"output"`

	// SkipSheet names the worksheet to read from SkipInput. Empty selects the first sheet.
	SkipSheet string `json:"skip_sheet,omitempty" yaml:"skip_sheet,omitempty"`

	// Format selects the output serialization (default xlsx).
	Format ExportFormat `json:"format" yaml:"format"`
}
