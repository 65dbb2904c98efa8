// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes validation rules. The workbook writer is the
// primary output; YAML, JSON and SQLite writers carry the same rows for
// downstream tooling that does not read spreadsheets.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dv-rules/pkg/types"
)

// SheetName is the worksheet that holds the rules in workbook output.
const SheetName = "Validation Rules"

// Write serializes rules to path in the given format.
func Write(ctx context.Context, format types.ExportFormat, path string, rules []types.ValidationRule) error {
	switch format {
	case types.FormatXLSX, "":
		return WriteXLSX(path, rules)
	case types.FormatYAML:
		return WriteYAML(path, rules)
	case types.FormatJSON:
		return WriteJSON(path, rules)
	case types.FormatSQLite:
		return WriteSQLite(ctx, path, rules)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteXLSX writes a single-sheet workbook with a header row followed by one
// row per rule, in order.
func WriteXLSX(path string, rules []types.ValidationRule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming worksheet: %w", err)
	}

	header := types.Columns
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rules {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r.Row()
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing rule %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// WriteYAML writes the rules as a YAML sequence.
func WriteYAML(path string, rules []types.ValidationRule) error {
	data, err := yaml.Marshal(nonNil(rules))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes the rules as an indented JSON array.
func WriteJSON(path string, rules []types.ValidationRule) error {
	data, err := json.MarshalIndent(nonNil(rules), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func nonNil(rules []types.ValidationRule) []types.ValidationRule {
	if rules == nil {
		return []types.ValidationRule{}
	}
	return rules
}
