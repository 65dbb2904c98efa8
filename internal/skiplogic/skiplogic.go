// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package skiplogic turns a skip-logic worksheet into validation rules.
// Each row names a source question, an opaque logic expression and the
// question that is skipped when the logic holds.
package skiplogic

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pdiddy/dv-rules/pkg/types"
)

// Worksheet column headers. Matching is exact after trimming whitespace.
const (
	ColSkipFrom   = "Skip From"
	ColLogic      = "Logic"
	ColSkipTo     = "Skip To"
	ColAlwaysSkip = "Always Skip"
)

// missingPlaceholder is the text some exporters write for an empty cell.
const missingPlaceholder = "nan"

// Row is one skip-logic entry with every field already trimmed.
type Row struct {
	SkipFrom   string
	Logic      string
	SkipTo     string
	AlwaysSkip string
}

// ExtractFile opens the workbook at path and extracts rules from sheet. An
// empty sheet name selects the first worksheet.
func ExtractFile(path, sheet string, log *zap.Logger) ([]types.ValidationRule, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening skip workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("skip workbook %s has no worksheets", path)
		}
		sheet = sheets[0]
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	if len(grid) == 0 {
		return nil, nil
	}
	return ExtractRows(grid[0], grid[1:], log), nil
}

// ExtractRows maps raw cell rows onto the header and extracts rules from
// them in row order.
func ExtractRows(header []string, grid [][]string, log *zap.Logger) []types.ValidationRule {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	cell := func(cells []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	rows := make([]Row, len(grid))
	for i, cells := range grid {
		rows[i] = Row{
			SkipFrom:   cell(cells, ColSkipFrom),
			Logic:      cell(cells, ColLogic),
			SkipTo:     cell(cells, ColSkipTo),
			AlwaysSkip: cell(cells, ColAlwaysSkip),
		}
	}
	return Extract(rows, log)
}

// Extract emits zero, one or two rules per row. Rows without a source or a
// target are dropped; an Always Skip of "1" yields one unconditional rule;
// otherwise usable logic yields a forward "blank" rule and a reverse
// "answered" rule.
func Extract(rows []Row, log *zap.Logger) []types.ValidationRule {
	if log == nil {
		log = zap.NewNop()
	}

	var rules []types.ValidationRule
	for i, r := range rows {
		// Worksheet row number, counting the header as row 1.
		line := i + 2

		if r.SkipFrom == "" || r.SkipTo == "" {
			log.Debug("dropping skip row without source or target",
				zap.Int("row", line), zap.String("skip_from", r.SkipFrom), zap.String("skip_to", r.SkipTo))
			continue
		}

		if r.AlwaysSkip == "1" {
			rules = append(rules, rule(r.SkipTo, fmt.Sprintf("If 1=1 then %s should be blank", r.SkipTo)))
			continue
		}

		if r.Logic == "" || strings.EqualFold(r.Logic, missingPlaceholder) {
			log.Debug("dropping skip row without logic", zap.Int("row", line), zap.String("skip_to", r.SkipTo))
			continue
		}

		rules = append(rules,
			rule(r.SkipTo, fmt.Sprintf("If %s then %s should be blank", r.Logic, r.SkipTo)),
			rule(r.SkipTo, fmt.Sprintf("If NOT(%s) then %s should be answered", r.Logic, r.SkipTo)),
		)
	}
	return rules
}

func rule(question, condition string) types.ValidationRule {
	return types.ValidationRule{
		Question:  question,
		CheckType: types.CheckSkip,
		Condition: condition,
	}
}
