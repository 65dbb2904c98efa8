// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a full conversion: extract skip rules from the skip
// workbook, extract assignment rules from the constructed-list script, and
// export both as one ordered rule table.
package convert

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/dv-rules/internal/constructed"
	"github.com/pdiddy/dv-rules/internal/export"
	"github.com/pdiddy/dv-rules/internal/skiplogic"
	"github.com/pdiddy/dv-rules/pkg/types"
)

// Summary holds rule counts from a conversion run.
type Summary struct {
	SkipRules        int
	ConstructedRules int
}

// Total returns the number of rules exported.
func (s Summary) Total() int {
	return s.SkipRules + s.ConstructedRules
}

// Rules extracts both rule sets and concatenates them: all skip rules first,
// then all constructed-list rules, each in input order.
func Rules(cfg types.ConversionConfig, log *zap.Logger) ([]types.ValidationRule, Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}

	skipRules, err := skiplogic.ExtractFile(cfg.SkipInput, cfg.SkipSheet, log.Named("skiplogic"))
	if err != nil {
		return nil, Summary{}, err
	}
	listRules, err := constructed.ExtractFile(cfg.ConstructedInput, log.Named("constructed"))
	if err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{SkipRules: len(skipRules), ConstructedRules: len(listRules)}
	rules := make([]types.ValidationRule, 0, summary.Total())
	rules = append(rules, skipRules...)
	rules = append(rules, listRules...)
	return rules, summary, nil
}

// Result is the outcome of a successful Run.
type Result struct {
	Rules   []types.ValidationRule
	Summary Summary
	Output  string
}

// Run converts the configured inputs and writes the rule table to
// cfg.Output, then reports the output path on w. Extraction errors abort the
// run before anything is written.
func Run(ctx context.Context, cfg types.ConversionConfig, w io.Writer, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Format == "" {
		cfg.Format = types.FormatXLSX
	}
	if cfg.Output == "" {
		cfg.Output = types.DefaultOutputFor(cfg.Format)
	}

	rules, summary, err := Rules(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Debug("rules extracted",
		zap.Int("skip", summary.SkipRules), zap.Int("constructed", summary.ConstructedRules))

	if err := export.Write(ctx, cfg.Format, cfg.Output, rules); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Validation rules exported to %s\n", cfg.Output)
	return &Result{Rules: rules, Summary: summary, Output: cfg.Output}, nil
}
