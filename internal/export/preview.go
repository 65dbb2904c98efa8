// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdiddy/dv-rules/pkg/types"
)

// RenderTable prints the rules as a terminal table followed by a row count.
func RenderTable(w io.Writer, rules []types.ValidationRule) error {
	if len(rules) == 0 {
		_, err := fmt.Fprintln(w, "(0 rules)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(types.Columns))
	for i, col := range types.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range rules {
		t.AppendRow(table.Row{r.Question, string(r.CheckType), r.Condition})
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d rules)\n", len(rules))
	return err
}
