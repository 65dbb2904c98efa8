// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package skiplogic

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/dv-rules/pkg/types"
)

func skip(question, condition string) types.ValidationRule {
	return types.ValidationRule{Question: question, CheckType: types.CheckSkip, Condition: condition}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want []types.ValidationRule
	}{
		{
			name: "logic yields forward and reverse rules",
			rows: []Row{{SkipFrom: "Q1", Logic: "Q1=2", SkipTo: "Q5"}},
			want: []types.ValidationRule{
				skip("Q5", "If Q1=2 then Q5 should be blank"),
				skip("Q5", "If NOT(Q1=2) then Q5 should be answered"),
			},
		},
		{
			name: "always skip ignores logic",
			rows: []Row{{SkipFrom: "Q1", Logic: "Q1=2", SkipTo: "Q7", AlwaysSkip: "1"}},
			want: []types.ValidationRule{
				skip("Q7", "If 1=1 then Q7 should be blank"),
			},
		},
		{
			name: "always skip without logic",
			rows: []Row{{SkipFrom: "Q1", SkipTo: "Q7", AlwaysSkip: "1"}},
			want: []types.ValidationRule{
				skip("Q7", "If 1=1 then Q7 should be blank"),
			},
		},
		{
			name: "missing skip from drops row",
			rows: []Row{{Logic: "Q1=2", SkipTo: "Q5", AlwaysSkip: "1"}},
		},
		{
			name: "missing skip to drops always skip row",
			rows: []Row{{SkipFrom: "Q1", Logic: "Q1=2", AlwaysSkip: "1"}},
		},
		{
			name: "empty logic emits nothing",
			rows: []Row{{SkipFrom: "Q1", SkipTo: "Q5"}},
		},
		{
			name: "nan placeholder is case-insensitive",
			rows: []Row{
				{SkipFrom: "Q1", Logic: "nan", SkipTo: "Q5"},
				{SkipFrom: "Q1", Logic: "NaN", SkipTo: "Q6"},
			},
		},
		{
			name: "always skip other than 1 falls through to logic",
			rows: []Row{{SkipFrom: "Q2", Logic: "Q2 in [3,4]", SkipTo: "Q3", AlwaysSkip: "0"}},
			want: []types.ValidationRule{
				skip("Q3", "If Q2 in [3,4] then Q3 should be blank"),
				skip("Q3", "If NOT(Q2 in [3,4]) then Q3 should be answered"),
			},
		},
		{
			name: "rows keep input order",
			rows: []Row{
				{SkipFrom: "Q1", SkipTo: "Q2", AlwaysSkip: "1"},
				{SkipFrom: "Q3", Logic: "Q3>1", SkipTo: "Q4"},
			},
			want: []types.ValidationRule{
				skip("Q2", "If 1=1 then Q2 should be blank"),
				skip("Q4", "If Q3>1 then Q4 should be blank"),
				skip("Q4", "If NOT(Q3>1) then Q4 should be answered"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.rows, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractLogsDroppedRows(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rows := []Row{
		{Logic: "Q1=2", SkipTo: "Q5"},
		{SkipFrom: "Q1", SkipTo: "Q5"},
	}

	got := Extract(rows, zap.New(core))

	assert.Empty(t, got)
	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, int64(2), entries[0].ContextMap()["row"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["row"])
}

func TestExtractRows(t *testing.T) {
	header := []string{"Skip From", " Logic ", "Skip To", "Always Skip", "Notes"}
	grid := [][]string{
		{"Q1", "Q1=2", " Q5 ", "", "keep"},
		{"", "Q1=3", "Q6"},
		{"Q2", "", "Q8", "1"},
		{"Q3", "Q3=1"}, // short row: Skip To missing
		{"Q4", "Q4=1", "Q10", " 1 "},
	}

	got := ExtractRows(header, grid, nil)

	want := []types.ValidationRule{
		skip("Q5", "If Q1=2 then Q5 should be blank"),
		skip("Q5", "If NOT(Q1=2) then Q5 should be answered"),
		skip("Q8", "If 1=1 then Q8 should be blank"),
		skip("Q10", "If 1=1 then Q10 should be blank"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractRowsMissingColumns(t *testing.T) {
	got := ExtractRows([]string{"Question", "Logic"}, [][]string{{"Q1", "Q1=2"}}, nil)
	assert.Empty(t, got)
}

// writeWorkbook saves rows to a new workbook under a temp dir and returns its path.
func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "skip_logic.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtractFile(t *testing.T) {
	path := writeWorkbook(t, "Skips", [][]any{
		{"Skip From", "Logic", "Skip To", "Always Skip"},
		{"Q1", "Q1=2", "Q5", nil},
		{"Q2", nil, "Q9", 1},
	})

	t.Run("first sheet by default", func(t *testing.T) {
		got, err := ExtractFile(path, "", nil)
		require.NoError(t, err)
		want := []types.ValidationRule{
			skip("Q5", "If Q1=2 then Q5 should be blank"),
			skip("Q5", "If NOT(Q1=2) then Q5 should be answered"),
			skip("Q9", "If 1=1 then Q9 should be blank"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ExtractFile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("named sheet", func(t *testing.T) {
		got, err := ExtractFile(path, "Skips", nil)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := ExtractFile(path, "Nope", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `sheet "Nope"`)
	})
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "absent.xlsx"), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening skip workbook")
}
