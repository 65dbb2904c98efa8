// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/dv-rules/pkg/types"
)

// TableName is the table that holds the rules in SQLite output.
const TableName = "validation_rules"

const schemaSQL = `
CREATE TABLE validation_rules (
	position   INTEGER PRIMARY KEY,
	question   TEXT NOT NULL,
	check_type TEXT NOT NULL,
	condition  TEXT NOT NULL
);
CREATE INDEX idx_validation_rules_question ON validation_rules(question);
`

// WriteSQLite stores the rules in the validation_rules table of the database
// at path. The table is rebuilt on every call so reruns do not accumulate rows.
// position is the 1-based output order.
func WriteSQLite(ctx context.Context, path string, rules []types.ValidationRule) error {
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+TableName); err != nil {
		return fmt.Errorf("dropping %s: %w", TableName, err)
	}
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO validation_rules (position, question, check_type, condition) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rules {
		if _, err := stmt.ExecContext(ctx, i+1, r.Question, string(r.CheckType), r.Condition); err != nil {
			return fmt.Errorf("inserting rule %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rules: %w", err)
	}
	return nil
}

// uriEscaper escapes the characters SQLite URI filenames treat specially.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// sqliteDSN returns a file: URI for path so that a '?' in the file name is
// not read as the start of driver options.
func sqliteDSN(path string) string {
	return "file:" + uriEscaper.Replace(path)
}
