// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package constructed extracts list-assignment rules from a constructed-list
// script. The script is a sequence of blocks, each introduced by
// "List Name:", whose first line names the list and whose if-lines add a
// value to the list when a condition holds:
//
//	List Name:
//	Fruits
//	if(Q2==1){ADD(PARENTLISTNAME(),3)}
package constructed

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/dv-rules/pkg/types"
)

// BlockMarker introduces each list block.
const BlockMarker = "List Name:"

var (
	// ifPattern captures the condition and action of if(<cond>){<action>}.
	ifPattern = regexp.MustCompile(`^if\((.*?)\)\s*\{(.*?)\}`)

	// addPattern captures the value of ADD(<list>, <n>) inside an action.
	addPattern = regexp.MustCompile(`ADD\(.*?,\s*(\d+)\)`)
)

// ExtractFile reads the script at path and extracts its rules. UTF-8 input
// with or without a byte order mark is accepted, as is UTF-16 with a BOM.
func ExtractFile(path string, log *zap.Logger) ([]types.ValidationRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening constructed list %s: %w", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, fmt.Errorf("reading constructed list %s: %w", path, err)
	}
	return Extract(string(data), log), nil
}

// Extract returns one rule per if-line whose action adds a numeric value to
// the enclosing list. Text before the first marker is ignored, and lines that
// do not match the if(...){...ADD(..., n)...} shape from their first column
// are dropped. CRLF and lone CR line endings are treated as LF.
func Extract(content string, log *zap.Logger) []types.ValidationRule {
	if log == nil {
		log = zap.NewNop()
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	blocks := strings.Split(content, BlockMarker)

	var rules []types.ValidationRule
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		name := strings.TrimSpace(lines[0])
		if name == "" {
			log.Debug("dropping list block without a name")
			continue
		}

		for _, line := range lines {
			if !strings.HasPrefix(strings.TrimSpace(line), "if") {
				continue
			}

			// The shape must start at column 0; indented if-lines are dropped.
			m := ifPattern.FindStringSubmatch(line)
			if m == nil {
				log.Debug("ignoring if-line with unexpected shape",
					zap.String("list", name), zap.String("line", line))
				continue
			}
			condition, action := m[1], m[2]

			add := addPattern.FindStringSubmatch(action)
			if add == nil {
				log.Debug("ignoring if-line without ADD value",
					zap.String("list", name), zap.String("line", line))
				continue
			}

			rules = append(rules, types.ValidationRule{
				Question:  name,
				CheckType: types.CheckSkip,
				Condition: fmt.Sprintf("If %s then %s=%s", condition, name, add[1]),
			})
		}
	}
	return rules
}
