// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared across the conversion stages.
package types

// CheckType tags the kind of validation a rule performs.
type CheckType string

// CheckSkip is the only check type the converter emits today.
const CheckSkip CheckType = "Skip"

// ValidationRule is one declarative row of the output table. Question is the
// question or list the rule constrains; Condition is a human-readable
// statement such as "If Q1=2 then Q5 should be blank".
type ValidationRule struct {
	Question  string    `json:"question" yaml:"question"`
	CheckType CheckType `json:"check_type" yaml:"check_type"`
	Condition string    `json:"condition" yaml:"condition"`
}

// Columns lists the output column headers in export order.
var Columns = []string{"Question", "Check_Type", "Condition"}

// Row returns the rule's cells in Columns order.
func (r ValidationRule) Row() []string {
	return []string{r.Question, string(r.CheckType), r.Condition}
}
