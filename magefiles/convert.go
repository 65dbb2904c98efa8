//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Default inputs for the Convert target.
const (
	skipInput        = "skip_logic.xlsx"
	constructedInput = "Print Study.txt"
	rulesOutput      = "validation_rules.xlsx"
)

// Convert builds validation rules from skip_logic.xlsx and "Print Study.txt"
// in the working directory.
func Convert() error {
	if err := sh.RunV("go", "run", cmdPkg, "convert", skipInput, constructedInput, rulesOutput); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	return nil
}
