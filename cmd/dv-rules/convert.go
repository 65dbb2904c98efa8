// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dv-rules/internal/convert"
	"github.com/pdiddy/dv-rules/internal/export"
	"github.com/pdiddy/dv-rules/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [skip-file] [constructed-list-file] [output]",
	Short: "Convert skip logic and constructed lists into validation rules",
	Long: `Convert reads the skip-logic spreadsheet (columns Skip From, Logic,
Skip To, Always Skip) and the constructed-list script (blocks introduced by
"List Name:") and writes one table of validation rules. Skip rules come
first, followed by constructed-list rules, each in input order.

Inputs may also be set in the config file under convert.skip_input and
convert.constructed_input, or through DV_RULES_CONVERT_SKIP_INPUT and
DV_RULES_CONVERT_CONSTRUCTED_INPUT.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := conversionConfig(args)
	if err != nil {
		return err
	}

	res, err := convert.Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	if preview, _ := cmd.Flags().GetBool("preview"); preview {
		return export.RenderTable(cmd.OutOrStdout(), res.Rules)
	}
	return nil
}

// conversionConfig merges positional arguments over flags, environment and
// config file values.
func conversionConfig(args []string) (types.ConversionConfig, error) {
	cfg := types.ConversionConfig{
		SkipInput:        viper.GetString("convert.skip_input"),
		ConstructedInput: viper.GetString("convert.constructed_input"),
		Output:           viper.GetString("convert.output"),
		SkipSheet:        viper.GetString("convert.sheet"),
	}
	for i, arg := range args {
		switch i {
		case 0:
			cfg.SkipInput = arg
		case 1:
			cfg.ConstructedInput = arg
		case 2:
			cfg.Output = arg
		}
	}

	if cfg.SkipInput == "" || cfg.ConstructedInput == "" {
		return cfg, fmt.Errorf("skip-file and constructed-list-file are required")
	}

	format, err := types.ParseExportFormat(viper.GetString("convert.format"))
	if err != nil {
		return cfg, err
	}
	cfg.Format = format
	return cfg, nil
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file for the rule table (default: validation_rules.<format extension>)")
	convertCmd.Flags().String("sheet", "", "worksheet to read from the skip file (default: first sheet)")
	convertCmd.Flags().String("format", string(types.FormatXLSX), "output format: xlsx, yaml, json, or sqlite")
	convertCmd.Flags().Bool("preview", false, "print the rules as a table after exporting")

	for key, flag := range map[string]string{
		"convert.output": "output",
		"convert.sheet":  "sheet",
		"convert.format": "format",
	} {
		if err := viper.BindPFlag(key, convertCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(convertCmd)
}
