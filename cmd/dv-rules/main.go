// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dv-rules CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// envKeyReplacer maps nested config keys such as convert.output to
// DV_RULES_CONVERT_OUTPUT.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// logger carries diagnostics; it is replaced in PersistentPreRunE.
var logger = zap.NewNop()

// rootCmd is the base command for the dv-rules CLI.
var rootCmd = &cobra.Command{
	Use:   "dv-rules",
	Short: "Build data-validation rules from survey skip logic and constructed lists",
	Long: `dv-rules reads the survey authoring artifacts that describe skip logic
(a spreadsheet) and constructed lists (a text script) and writes a single
table of validation rules describing when each question should be blank,
answered, or assigned a list value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dv-rules.yaml or ~/.config/dv-rules/dv-rules.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log dropped rows and unmatched list lines")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dv-rules")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dv-rules"))
		}
	}

	viper.SetEnvPrefix("DV_RULES")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
