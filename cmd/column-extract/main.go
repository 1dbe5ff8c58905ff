// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the column-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/column-extract/internal/column"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts one CSV column into a blank-line separated text file.
var rootCmd = &cobra.Command{
	Use:   "column-extract <input.csv> <column> <output.txt>",
	Short: "Write one CSV column to a text file, one value per block",
	Long: `column-extract reads a CSV file whose first row is a header, selects the
named column from every data row, and writes each value followed by a blank
line to the output file. The output file is overwritten.

Rows that lack the column are reported on standard output and skipped.

When no arguments are given, the input, column and output values are read
from the config file or the COLUMN_EXTRACT_INPUT, COLUMN_EXTRACT_COLUMN and
COLUMN_EXTRACT_OUTPUT environment variables.`,
	Args:         cobra.MaximumNArgs(3),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, col, output, err := resolveParams(args)
		if err != nil {
			return err
		}
		_, err = column.Extract(input, col, output, cmd.OutOrStdout())
		return err
	},
}

// resolveParams returns the three run parameters from args, or from viper
// when args is empty. All three must be non-empty.
func resolveParams(args []string) (input, col, output string, err error) {
	switch len(args) {
	case 3:
		input, col, output = args[0], args[1], args[2]
	case 0:
		input = viper.GetString("input")
		col = viper.GetString("column")
		output = viper.GetString("output")
	default:
		return "", "", "", fmt.Errorf("expected 3 arguments (input, column, output), got %d", len(args))
	}

	if input == "" || col == "" || output == "" {
		return "", "", "", fmt.Errorf("input, column and output are all required")
	}
	return input, col, output, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./column-extract.yaml or ~/.config/column-extract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("column-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "column-extract"))
		}
	}

	viper.SetEnvPrefix("COLUMN_EXTRACT")
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
