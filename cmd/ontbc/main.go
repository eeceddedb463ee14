// Package main provides the CLI entry point for ontbc.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ukaji3/ontbc-go/pkg/ontbc"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/config"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

var (
	configPath    string
	cellTablePath string
	overrides     []string
	sheet         string
	cellRange     string
	expandEnv     bool
	verbose       bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ontbc"})
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ontbc",
		Short: "Resolve basecalling parameters for sequencing cells",
		Long: `ontbc reads the cell table and pipeline configuration and resolves
each cell to its FAST5 input directory, profile and basecaller settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "config.yaml", "Pipeline config file (yaml, json or toml)")
	flags.StringVarP(&cellTablePath, "cell-table", "t", "cells.tsv", "Cell table (tsv, tsv.gz or xlsx)")
	flags.StringArrayVar(&overrides, "set", nil, "Override a config value (KEY=VALUE, repeatable)")
	flags.StringVar(&sheet, "sheet", "", "Sheet holding the cell table (xlsx only)")
	flags.StringVar(&cellRange, "range", "", "Cell range holding the cell table, e.g. A1:D40 (xlsx only)")
	flags.BoolVar(&expandEnv, "expand-env", false, "Expand $VAR references in fast5_dir and guppy_dir")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newResolveCmd(),
		newCellsCmd(),
		newTempPathCmd(),
		newGPUCmd(),
	)

	return rootCmd
}

func loadOptions() ontbc.Options {
	return ontbc.Options{
		Sheet:  sheet,
		Range:  cellRange,
		Logger: logger,
	}
}

// loadConfig reads the global config. A missing file is an empty config only
// when --config was left at its default.
func loadConfig(cmd *cobra.Command, opts config.Options) (*models.GlobalConfig, error) {
	opts.AllowMissing = !cmd.Flags().Changed("config")
	opts.Overrides = overrides
	opts.Logger = logger

	cfg, err := config.Load(configPath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadInputs reads the global config and the cell table named by the root flags.
func loadInputs(cmd *cobra.Command) (*models.GlobalConfig, *models.CellTable, error) {
	cfg, err := loadConfig(cmd, config.Options{
		ExpandEnv: expandEnv,
		Env:       shell.OSEnv(),
	})
	if err != nil {
		return nil, nil, err
	}

	table, err := ontbc.LoadCellTable(cellTablePath, loadOptions())
	if err != nil {
		return nil, nil, err
	}

	return cfg, table, nil
}
