package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ontbc-go/pkg/ontbc"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/output"
)

var resolveCells bool

func newCellsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cells",
		Short: "List the cells of the cell table",
		Args:  cobra.NoArgs,
		RunE:  runCells,
	}

	cmd.Flags().BoolVar(&resolveCells, "resolve", false, "Resolve every cell and show its basecaller settings")

	return cmd
}

func runCells(cmd *cobra.Command, args []string) error {
	cfg, table, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	if !resolveCells {
		output.CellTable(cmd.OutOrStdout(), table)
		return nil
	}

	entries, err := ontbc.ResolveAll(cmd.Context(), table, cfg, loadOptions())
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}
	output.CellEntries(cmd.OutOrStdout(), entries)
	return nil
}
