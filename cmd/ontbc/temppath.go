package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ontbc-go/pkg/ontbc"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/fsutil"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

var (
	tempPrefix   string
	tempSuffix   string
	tempExistsOK bool
)

func newTempPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "temp-path CELL",
		Short: "Print the scratch path for a cell",
		Args:  cobra.ExactArgs(1),
		RunE:  runTempPath,
	}

	cmd.Flags().StringVar(&tempPrefix, "prefix", fsutil.DefaultTempPrefix, "Prefix placed before the cell name")
	cmd.Flags().StringVar(&tempSuffix, "suffix", "", "Suffix placed after the cell name")
	cmd.Flags().BoolVar(&tempExistsOK, "exists-ok", false, "Do not fail if the path already exists")

	return cmd
}

func runTempPath(cmd *cobra.Command, args []string) error {
	cfg, table, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	entry, err := ontbc.Resolve(args[0], table, cfg)
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	path, err := fsutil.TempPath(entry, cfg, fsutil.TempPathOptions{
		Prefix:   &tempPrefix,
		Suffix:   tempSuffix,
		ExistsOK: tempExistsOK,
		Env:      shell.OSEnv(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
