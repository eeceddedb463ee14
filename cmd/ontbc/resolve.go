package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ontbc-go/pkg/ontbc"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/output"
)

var (
	outputPath   string
	outputFormat string
	pretty       bool
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve CELL",
		Short: "Print the resolved entry for a cell",
		Args:  cobra.ExactArgs(1),
		RunE:  runResolve,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json, yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, table, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	entry, err := ontbc.Resolve(args[0], table, cfg)
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}
	logger.Debug("resolved cell", "cell", entry.Cell, "profile", entry.Profile)

	var data []byte
	switch outputFormat {
	case "json":
		data, err = output.ToJSON(entry, pretty)
	case "yaml":
		data, err = output.ToYAML(entry)
	default:
		return fmt.Errorf("invalid format: %s (must be json or yaml)", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
