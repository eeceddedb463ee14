package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/config"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/gpu"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

var nvidiaSMIPath string

func newGPUCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gpu",
		Short: "Print the first free configured CUDA device",
		Args:  cobra.NoArgs,
		RunE:  runGPU,
	}

	cmd.Flags().StringVar(&nvidiaSMIPath, "nvidia-smi", "", "Path to nvidia-smi (default: search PATH)")

	return cmd
}

func runGPU(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, config.Options{})
	if err != nil {
		return err
	}

	candidates, err := gpu.Candidates(cfg, shell.OSEnv())
	if err != nil {
		return err
	}
	logger.Debug("selecting CUDA device", "candidates", candidates)

	device, err := gpu.Select(cmd.Context(), candidates, gpu.NvidiaSMI{Path: nvidiaSMIPath})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), device)
	return nil
}
