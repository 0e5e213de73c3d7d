// Command found estimates a spacecraft's position from an image of Earth's
// limb and propagates that position forward in time.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UWCubeSat/found/internal/cliopts"
	"github.com/UWCubeSat/found/internal/execution"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "found",
		Short:         "Estimate and propagate a spacecraft's position from Earth limb imagery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalibrateCmd(), newDistanceCmd(), newOrbitCmd())
	return root
}

func newCalibrateCmd() *cobra.Command {
	var opts cliopts.CalibrationOptions
	cmd := &cobra.Command{
		Use:   "calibration",
		Short: "Compute the relative attitude between a local and a reference orientation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execution.RunCalibration(cmd.Context(), opts)
		},
	}
	cliopts.RegisterCalibrationFlags(cmd.Flags(), &opts)
	cmd.MarkFlagRequired("local-orientation")
	cmd.MarkFlagRequired("output-file")
	return cmd
}

func newDistanceCmd() *cobra.Command {
	var opts cliopts.DistanceOptions
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Recover a camera's position from an image of Earth's limb",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execution.RunDistance(cmd.Context(), opts)
		},
	}
	cliopts.RegisterDistanceFlags(cmd.Flags(), &opts)
	return cmd
}

func newOrbitCmd() *cobra.Command {
	var opts cliopts.OrbitOptions
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Propagate a position history forward in time via two-body dynamics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execution.RunOrbit(cmd.Context(), opts)
		},
	}
	cliopts.RegisterOrbitFlags(cmd.Flags(), &opts)
	return cmd
}
