package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pinchzoom",
	Short: "Pinch-to-zoom gesture engine tools",
	Long: `Tools for the pinchzoom gesture engine: replay recorded gesture scripts
without a display and inspect the resulting viewport transforms.

Examples:
  pinchzoom replay testdata/pinch.yaml                 # Print the transform after each step
  pinchzoom replay --config view.yaml --json tap.yaml  # Use a custom viewport, JSON output
  pinchzoom defaults > view.yaml                       # Write the default configuration`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine decisions to stderr")
}
