package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lutpair",
	Short: "LUT extraction and pairing for Verilog netlists",
	Long: `Scans synthesized Verilog netlists for GTP_LUT instances, collects the
nets wired to their I<N> input ports, and greedily pairs instances whose
combined inputs fit the six shared inputs of a dual-output slice.

Examples:
  lutpair pair                          # Process design_<N>.v files in the current directory
  lutpair pair build/ -o results/       # Scan a directory, write .res files elsewhere
  lutpair extract design_1.v --nets     # Show extracted instances and their input nets
  lutpair verify design_1.v             # Re-check design_1_syn.res against its netlist`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(setupLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging routes slog to stderr so progress chatter never mixes with
// result output on stdout.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
