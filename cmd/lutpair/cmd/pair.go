package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/OpenTraceLab/lutpair/internal/runner"
	"github.com/spf13/cobra"
)

var (
	outDir     string
	workers    int
	configPath string
)

var pairCmd = &cobra.Command{
	Use:   "pair [netlist-or-directory ...]",
	Short: "Pair LUT instances and write .res result files",
	Long: `Process one or more design_<N>.v netlists: extract GTP_LUT instances,
pair them greedily under the shared-input limit, and write each result to
design_<N>_syn.res. With no arguments the current directory is scanned.

Directories are scanned non-recursively for files matching design_<N>.v
(optionally gzip-compressed as design_<N>.v.gz). Files are processed in
parallel; summary lines are printed in input order.

Settings may also come from an HCL file (lutpair.hcl by default):

  out_dir = "results"
  workers = 4

Explicit flags override the settings file.

Examples:
  lutpair pair
  lutpair pair design_3.v
  lutpair pair build/ --out-dir results/
  lutpair pair -w 2 design_1.v design_2.v.gz`,
	RunE: runPair,
}

func init() {
	rootCmd.AddCommand(pairCmd)

	pairCmd.Flags().StringVarP(&outDir, "out-dir", "o", "",
		"directory for .res files (default: next to each input)")
	pairCmd.Flags().IntVarP(&workers, "workers", "w", 0,
		"parallel workers (default: CPU count)")
	pairCmd.Flags().StringVar(&configPath, "config", "",
		"HCL settings file (default: lutpair.hcl if present)")
}

func runPair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	jobs, err := collectJobs(args)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no design_<N>.v netlists found")
	}

	if verbose {
		fmt.Printf("Processing %d netlist(s) with %d worker(s)\n", len(jobs), cfg.Workers)
	}

	results := runner.Run(cfg, jobs)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Job.Path, res.Err)
			continue
		}
		fmt.Println(res.Summary())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d netlists failed", failed, len(results))
	}
	return nil
}

// loadConfig layers defaults, the optional HCL settings file, and explicit
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*runner.Config, error) {
	cfg := runner.DefaultConfig()

	path := configPath
	if path == "" {
		if _, err := os.Stat("lutpair.hcl"); err == nil {
			path = "lutpair.hcl"
		}
	}
	if path != "" {
		if err := cfg.LoadHCL(path); err != nil {
			return nil, err
		}
		slog.Debug("loaded settings file", "path", path)
	}

	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = outDir
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func collectJobs(args []string) ([]runner.Job, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var jobs []runner.Job
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := runner.DiscoverDir(arg)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, found...)
			continue
		}
		idx, ok := runner.MatchDesignFile(arg)
		if !ok {
			slog.Warn("skipping file, name does not match design_<N>.v", "path", arg)
			continue
		}
		jobs = append(jobs, runner.Job{Path: arg, Index: idx})
	}
	return jobs, nil
}
