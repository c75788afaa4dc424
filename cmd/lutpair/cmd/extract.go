package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OpenTraceLab/lutpair/internal/runner"
	"github.com/OpenTraceLab/lutpair/pkg/netlist"
	"github.com/spf13/cobra"
)

var (
	showNets    bool
	extractJSON bool
)

// NetlistReport represents structured extraction output
type NetlistReport struct {
	File          string           `json:"file"`
	InstanceCount int              `json:"instance_count"`
	Instances     []InstanceReport `json:"instances"`
}

// InstanceReport represents one extracted LUT instance
type InstanceReport struct {
	Name   string   `json:"name"`
	Inputs []string `json:"inputs"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <netlist>",
	Short: "Extract LUT instances from a netlist",
	Long: `Scan a single Verilog netlist and list the GTP_LUT instances found,
without pairing them. Useful for inspecting what the pairing stage will
see.

Supports JSON output format for integration with other tools.

Examples:
  lutpair extract design_1.v
  lutpair extract --nets design_1.v
  lutpair extract --json design_1.v.gz`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVarP(&showNets, "nets", "n", false,
		"show the input nets of each instance")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false,
		"output as JSON (for programmatic access)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Extracting LUT instances from: %s\n\n", filename)
	}

	src, err := runner.ReadNetlist(filename)
	if err != nil {
		return fmt.Errorf("failed to read netlist: %w", err)
	}

	instances := netlist.Extract(netlist.StripComments(src))

	if extractJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(buildNetlistReport(filename, instances))
	}

	fmt.Printf("%s: %d LUT instance(s)\n", filename, len(instances))
	for _, inst := range instances {
		if showNets || verbose {
			fmt.Printf("  %-24s inputs=%d %v\n", inst.Name, len(inst.Inputs), inst.Inputs)
		} else {
			fmt.Printf("  %s\n", inst.Name)
		}
	}
	return nil
}

func buildNetlistReport(filename string, instances []*netlist.Instance) *NetlistReport {
	report := &NetlistReport{
		File:          filename,
		InstanceCount: len(instances),
		Instances:     make([]InstanceReport, len(instances)),
	}
	for i, inst := range instances {
		report.Instances[i] = InstanceReport{
			Name:   inst.Name,
			Inputs: inst.Inputs,
		}
	}
	return report
}
