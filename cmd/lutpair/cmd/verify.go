package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/lutpair/internal/runner"
	"github.com/OpenTraceLab/lutpair/pkg/netlist"
	"github.com/OpenTraceLab/lutpair/pkg/pairing"
	"github.com/OpenTraceLab/lutpair/pkg/resfile"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <netlist> [result-file]",
	Short: "Check a pairing result against its netlist",
	Long: `Re-extract the LUT instances of a netlist and audit an existing .res
result file against them: every paired name must exist in the netlist, no
instance may appear in two pairs, and each pair must respect the
shared-input limit.

When the result file is omitted it is derived from the netlist name
(design_<N>.v checks design_<N>_syn.res in the same directory).

Examples:
  lutpair verify design_1.v
  lutpair verify design_1.v results/design_1_syn.res`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	netPath := args[0]

	var resPath string
	if len(args) == 2 {
		resPath = args[1]
	} else {
		idx, ok := runner.MatchDesignFile(netPath)
		if !ok {
			return fmt.Errorf("cannot derive result file name from %s, pass it explicitly", netPath)
		}
		resPath = filepath.Join(filepath.Dir(netPath), fmt.Sprintf("design_%d_syn.res", idx))
	}

	src, err := runner.ReadNetlist(netPath)
	if err != nil {
		return fmt.Errorf("failed to read netlist: %w", err)
	}
	instances := netlist.Extract(netlist.StripComments(src))

	parser, err := resfile.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	file, err := parser.ParseFile(resPath)
	if err != nil {
		return fmt.Errorf("failed to parse result file: %w", err)
	}

	violations := resfile.Audit(file, instances, pairing.MaxUnion)
	if len(violations) == 0 {
		fmt.Printf("%s: OK (%d pairs, %d LUTs)\n", resPath, len(file.Pairs), len(instances))
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(os.Stderr, v)
	}
	return fmt.Errorf("%s: %d violation(s)", resPath, len(violations))
}
