package resfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/lutpair/pkg/pairing"
)

// Write serializes pairs in the result format: the decimal pair count on the
// first line, then one "<first> <second>" line per pair in emission order.
// Unpaired instances produce no line and are not counted.
func Write(w io.Writer, pairs []pairing.Pair) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(pairs))
	for _, pair := range pairs {
		fmt.Fprintf(bw, "%s %s\n", pair.First.Name, pair.Second.Name)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("resfile: write: %w", err)
	}
	return nil
}

// WriteFile writes the pairing result for one netlist to path, replacing any
// previous result.
func WriteFile(path string, pairs []pairing.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("resfile: create: %w", err)
	}
	if err := Write(f, pairs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("resfile: close %s: %w", path, err)
	}
	return nil
}
