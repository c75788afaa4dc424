// Package runner drives the per-netlist pipeline: read each testcase file,
// extract and pair its LUT instances, and write one .res result per netlist.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/lutpair/pkg/netlist"
	"github.com/OpenTraceLab/lutpair/pkg/pairing"
	"github.com/OpenTraceLab/lutpair/pkg/resfile"
)

// Result summarizes one processed netlist.
type Result struct {
	Job     Job
	LUTs    int
	Pairs   int
	OutPath string
	Elapsed time.Duration
	Err     error
}

// Summary renders the per-testcase report line.
func (r Result) Summary() string {
	return fmt.Sprintf("%s: LUTs=%d pairs=%d time=%.3f s -> %s",
		r.Job.Path, r.LUTs, r.Pairs, r.Elapsed.Seconds(), r.OutPath)
}

// Run processes every job and writes one .res file per netlist. Netlists are
// independent of each other, so they run concurrently under cfg.Workers;
// results come back indexed by job so the caller can report them in order,
// and the output files are identical to a sequential run.
func Run(cfg *Config, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = runOne(cfg, job)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// runOne runs the full pipeline for a single netlist file. Failures are
// carried in the Result rather than aborting the batch.
func runOne(cfg *Config, job Job) Result {
	start := time.Now()
	res := Result{Job: job}
	slog.Debug("processing netlist", "path", job.Path, "index", job.Index)

	text, err := ReadNetlist(job.Path)
	if err != nil {
		res.Err = err
		return res
	}

	instances := netlist.Extract(netlist.StripComments(text))
	pairs := pairing.Greedy(instances, pairing.MaxUnion)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = filepath.Dir(job.Path)
	}
	res.OutPath = filepath.Join(outDir, fmt.Sprintf("design_%d_syn.res", job.Index))
	if err := resfile.WriteFile(res.OutPath, pairs); err != nil {
		res.Err = err
		return res
	}

	res.LUTs = len(instances)
	res.Pairs = len(pairs)
	res.Elapsed = time.Since(start)
	return res
}

// ReadNetlist slurps a netlist file into memory, transparently decompressing
// .gz inputs. The pipeline works on whole-file text; there is no streaming
// mode.
func ReadNetlist(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("runner: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("runner: gunzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("runner: read %s: %w", path, err)
	}
	return string(data), nil
}
