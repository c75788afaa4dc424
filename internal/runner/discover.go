package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Testcase netlists follow the fixed naming convention design_<digits>.v,
// optionally gzipped.
var designNameRegexp = regexp.MustCompile(`^design_(\d+)\.v(\.gz)?$`)

// Job is one netlist queued for processing: the path on disk plus the
// numeric testcase index parsed from its name. The index names the output
// file, so design_007.v still produces design_7_syn.res.
type Job struct {
	Path  string
	Index int
}

// MatchDesignFile parses the testcase index out of a netlist file name. The
// base name must match design_<digits>.v or design_<digits>.v.gz exactly.
func MatchDesignFile(path string) (int, bool) {
	m := designNameRegexp.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// DiscoverDir lists the testcase netlists directly inside dir, sorted by
// ascending testcase index. The scan is not recursive; a testcase directory
// holds its design files side by side.
func DiscoverDir(dir string) ([]Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("runner: scan %s: %w", dir, err)
	}

	var jobs []Job
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		idx, ok := MatchDesignFile(entry.Name())
		if !ok {
			continue
		}
		jobs = append(jobs, Job{Path: filepath.Join(dir, entry.Name()), Index: idx})
	}

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].Index != jobs[j].Index {
			return jobs[i].Index < jobs[j].Index
		}
		return jobs[i].Path < jobs[j].Path
	})
	return jobs, nil
}
