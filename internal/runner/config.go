package runner

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config controls the batch driver. Start from DefaultConfig; the zero value
// leaves Workers unusable until Validate has run.
type Config struct {
	// OutDir receives the .res result files; empty writes each result
	// next to its input netlist.
	OutDir string

	// Workers bounds how many netlists are processed at once. Zero or
	// negative picks the CPU count.
	Workers int
}

// DefaultConfig returns the settings the tool runs with when nothing else is
// specified.
func DefaultConfig() *Config {
	return &Config{
		OutDir:  "",
		Workers: 0,
	}
}

// Validate normalizes the configuration and checks that the output
// directory, when set, exists.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutDir != "" {
		info, err := os.Stat(c.OutDir)
		if err != nil {
			return fmt.Errorf("runner: out dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("runner: out dir %s is not a directory", c.OutDir)
		}
	}
	return nil
}

// fileConfig mirrors the optional HCL settings file. All attributes are
// optional; pointer fields distinguish "absent" from an explicit zero.
type fileConfig struct {
	OutDir  *string `hcl:"out_dir,optional"`
	Workers *int    `hcl:"workers,optional"`
}

// LoadHCL overlays settings from an HCL file onto the config. Only
// attributes present in the file are applied, so flag handling can still
// override them afterwards.
func (c *Config) LoadHCL(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("runner: parse settings %s: %w", path, diags)
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return fmt.Errorf("runner: decode settings %s: %w", path, diags)
	}

	if fc.OutDir != nil {
		c.OutDir = *fc.OutDir
	}
	if fc.Workers != nil {
		c.Workers = *fc.Workers
	}
	return nil
}
