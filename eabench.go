// Package eabench provides a minimal public API for checking entity-alignment
// benchmarks and sampling biased splits from Go code.
//
// The eab command is built on the same packages. Callers that only need the
// command-line behaviour should run eab instead.
package eabench

import (
	"github.com/spf13/afero"
	"github.com/untoldecay/eabench/internal/config"
	"github.com/untoldecay/eabench/internal/sampler"
	"github.com/untoldecay/eabench/internal/validation"
	"github.com/untoldecay/eabench/internal/workspace"
)

// Mode selects how links are scored before splitting.
type Mode = sampler.Mode

// Sample modes
const (
	ModeBaseline   = sampler.ModeBaseline
	ModeNameBiased = sampler.ModeNameBiased
	ModeAttrBiased = sampler.ModeAttrBiased
	ModeIndustry   = sampler.ModeIndustry
)

// Pivots are the attribute-count thresholds used by the attribute-biased modes.
type Pivots = sampler.Pivots

// Plan is one sampling run for a dataset under a single ratio pair
type Plan = sampler.Plan

// Report carries the bias statistics of a sampling run
type Report = sampler.Report

// Config is the validated configuration file
type Config = config.Config

// IntegrityError is returned by CheckBenchmark for a structurally invalid benchmark.
type IntegrityError = validation.IntegrityError

// ConfigError is returned for missing or invalid configuration.
type ConfigError = config.ConfigError

// LoadConfig reads and validates the config file at path.
// EAB_* environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	if err := config.Initialize(path); err != nil {
		return nil, err
	}
	return config.Load()
}

// CheckBenchmark validates the benchmark rooted at root on the local disk.
func CheckBenchmark(root string) error {
	return validation.CheckBenchmark(afero.NewOsFs(), root)
}

// CheckBenchmarkFS is CheckBenchmark on an arbitrary filesystem.
func CheckBenchmarkFS(fs afero.Fs, root string) error {
	return validation.CheckBenchmark(fs, root)
}

// Sample copies every plan's source into place under targetRoot and writes
// its splits. targetRoot is removed first.
func Sample(fs afero.Fs, targetRoot string, plans []Plan) ([]*Report, error) {
	if err := workspace.Prepare(fs, targetRoot, plans, nil); err != nil {
		return nil, err
	}
	reports := make([]*Report, 0, len(plans))
	for _, p := range plans {
		r, err := sampler.Run(fs, p)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Analyze recomputes the statistics of splits already written for plan.
func Analyze(fs afero.Fs, plan Plan) (*Report, error) {
	return sampler.Analyze(fs, plan)
}
