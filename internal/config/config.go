package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/untoldecay/eabench/internal/debug"
	"github.com/untoldecay/eabench/internal/sampler"
)

var v *viper.Viper

// Required keys. Everything else has a default.
const (
	KeySampleType    = "sample_type"
	KeySourceRootDir = "source_root_dir"
	KeyTargetRootDir = "target_root_dir"
	KeyBenchmark     = "benchmark"
	KeyTrainValRatio = "train_val_ratio"
	KeyAttrPivots    = "attr_pivots"
	KeySeed          = "seed"
)

// RatioNames are the train_val_ratio entries, in run order.
var RatioNames = []string{"1st", "2nd", "3rd"}

// DefaultSeed matches the seed the published benchmark splits were made with.
const DefaultSeed = 2048

// Initialize sets up the viper configuration singleton from the file at
// path. The format follows the extension and defaults to JSON.
// Environment variables prefixed with EAB_ override file values,
// e.g. EAB_SAMPLE_TYPE=industry.
func Initialize(path string) error {
	v = viper.New()

	configType := strings.TrimPrefix(filepath.Ext(path), ".")
	if configType == "" {
		configType = "json"
	}
	v.SetConfigType(configType)
	v.SetConfigFile(path)

	v.SetEnvPrefix("EAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySeed, DefaultSeed)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return &ConfigError{Msg: fmt.Sprintf("config file %s not found", path), Err: err}
		}
		return &ConfigError{Msg: fmt.Sprintf("error reading config file %s", path), Err: err}
	}
	debug.Logf("loaded config from %s", v.ConfigFileUsed())
	return nil
}

// RatioPair is one named (train, validation) ratio entry.
type RatioPair struct {
	Name  string  `json:"name" yaml:"name"`
	Train float64 `json:"train" yaml:"train"`
	Val   float64 `json:"val" yaml:"val"`
}

// Config is the typed view of the loaded configuration.
type Config struct {
	SampleType    sampler.Mode   `json:"sample_type" yaml:"sample_type"`
	SourceRootDir string         `json:"source_root_dir" yaml:"source_root_dir"`
	TargetRootDir string         `json:"target_root_dir" yaml:"target_root_dir"`
	Benchmarks    []string       `json:"benchmark" yaml:"benchmark"`
	Ratios        []RatioPair    `json:"train_val_ratio" yaml:"train_val_ratio"`
	Pivots        sampler.Pivots `json:"attr_pivots" yaml:"attr_pivots"`
	Seed          int64          `json:"seed" yaml:"seed"`
}

// Load validates the loaded settings and returns them as a Config.
func Load() (*Config, error) {
	if v == nil {
		return nil, &ConfigError{Msg: "config not initialized"}
	}
	for _, key := range []string{KeySampleType, KeySourceRootDir, KeyTargetRootDir, KeyBenchmark, KeyAttrPivots} {
		if !v.IsSet(key) {
			return nil, missingKey(key)
		}
	}

	mode, err := sampler.ParseMode(v.GetString(KeySampleType))
	if err != nil {
		return nil, &ConfigError{Key: KeySampleType, Msg: "invalid value", Err: err}
	}

	cfg := &Config{
		SampleType:    mode,
		SourceRootDir: v.GetString(KeySourceRootDir),
		TargetRootDir: v.GetString(KeyTargetRootDir),
		Benchmarks:    v.GetStringSlice(KeyBenchmark),
		Seed:          v.GetInt64(KeySeed),
	}
	if len(cfg.Benchmarks) == 0 {
		return nil, &ConfigError{Key: KeyBenchmark, Msg: "no benchmark datasets listed"}
	}

	for _, name := range RatioNames {
		key := KeyTrainValRatio + "." + name
		if !v.IsSet(key) {
			return nil, missingKey(key)
		}
		pair, err := floats(key, 2)
		if err != nil {
			return nil, err
		}
		for _, r := range pair {
			if r < 0 || r > 1 {
				return nil, &ConfigError{Key: key, Msg: fmt.Sprintf("ratio %v outside [0,1]", r)}
			}
		}
		cfg.Ratios = append(cfg.Ratios, RatioPair{Name: name, Train: pair[0], Val: pair[1]})
	}

	pivots, err := floats(KeyAttrPivots, 2)
	if err != nil {
		return nil, err
	}
	// attr_pivots is [upper, lower]
	cfg.Pivots = sampler.Pivots{Upper: pivots[0], Lower: pivots[1]}
	if cfg.Pivots.Lower > cfg.Pivots.Upper {
		return nil, &ConfigError{Key: KeyAttrPivots, Msg: fmt.Sprintf("expected [upper, lower], got [%v, %v]", pivots[0], pivots[1])}
	}

	return cfg, nil
}

// Plans expands the configuration into one sampling plan per dataset and
// ratio pair, in dataset-major order.
func (c *Config) Plans() []sampler.Plan {
	var plans []sampler.Plan
	for _, dataset := range c.Benchmarks {
		for _, r := range c.Ratios {
			plans = append(plans, sampler.Plan{
				Dataset:    dataset,
				Mode:       c.SampleType,
				TrainRatio: r.Train,
				ValRatio:   r.Val,
				Pivots:     c.Pivots,
				SourceDir:  filepath.Join(c.SourceRootDir, dataset),
				TargetDir:  filepath.Join(c.TargetRootDir, TargetDirName(dataset, c.SampleType, r.Train, r.Val)),
				Seed:       c.Seed,
			})
		}
	}
	return plans
}

// BenchmarkRoots returns the source directory of every configured dataset.
func (c *Config) BenchmarkRoots() []string {
	roots := make([]string, len(c.Benchmarks))
	for i, b := range c.Benchmarks {
		roots[i] = filepath.Join(c.SourceRootDir, b)
	}
	return roots
}

// TargetDirName names a plan's output directory, e.g.
// "D_W_15K_V1_industry_0.20_0.10".
func TargetDirName(dataset string, mode sampler.Mode, train, val float64) string {
	return fmt.Sprintf("%s_%s_%.2f_%.2f", dataset, mode, train, val)
}

// ParseTargetDirName reverses TargetDirName. ok is false when name does not
// end in a known sample type followed by two ratios.
func ParseTargetDirName(name string) (dataset string, mode sampler.Mode, train, val float64, ok bool) {
	parts := strings.Split(name, "_")
	if len(parts) < 4 {
		return "", "", 0, 0, false
	}
	n := len(parts)
	var err error
	if train, err = strconv.ParseFloat(parts[n-2], 64); err != nil {
		return "", "", 0, 0, false
	}
	if val, err = strconv.ParseFloat(parts[n-1], 64); err != nil {
		return "", "", 0, 0, false
	}
	if mode, err = sampler.ParseMode(parts[n-3]); err != nil {
		return "", "", 0, 0, false
	}
	return strings.Join(parts[:n-3], "_"), mode, train, val, true
}

// floats reads key as a list of exactly n numbers.
func floats(key string, n int) ([]float64, error) {
	raw, err := cast.ToSliceE(v.Get(key))
	if err != nil {
		return nil, &ConfigError{Key: key, Msg: "expected a list", Err: err}
	}
	if len(raw) != n {
		return nil, &ConfigError{Key: key, Msg: fmt.Sprintf("expected %d values, got %d", n, len(raw))}
	}
	out := make([]float64, n)
	for i, item := range raw {
		f, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, &ConfigError{Key: key, Msg: fmt.Sprintf("value %v is not a number", item), Err: err}
		}
		out[i] = f
	}
	return out, nil
}

// Set sets a configuration value. Values set here take precedence over the
// file and the environment, which is how command-line overrides are applied.
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}

// ConfigFileUsed returns the path of the loaded config file.
func ConfigFileUsed() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}
