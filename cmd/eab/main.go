// Command eab checks entity-alignment benchmarks and samples biased
// train/valid/test splits from them.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/untoldecay/eabench/internal/config"
	"github.com/untoldecay/eabench/internal/debug"
	"github.com/untoldecay/eabench/internal/ui"
)

var (
	configPath string
	debugMode  bool
	logFile    string
	jsonOutput bool
	noColor    bool

	// rootFs is the filesystem every command reads and writes through.
	rootFs afero.Fs = afero.NewOsFs()

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "eab",
	Short: "Entity-alignment benchmark checker and biased split sampler",
	Long: `eab validates entity-alignment benchmarks (ent_links, attr_triples_N,
rel_triples_N) and produces name- and attribute-biased train/valid/test splits.

Settings are read from a JSON config file (see --config) and can be
overridden with EAB_* environment variables, e.g. EAB_SAMPLE_TYPE=industry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			debug.SetEnabled(true)
		}
		if logFile != "" {
			logCloser = debug.UseLogFile(logFile, 10)
		}
		ui.ConfigureColor(noColor)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "Path to the JSON config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output (also EAB_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug output to a rotating log file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
		debug.SetOutput(nil)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var ce *config.ConfigError
		if errors.As(err, &ce) {
			fmt.Fprintf(os.Stderr, "Hint: check %s or the matching EAB_* environment variable\n", configPath)
		}
		os.Exit(1)
	}
}

// loadConfig initializes the config from --config and returns the typed view.
// overrides are applied with config.Set before validation.
func loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	if err := config.Initialize(configPath); err != nil {
		return nil, err
	}
	for k, val := range overrides {
		config.Set(k, val)
	}
	return config.Load()
}
