package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/untoldecay/eabench/internal/config"
	"github.com/untoldecay/eabench/internal/sampler"
	"github.com/untoldecay/eabench/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats <target-dir>",
	Short: "Show name and attribute bias statistics of existing splits",
	Long: `Recompute the bias statistics of the splits that eab sample wrote under
<target-dir>/721_5fold/1.

The dataset, sample type and ratios are recovered from the directory name
when it follows the eab sample naming scheme. --dataset overrides the dataset
name, which selects the name attributes used for similarity. Attribute
pivots come from --pivots or, when not given, from the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		plan := sampler.Plan{TargetDir: dir, Dataset: filepath.Base(dir)}
		if ds, mode, train, val, ok := config.ParseTargetDirName(filepath.Base(dir)); ok {
			plan.Dataset, plan.Mode, plan.TrainRatio, plan.ValRatio = ds, mode, train, val
		}
		if cmd.Flags().Changed("dataset") {
			plan.Dataset, _ = cmd.Flags().GetString("dataset")
		}

		if cmd.Flags().Changed("pivots") {
			p, _ := cmd.Flags().GetFloat64Slice("pivots")
			if len(p) != 2 {
				return fmt.Errorf("--pivots takes two values (upper,lower), got %d", len(p))
			}
			if p[1] > p[0] {
				return fmt.Errorf("--pivots expects upper,lower, got %v,%v", p[0], p[1])
			}
			plan.Pivots = sampler.Pivots{Upper: p[0], Lower: p[1]}
		} else {
			cfg, err := loadConfig(nil)
			if err != nil {
				return fmt.Errorf("pivots not given and config unavailable: %w", err)
			}
			plan.Pivots = cfg.Pivots
			plan.Seed = cfg.Seed
		}

		report, err := sampler.Analyze(rootFs, plan)
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), report)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSampleReport(report, ui.GetWidth()))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("dataset", "", "Dataset name (default: taken from the directory name)")
	statsCmd.Flags().Float64Slice("pivots", nil, "Attribute pivots as upper,lower (default: attr_pivots from config)")
	rootCmd.AddCommand(statsCmd)
}
