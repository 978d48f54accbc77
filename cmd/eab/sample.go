package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/untoldecay/eabench/internal/config"
	"github.com/untoldecay/eabench/internal/debug"
	"github.com/untoldecay/eabench/internal/sampler"
	"github.com/untoldecay/eabench/internal/ui"
	"github.com/untoldecay/eabench/internal/workspace"
)

var errAborted = errors.New("aborted: target directory kept")

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample biased train/valid/test splits for every configured benchmark",
	Long: `Copy every configured benchmark into the target root and write
train_links, valid_links and test_links under 721_5fold/1 of each copy.

The target root is removed first. When it already exists you are asked to
confirm; pass --yes to skip the question (required outside a terminal).

One run is made per dataset and per train_val_ratio entry. Links are scored
according to sample_type, sorted by descending score and cut into
contiguous train, validation and test ranges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		overrides := map[string]interface{}{}
		if cmd.Flags().Changed("sample-type") {
			st, _ := cmd.Flags().GetString("sample-type")
			overrides[config.KeySampleType] = st
		}
		cfg, err := loadConfig(overrides)
		if err != nil {
			return err
		}
		plans := cfg.Plans()
		out := cmd.OutOrStdout()

		exists, err := afero.Exists(rootFs, cfg.TargetRootDir)
		if err != nil {
			return fmt.Errorf("stat %s: %w", cfg.TargetRootDir, err)
		}
		if exists && !yes {
			q := fmt.Sprintf("Remove existing target directory %s?", cfg.TargetRootDir)
			if !ui.Confirm(cmd.InOrStdin(), out, q, false, ui.IsTerminal()) {
				return errAborted
			}
		}

		err = workspace.Prepare(rootFs, cfg.TargetRootDir, plans, func(p sampler.Plan) {
			if !jsonOutput {
				fmt.Fprintf(out, "copy source data  dataset: %s  train ratio: %v  valid ratio: %v\n",
					p.Dataset, p.TrainRatio, p.ValRatio)
			}
		})
		if err != nil {
			return err
		}

		width := ui.GetWidth()
		reports := make([]*sampler.Report, 0, len(plans))
		for _, p := range plans {
			debug.Logf("sampling %s (%s, seed %d)", p.TargetDir, p.Mode, p.Seed)
			r, err := sampler.Run(rootFs, p)
			if err != nil {
				return fmt.Errorf("sampling %s: %w", p.Dataset, err)
			}
			reports = append(reports, r)
			if !jsonOutput {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.RenderSampleReport(r, width))
			}
		}

		if jsonOutput {
			return outputJSON(out, reports)
		}
		fmt.Fprintf(out, "\n%s %d split set(s) written under %s\n",
			ui.RenderPass(ui.PassMark()), len(reports), cfg.TargetRootDir)
		return nil
	},
}

func init() {
	sampleCmd.Flags().BoolP("yes", "y", false, "Remove the target root without asking")
	sampleCmd.Flags().String("sample-type", "", "Override sample_type (baseline, name-biased, attr-biased, industry)")
	rootCmd.AddCommand(sampleCmd)
}
