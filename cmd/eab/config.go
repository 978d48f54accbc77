package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untoldecay/eabench/internal/config"
	"github.com/untoldecay/eabench/internal/sampler"
	"github.com/untoldecay/eabench/internal/ui"
	"gopkg.in/yaml.v3"
)

type resolvedConfig struct {
	File   string         `json:"file" yaml:"file"`
	Config *config.Config `json:"config" yaml:"config"`
	Plans  []sampler.Plan `json:"plans" yaml:"plans"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration and run plan",
	Long: `Print the configuration after file and EAB_* environment overrides are
applied, followed by every sampling run eab sample would perform.

Output is YAML by default, JSON with --json, or a tree of target
directories with --tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		resolved := resolvedConfig{File: config.ConfigFileUsed(), Config: cfg, Plans: cfg.Plans()}
		out := cmd.OutOrStdout()

		if tree, _ := cmd.Flags().GetBool("tree"); tree {
			fmt.Fprintln(out, ui.RenderPlanTree(cfg.TargetRootDir, resolved.Plans))
			return nil
		}
		if jsonOutput {
			return outputJSON(out, resolved)
		}
		data, err := yaml.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = out.Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().Bool("tree", false, "Show the run plan as a tree of target directories")
	rootCmd.AddCommand(configCmd)
}
