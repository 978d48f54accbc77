package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untoldecay/eabench/internal/ui"
	"github.com/untoldecay/eabench/internal/validation"
)

// errChecksFailed is returned when at least one root has an integrity error.
var errChecksFailed = errors.New("benchmark checking failed")

type checkResultJSON struct {
	Root   string `json:"root"`
	Passed bool   `json:"passed"`
	Rule   string `json:"rule,omitempty"`
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the structural integrity of benchmark datasets",
	Long: `Validate every configured benchmark root, or the roots given with --root.

Each root must contain ent_links, attr_triples_1, attr_triples_2,
rel_triples_1 and rel_triples_2. A root is rejected on the first violation
(bad field count, duplicate entity or record, unlinked or uncovered entity).
Rejected roots do not stop the run; a missing or unreadable file does.

Examples:
  eab check
  eab check --root data/D_W_15K_V1 --root data/D_Y_15K_V1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, _ := cmd.Flags().GetStringSlice("root")
		if len(roots) == 0 {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}
			roots = cfg.BenchmarkRoots()
		}

		out := cmd.OutOrStdout()
		var results []ui.CheckResult
		for _, root := range roots {
			err := validation.CheckBenchmark(rootFs, root)
			var ie *validation.IntegrityError
			if err != nil && !errors.As(err, &ie) {
				return fmt.Errorf("checking %s: %w", root, err)
			}
			r := ui.CheckResult{Root: root, Err: err}
			results = append(results, r)
			if !jsonOutput {
				fmt.Fprintln(out, ui.RenderCheckLine(r))
			}
		}

		failed := 0
		for _, r := range results {
			if !r.Passed() {
				failed++
			}
		}

		if jsonOutput {
			if err := outputJSON(out, checkResultsJSON(results)); err != nil {
				return err
			}
		} else if len(results) > 1 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.RenderCheckReport(results, ui.GetWidth()))
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d root(s)", errChecksFailed, failed, len(results))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSlice("root", nil, "Benchmark root to check instead of the configured ones (repeatable)")
	rootCmd.AddCommand(checkCmd)
}

func checkResultsJSON(results []ui.CheckResult) []checkResultJSON {
	out := make([]checkResultJSON, 0, len(results))
	for _, r := range results {
		j := checkResultJSON{Root: r.Root, Passed: r.Passed()}
		var ie *validation.IntegrityError
		if errors.As(r.Err, &ie) {
			j.Rule = string(ie.Rule)
			j.File = ie.File
			j.Line = ie.Line
			j.Value = ie.Value
		}
		if r.Err != nil {
			j.Error = r.Err.Error()
		}
		out = append(out, j)
	}
	return out
}
