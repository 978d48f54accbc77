package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/untoldecay/eabench/internal/sampler"
)

// BuildPlanTree groups sampling plans by dataset under a root labelled
// with the target root directory.
func BuildPlanTree(targetRoot string, plans []sampler.Plan) *tree.Tree {
	t := tree.New().Root(targetRoot)
	t.EnumeratorStyle(lipgloss.NewStyle().Foreground(ColorAccent))
	t.RootStyle(lipgloss.NewStyle().Bold(true).Foreground(ColorAccent))

	// Track dataset subtrees in first-seen order
	datasets := make(map[string]*tree.Tree)
	for _, p := range plans {
		sub, ok := datasets[p.Dataset]
		if !ok {
			sub = tree.New().Root(fmt.Sprintf("%s (%s)", p.Dataset, p.SourceDir))
			sub.EnumeratorStyle(lipgloss.NewStyle().Foreground(ColorMuted))
			datasets[p.Dataset] = sub
			t.Child(sub)
		}
		sub.Child(fmt.Sprintf("train %s / valid %s -> %s",
			formatRatio(p.TrainRatio), formatRatio(p.ValRatio), p.TargetDir))
	}
	return t
}

// RenderPlanTree renders plans with BuildPlanTree.
func RenderPlanTree(targetRoot string, plans []sampler.Plan) string {
	if len(plans) == 0 {
		return RenderMuted("No sampling plans.")
	}
	return BuildPlanTree(targetRoot, plans).String()
}
