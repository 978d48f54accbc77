package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
)

// CheckResult is the outcome of validating one benchmark root.
type CheckResult struct {
	Root string `json:"root"`
	Err  error  `json:"-"`
}

// Passed reports whether the root passed every check.
func (r CheckResult) Passed() bool { return r.Err == nil }

// RenderCheckLine renders a single root's outcome.
func RenderCheckLine(r CheckResult) string {
	if r.Passed() {
		return RenderPass(PassMark()) + " benchmark checking passed " + r.Root
	}
	return RenderFail(FailMark()) + " benchmark checking failed " + r.Root + ": " + r.Err.Error()
}

// RenderCheckReport summarises a validation run: a list of roots with their
// status, then a box with the failures.
func RenderCheckReport(results []CheckResult, width int) string {
	var sections []string

	l := list.New().
		Enumerator(func(items list.Items, i int) string {
			if results[i].Passed() {
				return RenderPass(PassMark())
			}
			return RenderFail(FailMark())
		}).
		EnumeratorStyle(lipgloss.NewStyle().MarginRight(1))

	var failed []CheckResult
	for _, r := range results {
		l.Item(r.Root)
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	sections = append(sections, l.String(), "")

	passed := len(results) - len(failed)
	summary := fmt.Sprintf("%d passed, %d failed", passed, len(failed))
	if len(failed) == 0 {
		sections = append(sections, RenderPass(summary))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	sections = append(sections, RenderFail(summary))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorFail).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 2)
	}
	var lines []string
	for _, r := range failed {
		lines = append(lines, RenderAccent(r.Root), "  "+r.Err.Error())
	}
	sections = append(sections, box.Render(strings.Join(lines, "\n")))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
