package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/untoldecay/eabench/internal/sampler"
)

// RenderSampleReport renders the per-split name and attribute bias of a
// sampling run as a header line and a table.
func RenderSampleReport(r *sampler.Report, width int) string {
	p := r.Plan
	header := fmt.Sprintf("<%s> %s  train_ratio: %s  val_ratio: %s  links: %d",
		RenderAccent(p.Dataset), p.Mode, formatRatio(p.TrainRatio), formatRatio(p.ValRatio), r.Links)

	t := NewReportTable(width, "split", "size", "same", "close", "diff", "large", "mid", "small")
	for _, s := range r.Splits {
		same, close, diff, nameOK := s.Names.Fractions()
		large, mid, small, attrOK := s.Attrs.Fractions()
		t.Row(
			s.Name,
			strconv.Itoa(s.Size),
			fraction(same, nameOK), fraction(close, nameOK), fraction(diff, nameOK),
			fraction(large, attrOK), fraction(mid, attrOK), fraction(small, attrOK),
		)
	}

	sections := []string{header, t.String()}
	if empty := emptySplits(r); len(empty) > 0 {
		sections = append(sections, RenderWarn("empty split(s): "+strings.Join(empty, ", ")))
	}
	sections = append(sections, RenderMuted(fmt.Sprintf("pivots: upper %s, lower %s  seed: %d  -> %s",
		formatRatio(p.Pivots.Upper), formatRatio(p.Pivots.Lower), p.Seed, p.TargetDir)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func emptySplits(r *sampler.Report) []string {
	var names []string
	for _, s := range r.Splits {
		if s.Size == 0 {
			names = append(names, s.Name)
		}
	}
	return names
}

func fraction(f float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", f)
}

func formatRatio(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
