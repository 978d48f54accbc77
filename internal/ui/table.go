package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table Styles
var (
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Align(lipgloss.Center)
	TableBorderStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// NewReportTable creates a table with the default report styling. The first
// column is left-aligned and bold, the rest are right-aligned numbers.
// A width of zero sizes the table to its content.
func NewReportTable(width int, headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			if col == 0 {
				return TableCellStyle.Bold(true).Align(lipgloss.Left)
			}
			return TableCellStyle.Align(lipgloss.Right)
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t
}
