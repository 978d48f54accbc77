package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/untoldecay/eabench/internal/sampler"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		defaultYes  bool
		interactive bool
		expected    bool
	}{
		{"yes", "y\n", false, true, true},
		{"YES", "YES\n", false, true, true},
		{"no", "no\n", true, true, false},
		{"empty takes default", "\n", true, true, true},
		{"garbage takes default", "maybe\n", false, true, false},
		{"eof takes default", "", true, true, true},
		{"non-interactive ignores input", "n\n", true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Remove target?", tt.defaultYes, tt.interactive)
			if got != tt.expected {
				t.Errorf("Confirm(%q) = %t, want %t", tt.input, got, tt.expected)
			}
			if !strings.Contains(out.String(), "Remove target?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestRenderSampleReport(t *testing.T) {
	r := &sampler.Report{
		Plan: sampler.Plan{
			Dataset:    "D_W_15K_V1",
			Mode:       sampler.ModeIndustry,
			TrainRatio: 0.7,
			ValRatio:   0.1,
			Pivots:     sampler.Pivots{Upper: 10, Lower: 4},
			TargetDir:  "/out/D_W_15K_V1_industry_0.70_0.10",
		},
		Links: 5,
		Splits: []sampler.SplitReport{
			{Name: "train", Size: 4, Names: sampler.NameBiasStats{Same: 3, Close: 1}, Attrs: sampler.AttrBiasStats{Large: 4}},
			{Name: "valid", Size: 0},
			{Name: "test", Size: 1, Names: sampler.NameBiasStats{Diff: 1}, Attrs: sampler.AttrBiasStats{Small: 1}},
		},
	}
	out := RenderSampleReport(r, 0)
	for _, want := range []string{"D_W_15K_V1", "industry", "0.75", "0.25", "1.00", "n/a", "empty split(s): valid", "seed: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCheckReport(t *testing.T) {
	results := []CheckResult{
		{Root: "/data/D_W_15K_V1"},
		{Root: "/data/D_Y_15K_V1", Err: errors.New("ent_links: duplicate-entity at line 3")},
	}
	out := RenderCheckReport(results, 0)
	for _, want := range []string{"/data/D_W_15K_V1", "/data/D_Y_15K_V1", "1 passed, 1 failed", "duplicate-entity at line 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	line := RenderCheckLine(results[0])
	if !strings.Contains(line, "benchmark checking passed /data/D_W_15K_V1") {
		t.Errorf("pass line = %q", line)
	}
}

func TestRenderPlanTree(t *testing.T) {
	plans := []sampler.Plan{
		{Dataset: "D_W_15K_V1", SourceDir: "/src/D_W_15K_V1", TrainRatio: 0.2, ValRatio: 0.1, TargetDir: "/dst/a"},
		{Dataset: "D_W_15K_V1", SourceDir: "/src/D_W_15K_V1", TrainRatio: 0.7, ValRatio: 0.1, TargetDir: "/dst/b"},
		{Dataset: "D_Y_15K_V1", SourceDir: "/src/D_Y_15K_V1", TrainRatio: 0.2, ValRatio: 0.1, TargetDir: "/dst/c"},
	}
	out := RenderPlanTree("/dst", plans)
	if strings.Count(out, "D_W_15K_V1 (") != 1 {
		t.Errorf("dataset D_W_15K_V1 should appear once as a subtree:\n%s", out)
	}
	for _, want := range []string{"/dst/a", "/dst/b", "/dst/c", "train 0.7 / valid 0.1"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
	if got := RenderPlanTree("/dst", nil); !strings.Contains(got, "No sampling plans") {
		t.Errorf("empty tree = %q", got)
	}
}

func TestColorFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		noColor    string
		clicolor   string
		forceColor string
		on, set    bool
	}{
		{"nothing set", "", "", "", false, false},
		{"NO_COLOR", "1", "", "", false, true},
		{"CLICOLOR=0", "", "0", "", false, true},
		{"CLICOLOR=1 alone", "", "1", "", false, false},
		{"CLICOLOR_FORCE", "", "", "1", true, true},
		{"NO_COLOR beats force", "1", "", "1", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("CLICOLOR", tt.clicolor)
			t.Setenv("CLICOLOR_FORCE", tt.forceColor)
			on, set := colorFromEnv()
			if on != tt.on || set != tt.set {
				t.Errorf("colorFromEnv() = (%v, %v), want (%v, %v)", on, set, tt.on, tt.set)
			}
		})
	}
}

func TestWidthFromEnv(t *testing.T) {
	tests := []struct {
		columns string
		want    int
	}{
		{"", defaultWidth},
		{"120", 120},
		{"0", defaultWidth},
		{"-5", defaultWidth},
		{"wide", defaultWidth},
	}
	for _, tt := range tests {
		t.Run("COLUMNS="+tt.columns, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			if got := widthFromEnv(); got != tt.want {
				t.Errorf("widthFromEnv() = %d, want %d", got, tt.want)
			}
		})
	}
}
