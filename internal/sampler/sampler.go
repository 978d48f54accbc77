// Package sampler produces biased train/validation/test splits of an
// entity-alignment benchmark. Links are scored on name similarity and/or
// attribute richness, sorted by descending score and cut into contiguous
// splits, so the highest-scoring links land in train.
package sampler

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/untoldecay/eabench/internal/attrs"
	"github.com/untoldecay/eabench/internal/debug"
	"github.com/untoldecay/eabench/internal/rdf"
)

// OutputLayout is where splits are written, relative to a target directory.
var OutputLayout = filepath.Join("721_5fold", "1")

// Plan is one resolved sampling run: a dataset under one ratio pair.
type Plan struct {
	Dataset    string  `json:"dataset" yaml:"dataset"`
	Mode       Mode    `json:"sample_type" yaml:"sample_type"`
	TrainRatio float64 `json:"train_ratio" yaml:"train_ratio"`
	ValRatio   float64 `json:"val_ratio" yaml:"val_ratio"`
	Pivots     Pivots  `json:"attr_pivots" yaml:"attr_pivots"`
	SourceDir  string  `json:"source_dir" yaml:"source_dir"`
	TargetDir  string  `json:"target_dir" yaml:"target_dir"`
	Seed       int64   `json:"seed" yaml:"seed"`
}

// SplitReport holds the bias statistics of one split.
type SplitReport struct {
	Name  string        `json:"name" yaml:"name"`
	Size  int           `json:"size" yaml:"size"`
	Names NameBiasStats `json:"name_bias" yaml:"name_bias"`
	Attrs AttrBiasStats `json:"attr_bias" yaml:"attr_bias"`
}

// Report summarises a sampling run or an analysis of existing splits.
type Report struct {
	Plan   Plan          `json:"plan" yaml:"plan"`
	Links  int           `json:"links" yaml:"links"`
	Splits []SplitReport `json:"splits" yaml:"splits"`
}

// splitFiles are the split names in output order.
var splitFiles = []struct{ name, file string }{
	{"train", rdf.TrainLinks},
	{"valid", rdf.ValidLinks},
	{"test", rdf.TestLinks},
}

// Run samples the benchmark already copied to plan.TargetDir and writes the
// three split files under OutputLayout, overwriting any previous output.
func Run(fs afero.Fs, plan Plan) (*Report, error) {
	if _, err := ParseMode(string(plan.Mode)); err != nil {
		return nil, err
	}
	links, err := readLinks(fs, filepath.Join(plan.TargetDir, rdf.EntLinks))
	if err != nil {
		return nil, err
	}
	scorer, err := newScorer(fs, plan)
	if err != nil {
		return nil, err
	}

	scored := scorer.ScoreAll(links)
	SortByScore(scored)
	train, val, test := Split(scored, plan.TrainRatio, plan.ValRatio)
	debug.Logf("%s: %d links -> train %d, valid %d, test %d", plan.TargetDir, len(scored), len(train), len(val), len(test))

	report := &Report{Plan: plan, Links: len(scored)}
	for i, part := range [][]ScoredLink{train, val, test} {
		sf := splitFiles[i]
		report.Splits = append(report.Splits, splitReport(scorer, sf.name, part))

		recs := make([]rdf.Record, len(part))
		for j, l := range part {
			recs[j] = l.Record()
		}
		path := filepath.Join(plan.TargetDir, OutputLayout, sf.file)
		if err := rdf.Write(fs, path, recs); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// Analyze recomputes the bias statistics of splits previously written under
// plan.TargetDir. Ratios and Mode in plan are not used.
func Analyze(fs afero.Fs, plan Plan) (*Report, error) {
	scorer, err := newScorer(fs, plan)
	if err != nil {
		return nil, err
	}
	report := &Report{Plan: plan}
	for _, sf := range splitFiles {
		recs, err := readLinks(fs, filepath.Join(plan.TargetDir, OutputLayout, sf.file))
		if err != nil {
			return nil, err
		}
		part := make([]ScoredLink, len(recs))
		for i, r := range recs {
			part[i] = ScoredLink{Left: r[0], Right: r[1]}
		}
		report.Links += len(part)
		report.Splits = append(report.Splits, splitReport(scorer, sf.name, part))
	}
	return report, nil
}

func newScorer(fs afero.Fs, plan Plan) (*Scorer, error) {
	var dicts [2]attrs.Dict
	for side := 1; side <= 2; side++ {
		triples, err := rdf.Read(fs, filepath.Join(plan.TargetDir, rdf.AttrTriples(side)))
		if err != nil {
			return nil, err
		}
		dicts[side-1] = attrs.Build(triples)
	}
	return &Scorer{
		Left:   dicts[0],
		Right:  dicts[1],
		Family: attrs.DetectFamily(plan.Dataset),
		Mode:   plan.Mode,
		Pivots: plan.Pivots,
	}, nil
}

// readLinks reads a link file and rejects records that are not pairs.
func readLinks(fs afero.Fs, path string) ([]rdf.Record, error) {
	recs, err := rdf.Read(fs, path)
	if err != nil {
		return nil, err
	}
	for i, r := range recs {
		if len(r) != 2 {
			return nil, fmt.Errorf("%s line %d: expected 2 fields, got %d", path, i+1, len(r))
		}
	}
	return recs, nil
}

func splitReport(s *Scorer, name string, part []ScoredLink) SplitReport {
	return SplitReport{
		Name:  name,
		Size:  len(part),
		Names: s.NameBias(part),
		Attrs: s.AttrBias(part),
	}
}
