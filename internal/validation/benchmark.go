// Package validation checks the structural integrity of an entity-alignment
// benchmark: link uniqueness, attribute and relation membership, and relation
// coverage of every linked entity.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/untoldecay/eabench/internal/debug"
	"github.com/untoldecay/eabench/internal/rdf"
)

// Check validates one aspect of the benchmark rooted at root.
// Checks can be composed using Chain().
type Check func(fs afero.Fs, root string) error

// Chain composes multiple checks into a single check.
// Checks are executed in order and the first error stops the chain.
func Chain(checks ...Check) Check {
	return func(fs afero.Fs, root string) error {
		for _, c := range checks {
			if err := c(fs, root); err != nil {
				return err
			}
		}
		return nil
	}
}

// CheckBenchmark runs the link, attribute and relation checks in that order.
func CheckBenchmark(fs afero.Fs, root string) error {
	return Chain(CheckLinks, CheckAttributes, CheckRelations)(fs, root)
}

// CheckLinks verifies ent_links: two fields per record, no entity linked
// twice on either side, and no repeated pair.
func CheckLinks(fs afero.Fs, root string) error {
	links, err := rdf.Read(fs, filepath.Join(root, rdf.EntLinks))
	if err != nil {
		return err
	}
	for i, rec := range links {
		if len(rec) != 2 {
			return fieldCountError(root, rdf.EntLinks, i, rec, 2)
		}
	}

	for side := 0; side < 2; side++ {
		seen := make(map[string]int, len(links))
		for i, rec := range links {
			if first, dup := seen[rec[side]]; dup {
				return &IntegrityError{
					Root:  root,
					File:  rdf.EntLinks,
					Rule:  RuleDuplicateEntity,
					Line:  i + 1,
					Value: rec[side],
					Msg:   fmt.Sprintf("side %d entity already linked at line %d", side+1, first+1),
				}
			}
			seen[rec[side]] = i
		}
	}

	if err := checkDuplicates(root, rdf.EntLinks, links); err != nil {
		return err
	}
	debug.Logf("%s: %d links ok", root, len(links))
	return nil
}

// CheckAttributes verifies attr_triples_1 and attr_triples_2: three fields per
// record, the subject linked on the same side, and no repeated triple.
func CheckAttributes(fs afero.Fs, root string) error {
	_, linked, err := linkedEntities(fs, root)
	if err != nil {
		return err
	}

	triples := make([][]rdf.Record, 2)
	for side := 1; side <= 2; side++ {
		name := rdf.AttrTriples(side)
		recs, err := rdf.Read(fs, filepath.Join(root, name))
		if err != nil {
			return err
		}
		for i, rec := range recs {
			if len(rec) != 3 {
				return fieldCountError(root, name, i, rec, 3)
			}
			if _, ok := linked[side-1][rec[0]]; !ok {
				return unlinkedError(root, name, i, rec[0])
			}
		}
		triples[side-1] = recs
	}

	for side := 1; side <= 2; side++ {
		if err := checkDuplicates(root, rdf.AttrTriples(side), triples[side-1]); err != nil {
			return err
		}
	}
	debug.Logf("%s: %d+%d attribute triples ok", root, len(triples[0]), len(triples[1]))
	return nil
}

// CheckRelations verifies rel_triples_1 and rel_triples_2: three fields per
// record, head and tail linked on the same side, no repeated triple, and every
// linked entity used as a head or tail at least once.
func CheckRelations(fs afero.Fs, root string) error {
	links, linked, err := linkedEntities(fs, root)
	if err != nil {
		return err
	}

	triples := make([][]rdf.Record, 2)
	for side := 1; side <= 2; side++ {
		name := rdf.RelTriples(side)
		recs, err := rdf.Read(fs, filepath.Join(root, name))
		if err != nil {
			return err
		}
		for i, rec := range recs {
			if len(rec) != 3 {
				return fieldCountError(root, name, i, rec, 3)
			}
			if _, ok := linked[side-1][rec[0]]; !ok {
				return unlinkedError(root, name, i, rec[0])
			}
			if _, ok := linked[side-1][rec[2]]; !ok {
				return unlinkedError(root, name, i, rec[2])
			}
		}
		triples[side-1] = recs
	}

	for side := 1; side <= 2; side++ {
		if err := checkDuplicates(root, rdf.RelTriples(side), triples[side-1]); err != nil {
			return err
		}
	}

	for side := 1; side <= 2; side++ {
		covered := make(map[string]struct{})
		for _, rec := range triples[side-1] {
			covered[rec[0]] = struct{}{}
			covered[rec[2]] = struct{}{}
		}
		for _, link := range links {
			ent := link[side-1]
			if _, ok := covered[ent]; !ok {
				return &IntegrityError{
					Root:  root,
					File:  rdf.RelTriples(side),
					Rule:  RuleUncoveredEntity,
					Value: ent,
					Msg:   "linked entity is neither head nor tail of any relation",
				}
			}
		}
	}
	debug.Logf("%s: %d+%d relation triples ok", root, len(triples[0]), len(triples[1]))
	return nil
}

// linkedEntities reads ent_links and returns it with its side 1 and side 2
// entity sets.
func linkedEntities(fs afero.Fs, root string) ([]rdf.Record, [2]map[string]struct{}, error) {
	var sets [2]map[string]struct{}
	links, err := rdf.Read(fs, filepath.Join(root, rdf.EntLinks))
	if err != nil {
		return nil, sets, err
	}
	sets[0] = make(map[string]struct{}, len(links))
	sets[1] = make(map[string]struct{}, len(links))
	for i, rec := range links {
		if len(rec) != 2 {
			return nil, sets, fieldCountError(root, rdf.EntLinks, i, rec, 2)
		}
		sets[0][rec[0]] = struct{}{}
		sets[1][rec[1]] = struct{}{}
	}
	return links, sets, nil
}

// checkDuplicates reports the first record that repeats an earlier one
// field for field.
func checkDuplicates(root, file string, recs []rdf.Record) error {
	seen := make(map[string]int, len(recs))
	for i, rec := range recs {
		key := strings.Join(rec, "\t")
		if first, dup := seen[key]; dup {
			return &IntegrityError{
				Root:  root,
				File:  file,
				Rule:  RuleDuplicateRecord,
				Line:  i + 1,
				Value: strings.Join(rec, " "),
				Msg:   fmt.Sprintf("repeats line %d", first+1),
			}
		}
		seen[key] = i
	}
	return nil
}

func fieldCountError(root, file string, idx int, rec rdf.Record, want int) error {
	return &IntegrityError{
		Root:  root,
		File:  file,
		Rule:  RuleFieldCount,
		Line:  idx + 1,
		Value: strings.Join(rec, " "),
		Msg:   fmt.Sprintf("expected %d fields, got %d", want, len(rec)),
	}
}

func unlinkedError(root, file string, idx int, ent string) error {
	return &IntegrityError{
		Root:  root,
		File:  file,
		Rule:  RuleUnlinkedEntity,
		Line:  idx + 1,
		Value: ent,
		Msg:   "entity does not appear in ent_links",
	}
}
