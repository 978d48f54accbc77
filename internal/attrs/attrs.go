// Package attrs indexes attribute triples per entity and resolves the display
// name and attribute count used by the bias scorers.
package attrs

import (
	"strings"

	"github.com/untoldecay/eabench/internal/rdf"
)

// Dict maps entity -> attribute key -> value for one side of a benchmark.
type Dict map[string]map[string]string

// Build folds (entity, key, value) triples into a Dict. A later triple for
// the same entity and key overwrites the earlier value. Records without three
// fields are ignored.
func Build(triples []rdf.Record) Dict {
	d := make(Dict)
	for _, t := range triples {
		if len(t) != 3 {
			continue
		}
		ent, key, value := t[0], t[1], t[2]
		if d[ent] == nil {
			d[ent] = make(map[string]string)
		}
		d[ent][key] = value
	}
	return d
}

// AttrCount returns the number of distinct attribute keys recorded for ent.
func AttrCount(ent string, d Dict) int {
	return len(d[ent])
}

// ResolveName returns the lower-cased name of ent. The family's candidate
// keys are tried in order; without a match the name is derived from the
// identifier itself.
func ResolveName(ent string, d Dict, family Family) string {
	values, ok := d[ent]
	if !ok {
		return FallbackName(ent)
	}
	for _, key := range family.NameKeys() {
		if v, ok := values[key]; ok {
			return strings.ToLower(v)
		}
	}
	return FallbackName(ent)
}

// FallbackName takes the segment after the last '/', turns underscores into
// spaces and lower-cases it: "http://dbpedia.org/resource/New_York" -> "new york".
func FallbackName(ent string) string {
	if i := strings.LastIndex(ent, "/"); i >= 0 {
		ent = ent[i+1:]
	}
	return strings.ToLower(strings.ReplaceAll(ent, "_", " "))
}
