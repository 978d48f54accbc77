package validation

import (
	"fmt"
	"strings"
)

// Rule names the benchmark invariant an IntegrityError reports.
type Rule string

const (
	RuleFieldCount      Rule = "field-count"
	RuleDuplicateEntity Rule = "duplicate-entity"
	RuleDuplicateRecord Rule = "duplicate-record"
	RuleUnlinkedEntity  Rule = "unlinked-entity"
	RuleUncoveredEntity Rule = "uncovered-entity"
)

// IntegrityError is returned when a benchmark file breaks one of its
// invariants. Line is 1-based and zero when the violation has no single line.
type IntegrityError struct {
	Root  string
	File  string
	Rule  Rule
	Line  int
	Value string
	Msg   string
}

func (e *IntegrityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.File, e.Rule)
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Msg != "" {
		fmt.Fprintf(&b, ": %s", e.Msg)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (%s)", e.Value)
	}
	return b.String()
}
