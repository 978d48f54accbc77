package sampler

import (
	"errors"
	"fmt"
)

// Mode selects which bias dimensions contribute to a link's score.
type Mode string

const (
	ModeBaseline   Mode = "baseline"
	ModeNameBiased Mode = "name-biased"
	ModeAttrBiased Mode = "attr-biased"
	ModeIndustry   Mode = "industry"
)

// ErrUnknownMode is returned by ParseMode for an unrecognised sample type.
var ErrUnknownMode = errors.New("unknown sample type")

// Modes lists every supported mode.
var Modes = []Mode{ModeBaseline, ModeNameBiased, ModeAttrBiased, ModeIndustry}

// ParseMode validates a sample type string.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of %v)", ErrUnknownMode, s, Modes)
}

// UsesName reports whether name similarity contributes to the score.
func (m Mode) UsesName() bool {
	return m == ModeNameBiased || m == ModeIndustry
}

// UsesAttr reports whether attribute richness contributes to the score.
func (m Mode) UsesAttr() bool {
	return m == ModeAttrBiased || m == ModeIndustry
}
