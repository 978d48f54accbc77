package sampler

// NameClass buckets the similarity of a link's two resolved names.
type NameClass int

const (
	NameDiff  NameClass = iota // similarity 0
	NameClose                  // strictly between 0 and 1
	NameSame                   // similarity 1
)

// ClassifyName buckets an edit-distance similarity in [0,1].
func ClassifyName(sim float64) NameClass {
	switch {
	case sim == 1.0:
		return NameSame
	case sim == 0.0:
		return NameDiff
	default:
		return NameClose
	}
}

// Contribution is the score a name class adds in name-biased modes.
func (c NameClass) Contribution() int {
	switch c {
	case NameSame:
		return 4
	case NameClose:
		return 3
	default:
		return 1
	}
}

// Pivots are the attribute-count thresholds. Averages at or below Lower are
// small, those in (Lower, Upper] are mid, and anything above Upper is large.
type Pivots struct {
	Upper float64 `json:"upper" yaml:"upper"`
	Lower float64 `json:"lower" yaml:"lower"`
}

// AttrClass buckets the average attribute count of a link's two entities.
type AttrClass int

const (
	AttrSmall AttrClass = iota
	AttrMid
	AttrLarge
)

// ClassifyAttr buckets an average attribute count against p.
func ClassifyAttr(avg float64, p Pivots) AttrClass {
	switch {
	case avg <= p.Lower:
		return AttrSmall
	case avg <= p.Upper:
		return AttrMid
	default:
		return AttrLarge
	}
}

// Contribution is the score an attribute class adds in attribute-biased modes.
func (c AttrClass) Contribution() int {
	switch c {
	case AttrLarge:
		return 4
	case AttrMid:
		return 3
	default:
		return 1
	}
}

// NameBiasStats counts links per name class.
type NameBiasStats struct {
	Same  int `json:"same" yaml:"same"`
	Close int `json:"close" yaml:"close"`
	Diff  int `json:"diff" yaml:"diff"`
}

// Total is the number of links counted.
func (s NameBiasStats) Total() int { return s.Same + s.Close + s.Diff }

// Fractions returns each class as a share of Total. ok is false for an empty
// split, in which case all fractions are zero.
func (s NameBiasStats) Fractions() (same, close, diff float64, ok bool) {
	n := s.Total()
	if n == 0 {
		return 0, 0, 0, false
	}
	return float64(s.Same) / float64(n), float64(s.Close) / float64(n), float64(s.Diff) / float64(n), true
}

// AttrBiasStats counts links per attribute class.
type AttrBiasStats struct {
	Large int `json:"large" yaml:"large"`
	Mid   int `json:"mid" yaml:"mid"`
	Small int `json:"small" yaml:"small"`
}

// Total is the number of links counted.
func (s AttrBiasStats) Total() int { return s.Large + s.Mid + s.Small }

// Fractions returns each class as a share of Total. ok is false for an empty
// split, in which case all fractions are zero.
func (s AttrBiasStats) Fractions() (large, mid, small float64, ok bool) {
	n := s.Total()
	if n == 0 {
		return 0, 0, 0, false
	}
	return float64(s.Large) / float64(n), float64(s.Mid) / float64(n), float64(s.Small) / float64(n), true
}
