package sampler

import (
	"sort"
	"strconv"

	"github.com/untoldecay/eabench/internal/attrs"
	"github.com/untoldecay/eabench/internal/rdf"
	"github.com/untoldecay/eabench/internal/utils"
)

// ScoredLink is an ent_links pair annotated with its bias score.
type ScoredLink struct {
	Left  string
	Right string
	Score int
}

// Record returns the link as a three-field record; rdf.Write persists only
// the pair.
func (l ScoredLink) Record() rdf.Record {
	return rdf.Record{l.Left, l.Right, strconv.Itoa(l.Score)}
}

// Scorer computes bias classes and scores for links between two sides.
type Scorer struct {
	Left   attrs.Dict
	Right  attrs.Dict
	Family attrs.Family
	Mode   Mode
	Pivots Pivots
}

// NameSimilarity compares the resolved names of left and right.
func (s *Scorer) NameSimilarity(left, right string) float64 {
	return utils.Similarity(
		attrs.ResolveName(left, s.Left, s.Family),
		attrs.ResolveName(right, s.Right, s.Family),
	)
}

// AverageAttrCount is the mean number of attributes of left and right.
func (s *Scorer) AverageAttrCount(left, right string) float64 {
	return float64(attrs.AttrCount(left, s.Left)+attrs.AttrCount(right, s.Right)) / 2
}

// Score sums the name and attribute contributions enabled by the mode.
// Baseline links always score 0.
func (s *Scorer) Score(left, right string) int {
	score := 0
	if s.Mode.UsesName() {
		score += ClassifyName(s.NameSimilarity(left, right)).Contribution()
	}
	if s.Mode.UsesAttr() {
		score += ClassifyAttr(s.AverageAttrCount(left, right), s.Pivots).Contribution()
	}
	return score
}

// ScoreAll scores every link, keeping input order. Links must have two fields.
func (s *Scorer) ScoreAll(links []rdf.Record) []ScoredLink {
	scored := make([]ScoredLink, 0, len(links))
	for _, l := range links {
		scored = append(scored, ScoredLink{Left: l[0], Right: l[1], Score: s.Score(l[0], l[1])})
	}
	return scored
}

// NameBias tallies name classes over links regardless of mode.
func (s *Scorer) NameBias(links []ScoredLink) NameBiasStats {
	var st NameBiasStats
	for _, l := range links {
		switch ClassifyName(s.NameSimilarity(l.Left, l.Right)) {
		case NameSame:
			st.Same++
		case NameClose:
			st.Close++
		default:
			st.Diff++
		}
	}
	return st
}

// AttrBias tallies attribute classes over links regardless of mode.
func (s *Scorer) AttrBias(links []ScoredLink) AttrBiasStats {
	var st AttrBiasStats
	for _, l := range links {
		switch ClassifyAttr(s.AverageAttrCount(l.Left, l.Right), s.Pivots) {
		case AttrLarge:
			st.Large++
		case AttrMid:
			st.Mid++
		default:
			st.Small++
		}
	}
	return st
}

// SortByScore orders links by descending score with stable sorting, so
// equal scores keep their ent_links order.
func SortByScore(links []ScoredLink) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Score > links[j].Score
	})
}
