package attrs

import "strings"

// Family identifies which knowledge-graph pair a dataset was built from. It
// decides which attributes hold an entity's name.
type Family int

const (
	FamilyOther Family = iota
	FamilyY            // DBpedia-YAGO ("D_Y" datasets)
	FamilyW            // DBpedia-Wikidata ("D_W" datasets)
)

var nameKeys = map[Family][]string{
	FamilyY: {
		"skos:prefLabel",
		"http://dbpedia.org/ontology/birthName",
	},
	FamilyW: {
		"http://www.wikidata.org/entity/P373",
		"http://www.wikidata.org/entity/P1476",
	},
}

// DetectFamily classifies a dataset identifier such as "D_W_15K_V1".
func DetectFamily(dataset string) Family {
	switch {
	case strings.Contains(dataset, "D_Y"):
		return FamilyY
	case strings.Contains(dataset, "D_W"):
		return FamilyW
	default:
		return FamilyOther
	}
}

// NameKeys returns the ordered candidate attribute keys for the family.
func (f Family) NameKeys() []string {
	return nameKeys[f]
}

func (f Family) String() string {
	switch f {
	case FamilyY:
		return "D_Y"
	case FamilyW:
		return "D_W"
	default:
		return "other"
	}
}
