package attrs

import (
	"testing"

	"github.com/untoldecay/eabench/internal/rdf"
)

func TestBuildLastWriteWins(t *testing.T) {
	d := Build([]rdf.Record{
		{"e1", "skos:prefLabel", "First"},
		{"e1", "http://dbpedia.org/ontology/birthName", "Born"},
		{"e1", "skos:prefLabel", "Second"},
		{"e2", "p", "v"},
		{"short", "record"},
	})

	if got := d["e1"]["skos:prefLabel"]; got != "Second" {
		t.Errorf("e1 prefLabel = %q, want %q", got, "Second")
	}
	if got := AttrCount("e1", d); got != 2 {
		t.Errorf("AttrCount(e1) = %d, want 2", got)
	}
	if got := AttrCount("e2", d); got != 1 {
		t.Errorf("AttrCount(e2) = %d, want 1", got)
	}
	if got := AttrCount("missing", d); got != 0 {
		t.Errorf("AttrCount(missing) = %d, want 0", got)
	}
	if _, ok := d["short"]; ok {
		t.Error("two-field record should not be indexed")
	}
}

func TestDetectFamily(t *testing.T) {
	tests := []struct {
		dataset  string
		expected Family
	}{
		{"D_Y_15K_V1", FamilyY},
		{"D_W_100K_V2", FamilyW},
		{"EN_FR_15K_V1", FamilyOther},
		{"", FamilyOther},
	}
	for _, tt := range tests {
		t.Run(tt.dataset, func(t *testing.T) {
			if got := DetectFamily(tt.dataset); got != tt.expected {
				t.Errorf("DetectFamily(%q) = %v, want %v", tt.dataset, got, tt.expected)
			}
		})
	}
}

func TestFallbackName(t *testing.T) {
	tests := []struct {
		ent      string
		expected string
	}{
		{"http://dbpedia.org/resource/New_York_City", "new york city"},
		{"http://www.wikidata.org/entity/Q60", "q60"},
		{"Plain_Name", "plain name"},
		{"http://example.org/trailing/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ent, func(t *testing.T) {
			if got := FallbackName(tt.ent); got != tt.expected {
				t.Errorf("FallbackName(%q) = %q, want %q", tt.ent, got, tt.expected)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	d := Build([]rdf.Record{
		{"http://dbpedia.org/resource/Ringo_Starr", "http://dbpedia.org/ontology/birthName", "Richard Starkey"},
		{"http://dbpedia.org/resource/Ringo_Starr", "skos:prefLabel", "Ringo STARR"},
		{"http://dbpedia.org/resource/Paris", "http://dbpedia.org/ontology/birthName", "Lutetia"},
		{"http://www.wikidata.org/entity/Q90", "http://www.wikidata.org/entity/P1476", "Paris (Title)"},
		{"http://dbpedia.org/resource/No_Name_Attr", "http://dbpedia.org/ontology/area", "105"},
	})

	tests := []struct {
		name     string
		ent      string
		family   Family
		expected string
	}{
		{"first candidate wins", "http://dbpedia.org/resource/Ringo_Starr", FamilyY, "ringo starr"},
		{"second candidate", "http://dbpedia.org/resource/Paris", FamilyY, "lutetia"},
		{"wikidata title", "http://www.wikidata.org/entity/Q90", FamilyW, "paris (title)"},
		{"family without candidates", "http://dbpedia.org/resource/Ringo_Starr", FamilyOther, "ringo starr"},
		{"wrong family keys", "http://www.wikidata.org/entity/Q90", FamilyY, "q90"},
		{"no name attribute", "http://dbpedia.org/resource/No_Name_Attr", FamilyY, "no name attr"},
		{"absent entity", "http://dbpedia.org/resource/Unknown_Thing", FamilyY, "unknown thing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(tt.ent, d, tt.family); got != tt.expected {
				t.Errorf("ResolveName(%q) = %q, want %q", tt.ent, got, tt.expected)
			}
		})
	}
}
