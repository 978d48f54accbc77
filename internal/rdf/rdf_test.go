package rdf

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestReadSplitsOnTabs(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := "http://a/x\tname\tX Y\n" +
		"http://a/y\thttp://b/y\r\n" +
		"\n" +
		"http://a/z\tp\t  padded value  \n" +
		"last\tline"
	if err := afero.WriteFile(mem, "/bench/attr_triples_1", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(mem, "/bench/attr_triples_1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []Record{
		{"http://a/x", "name", "X Y"},
		{"http://a/y", "http://b/y"},
		{""},
		{"http://a/z", "p", "  padded value"},
		{"last", "line"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(afero.NewMemMapFs(), "/nowhere/ent_links")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/empty", nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(mem, "/empty")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestWriteDropsThirdField(t *testing.T) {
	mem := afero.NewMemMapFs()
	records := []Record{
		{"e1", "f1", "8"},
		{"e2", "f2"},
	}
	if err := Write(mem, "/out/721_5fold/1/train_links", records); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := afero.ReadFile(mem, "/out/721_5fold/1/train_links")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "e1\tf1\ne2\tf2\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestWriteTruncatesExisting(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/out/test_links", []byte("old\tpair\nold2\tpair2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Write(mem, "/out/test_links", []Record{{"new", "pair"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := afero.ReadFile(mem, "/out/test_links")
	if got, want := string(data), "new\tpair\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	osFs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	pairs := []Record{
		{"http://dbpedia.org/resource/A", "http://www.wikidata.org/entity/Q1"},
		{"http://dbpedia.org/resource/B_(band)", "http://www.wikidata.org/entity/Q2"},
		{"http://dbpedia.org/resource/Émile", "http://www.wikidata.org/entity/Q3"},
	}
	if err := Write(osFs, "/ent_links", pairs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(osFs, "/ent_links")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(pairs, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
