// Package rdf reads and writes the tab-separated triple files that make up an
// entity-alignment benchmark (ent_links, attr_triples_N, rel_triples_N and the
// split link files).
package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Benchmark file names, relative to a benchmark root directory.
const (
	EntLinks   = "ent_links"
	TrainLinks = "train_links"
	ValidLinks = "valid_links"
	TestLinks  = "test_links"
)

// AttrTriples returns the attribute file name for side 1 or 2.
func AttrTriples(side int) string { return fmt.Sprintf("attr_triples_%d", side) }

// RelTriples returns the relation file name for side 1 or 2.
func RelTriples(side int) string { return fmt.Sprintf("rel_triples_%d", side) }

// Record is one line of a triple file split on tabs. Link files carry two
// fields, attribute and relation files carry three.
type Record []string

// Read loads every line of path as a Record. Surrounding whitespace is
// trimmed before splitting; field counts are not checked here.
func Read(fs afero.Fs, path string) ([]Record, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			records = append(records, Record(strings.Split(strings.TrimSpace(line), "\t")))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return records, nil
}

// Write truncates path and writes records one per line. Three-field records
// are cut to their first two fields so only the entity pair is persisted.
// Missing parent directories are created.
func Write(fs afero.Fs, path string, records []Record) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, rec := range records {
		if len(rec) == 3 {
			rec = rec[:2]
		}
		if _, err := w.WriteString(strings.Join(rec, "\t")); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
