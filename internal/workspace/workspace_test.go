package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/untoldecay/eabench/internal/sampler"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func seed(t *testing.T, mem afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if err := afero.WriteFile(mem, path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// seedDisk writes a one-link ent_links file at path, creating its parents.
func seedDisk(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, []byte("a\tb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPrepareCopiesEachPlan(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, map[string]string{
		"/src/D_W_15K_V1/ent_links":              "a\tb\n",
		"/src/D_W_15K_V1/attr_triples_1":         "a\tp\tv\n",
		"/src/D_W_15K_V1/721_5fold/1/test_links": "a\tb\n",
		"/dst/stale/leftover":                    "x",
	})
	plans := []sampler.Plan{
		{SourceDir: "/src/D_W_15K_V1", TargetDir: "/dst/D_W_15K_V1_baseline_0.20_0.10"},
		{SourceDir: "/src/D_W_15K_V1", TargetDir: "/dst/D_W_15K_V1_baseline_0.70_0.10"},
	}

	var copied []string
	if err := Prepare(mem, "/dst", plans, func(p sampler.Plan) { copied = append(copied, p.TargetDir) }); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(copied) != 2 {
		t.Errorf("callback called %d times, want 2", len(copied))
	}

	for _, p := range plans {
		for _, rel := range []string{"ent_links", "attr_triples_1", "721_5fold/1/test_links"} {
			data, err := afero.ReadFile(mem, p.TargetDir+"/"+rel)
			if err != nil {
				t.Errorf("%s/%s not copied: %v", p.TargetDir, rel, err)
				continue
			}
			orig, _ := afero.ReadFile(mem, p.SourceDir+"/"+rel)
			if string(data) != string(orig) {
				t.Errorf("%s/%s = %q, want %q", p.TargetDir, rel, data, orig)
			}
		}
	}
	if ok, _ := afero.Exists(mem, "/dst/stale/leftover"); ok {
		t.Error("stale content under target root should have been removed")
	}
}

func TestPrepareMissingSource(t *testing.T) {
	mem := afero.NewMemMapFs()
	plans := []sampler.Plan{{SourceDir: "/src/missing", TargetDir: "/dst/out"}}
	if err := Prepare(mem, "/dst", plans, nil); err == nil {
		t.Error("expected error for missing source directory")
	}
}

func TestPrepareRejectsUnsafeTarget(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, map[string]string{"/data/src/ent_links": "a\tb\n"})
	tests := []struct {
		name string
		root string
	}{
		{"empty", ""},
		{"filesystem root", "/"},
		{"parent of source", "/data"},
		{"source itself", "/data/src"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := []sampler.Plan{{SourceDir: "/data/src", TargetDir: "/data/src_out"}}
			err := Prepare(mem, tt.root, plans, nil)
			if !errors.Is(err, ErrUnsafeTarget) {
				t.Fatalf("Prepare(%q) error = %v, want ErrUnsafeTarget", tt.root, err)
			}
			if ok, _ := afero.Exists(mem, "/data/src/ent_links"); !ok {
				t.Fatal("source data was removed")
			}
		})
	}
}

func TestPrepareRejectsTargetHoldingRelativeSource(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	tests := []struct {
		name   string
		root   string
		source string
	}{
		{"absolute target, relative source", filepath.Join(dir, "data"), "data/src/D_W_15K_V1"},
		{"relative target, absolute source", "data", filepath.Join(dir, "data", "src", "D_W_15K_V1")},
		{"unclean relative source", filepath.Join(dir, "data"), "./other/../data/src/D_W_15K_V1"},
		{"working directory", ".", filepath.Join(dir, "elsewhere")},
		{"parent of working directory", "..", filepath.Join(dir, "src")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osFs := afero.NewOsFs()
			seedDisk(t, osFs, filepath.Join(tt.source, "ent_links"))
			plans := []sampler.Plan{{SourceDir: tt.source, TargetDir: filepath.Join(tt.root, "out")}}

			err := Prepare(osFs, tt.root, plans, nil)
			if !errors.Is(err, ErrUnsafeTarget) {
				t.Fatalf("Prepare(%q) with source %q error = %v, want ErrUnsafeTarget", tt.root, tt.source, err)
			}
			if ok, _ := afero.Exists(osFs, filepath.Join(tt.source, "ent_links")); !ok {
				t.Fatal("source data was removed")
			}
		})
	}
}

func TestPrepareAcceptsSiblingRelativeSource(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	osFs := afero.NewOsFs()
	seedDisk(t, osFs, "src/D_W_15K_V1/ent_links")
	target := filepath.Join(dir, "out")
	plans := []sampler.Plan{{SourceDir: "src/D_W_15K_V1", TargetDir: filepath.Join(target, "D_W_15K_V1_baseline_0.20_0.10")}}

	if err := Prepare(osFs, target, plans, nil); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if ok, _ := afero.Exists(osFs, filepath.Join(plans[0].TargetDir, "ent_links")); !ok {
		t.Error("ent_links not copied")
	}
}

func TestCopyDirRefusesExistingDestination(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, map[string]string{
		"/a/ent_links": "x\ty\n",
		"/b/ent_links": "old\n",
	})
	if err := CopyDir(mem, "/a", "/b"); err == nil {
		t.Error("expected error when destination exists")
	}
}
