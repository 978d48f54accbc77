// Package workspace prepares sampling targets by copying each source
// benchmark into its own target directory.
package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/untoldecay/eabench/internal/debug"
	"github.com/untoldecay/eabench/internal/sampler"
)

// ErrUnsafeTarget is returned when removing the target root would also
// remove source data.
var ErrUnsafeTarget = errors.New("unsafe target directory")

// Prepare removes targetRoot and copies every plan's SourceDir to its
// TargetDir. Any previous content of targetRoot is lost. copied, if non-nil,
// is called after each plan's copy completes.
func Prepare(fs afero.Fs, targetRoot string, plans []sampler.Plan, copied func(sampler.Plan)) error {
	if err := checkTarget(targetRoot, plans); err != nil {
		return err
	}
	if err := fs.RemoveAll(targetRoot); err != nil {
		return fmt.Errorf("remove %s: %w", targetRoot, err)
	}
	for _, p := range plans {
		if err := fs.RemoveAll(p.TargetDir); err != nil {
			return fmt.Errorf("remove %s: %w", p.TargetDir, err)
		}
		if err := CopyDir(fs, p.SourceDir, p.TargetDir); err != nil {
			return err
		}
		debug.Logf("copied %s -> %s", p.SourceDir, p.TargetDir)
		if copied != nil {
			copied(p)
		}
	}
	return nil
}

// CopyDir recursively copies src to dst. dst must not exist.
func CopyDir(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("copy %s: not a directory", src)
	}
	if _, err := fs.Stat(dst); err == nil {
		return fmt.Errorf("copy %s: destination %s already exists", src, dst)
	}

	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return fs.MkdirAll(target, info.Mode().Perm()|0o700)
		}
		return copyFile(fs, path, target, info.Mode().Perm())
	})
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

// checkTarget rejects an empty target root, the filesystem root, and any
// target root that contains or equals a source directory. Both sides are
// compared as absolute paths so relative and absolute spellings of the same
// location match.
func checkTarget(targetRoot string, plans []sampler.Plan) error {
	if targetRoot == "" {
		return fmt.Errorf("%w: %q", ErrUnsafeTarget, targetRoot)
	}
	target, err := filepath.Abs(targetRoot)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnsafeTarget, targetRoot, err)
	}
	if target == filepath.VolumeName(target)+string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafeTarget, targetRoot)
	}
	if cwd, err := os.Getwd(); err == nil && isWithin(cwd, target) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeTarget, targetRoot)
	}
	for _, p := range plans {
		src, err := filepath.Abs(p.SourceDir)
		if err != nil {
			return fmt.Errorf("%w: source %s: %v", ErrUnsafeTarget, p.SourceDir, err)
		}
		if isWithin(src, target) {
			return fmt.Errorf("%w: %s contains source %s", ErrUnsafeTarget, targetRoot, p.SourceDir)
		}
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it. Both must be
// absolute and clean.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
