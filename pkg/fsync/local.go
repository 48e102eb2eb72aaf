package fsync

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Local copies files within the local filesystem.
type Local struct{}

// Sync mirrors src into dst. Exclusion patterns are doublestar globs
// matched against slash-separated paths relative to src; a matched
// directory is skipped with its entire subtree. Existing destination files
// outside the copied set are left alone.
func (Local) Sync(src, dst string, exclusions []string, opts Options) error {
	m, err := newMatcher(exclusions)
	if err != nil {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("checking source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %s is not a directory", src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk error at %s: %w", path, err)
		}

		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return fmt.Errorf("computing relative path for %s: %w", path, relErr)
		}
		if rel == "." {
			return makeDir(dst, opts)
		}

		if m.excluded(rel) {
			slog.Debug("excluded from sync", "path", rel)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() && !opts.Recursive {
			return filepath.SkipDir
		}

		return copyEntry(dst, rel, path, d, opts)
	})
	if err != nil {
		return fmt.Errorf("syncing tree: %w", err)
	}
	return nil
}

func makeDir(target string, opts Options) error {
	if opts.DryRun {
		slog.Info("would create directory", "path", target)
		return nil
	}
	if err := os.MkdirAll(target, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", target, err)
	}
	return nil
}

func copyEntry(dst, rel, srcPath string, d fs.DirEntry, opts Options) error {
	target := filepath.Join(dst, rel)

	if d.IsDir() {
		return makeDir(target, opts)
	}

	if !opts.Overwrite {
		if _, err := os.Stat(target); err == nil {
			slog.Debug("destination exists, not overwriting", "path", target)
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", target, err)
		}
	}

	if opts.DryRun {
		slog.Info("would copy", "from", srcPath, "to", target)
		return nil
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("stat %s: %w", srcPath, err)
	}

	if err := os.WriteFile(target, data, info.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	slog.Debug("copied", "path", rel)
	return nil
}

type matcher struct {
	patterns []string
}

func newMatcher(patterns []string) (*matcher, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclusion pattern %q", p)
		}
	}
	return &matcher{patterns: patterns}, nil
}

// excluded reports whether the slash-relative path matches any exclusion
// pattern. A bare pattern without glob metacharacters also covers the
// subtree below a directory of that name.
func (m *matcher) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.ContainsAny(p, `*?[{`) {
			if ok, _ := doublestar.Match(p+"/**", rel); ok {
				return true
			}
		}
	}
	return false
}
