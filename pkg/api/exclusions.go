package api

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LoadExclusionsFile reads a plain-text exclusion file: one pattern per
// line, blank lines and lines starting with '#' are skipped.
func LoadExclusionsFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening exclusions file: %w", err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading exclusions file: %w", err)
	}

	return patterns, nil
}

// Exclusions returns the merged exclusion set for the deployment: patterns
// from the exclusions file (resolved relative to the deployment directory)
// plus the inline exclude list, sorted and de-duplicated. The result is
// fixed for the duration of a run.
func (d *Deployment) Exclusions() ([]string, error) {
	var patterns []string

	if d.ExclusionsFile != "" {
		filename := d.ExclusionsFile
		if !filepath.IsAbs(filename) {
			filename = filepath.Join(d.Dir, filename)
		}
		fromFile, err := LoadExclusionsFile(filename)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, fromFile...)
	}

	patterns = append(patterns, d.Exclude...)

	slices.Sort(patterns)
	return slices.Compact(patterns), nil
}
