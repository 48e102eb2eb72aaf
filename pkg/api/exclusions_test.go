package api

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadExclusionsFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "exclusions.txt")
	content := `# destination-only data
uploads

**/*.log
  .env
`
	if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	patterns, err := LoadExclusionsFile(filename)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"uploads", "**/*.log", ".env"}
	if !slices.Equal(patterns, want) {
		t.Fatalf("expected %v, got %v", want, patterns)
	}
}

func TestLoadExclusionsFile_Missing(t *testing.T) {
	_, err := LoadExclusionsFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "opening exclusions file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExclusions_MergedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "exclusions.txt"), []byte("uploads\n.env\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	d := &Deployment{
		Dir:            dir,
		ExclusionsFile: "exclusions.txt",
		Exclude:        []string{"uploads", "**/*.log"},
	}

	patterns, err := d.Exclusions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"**/*.log", ".env", "uploads"}
	if !slices.Equal(patterns, want) {
		t.Fatalf("expected %v, got %v", want, patterns)
	}
}

func TestExclusions_InlineOnly(t *testing.T) {
	d := &Deployment{Exclude: []string{"uploads"}}

	patterns, err := d.Exclusions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(patterns, []string{"uploads"}) {
		t.Fatalf("expected [uploads], got %v", patterns)
	}
}

func TestExclusions_AbsoluteFilePath(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "excl.txt")
	if err := os.WriteFile(filename, []byte("uploads\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Dir deliberately points elsewhere; the absolute path must win.
	d := &Deployment{Dir: t.TempDir(), ExclusionsFile: filename}

	patterns, err := d.Exclusions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(patterns, []string{"uploads"}) {
		t.Fatalf("expected [uploads], got %v", patterns)
	}
}
