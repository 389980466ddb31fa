package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "file.cmake")
	got, err := relativePath(target, baseDir)
	if err != nil {
		t.Fatalf("relativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	baseDir := t.TempDir()
	target := filepath.Join(baseDir, "nested", "file.cmake")

	got, err := relativePath(target, baseDir)
	if err != nil {
		t.Fatalf("relativePath returned error: %v", err)
	}
	if want := "nested/file.cmake"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestFormatPathModes(t *testing.T) {
	f := &File{Path: "dir/sub/CMakeLists.txt"}
	if got := f.FormatPath("basename", ""); got != "CMakeLists.txt" {
		t.Fatalf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != f.Path {
		t.Fatalf("auto = %q", got)
	}
	if got := f.FormatPath("bogus", ""); got != f.Path {
		t.Fatalf("default = %q", got)
	}
}
