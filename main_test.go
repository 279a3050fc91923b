package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cortex/favicons/internal/iconset"
)

func TestRunWritesIconSet(t *testing.T) {
	dir := t.TempDir()
	preview := filepath.Join(dir, "preview.png")

	if code := run([]string{"-public-dir", dir, "-preview", preview}); code != 0 {
		t.Fatalf("run exit code = %d", code)
	}

	want := []string{
		"favicon.ico",
		"apple-touch-icon.png",
		"apple-touch-icon-180x180.png",
		"assets/branding/icons/cortex-16x16.png",
		"assets/branding/icons/cortex-192x192.png",
		"preview.png",
	}
	for _, name := range want {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunCustomIconsDir(t *testing.T) {
	dir := t.TempDir()
	icons := filepath.Join(dir, "icons")
	if code := run([]string{"-public-dir", dir, "-icons-dir", icons}); code != 0 {
		t.Fatalf("run exit code = %d", code)
	}
	if _, err := os.Stat(filepath.Join(icons, "cortex-64x64.png")); err != nil {
		t.Error(err)
	}
}

func TestRunWriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"-public-dir", blocker}); code != 1 {
		t.Errorf("run exit code = %d, want 1", code)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code := run([]string{"-no-such-flag"}); code != 2 {
		t.Errorf("run exit code = %d, want 2", code)
	}
}

func TestRunBadEnv(t *testing.T) {
	t.Setenv(iconset.EnvDebug, "maybe")
	if code := run(nil); code != 2 {
		t.Errorf("run exit code = %d, want 2", code)
	}
}
