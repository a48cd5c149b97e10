package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestCachePathCommand(t *testing.T) {
	customCache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", customCache)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != filepath.Join(customCache, appName) {
		t.Errorf("cache path printed %q", out)
	}
}

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	input := writeWide(t, t.TempDir())

	// Populate the cache with one render
	if _, err := execute(t, "render", input, "--dpi", "50"); err != nil {
		t.Fatalf("render: %v", err)
	}
	dir, _ := cacheDir()
	entries, _ := os.ReadDir(dir)
	if len(entries) == 0 {
		t.Fatal("render should have populated the cache")
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	entries, _ = os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache clear left %d entries", len(entries))
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(interface{ Dir() string }); ok {
		t.Error("--no-cache should give a null cache")
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(interface{ Dir() string }); !ok {
		t.Error("default cache should be file-backed")
	}
}
