package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for name, c := range map[string]Cache{"null": NewNullCache(), "file": fc} {
		t.Run(name, func(t *testing.T) {
			if _, hit, err := c.Get(ctx, "key"); err != context.Canceled || hit {
				t.Errorf("Get = (%v, %v), want canceled miss", hit, err)
			}
			if err := c.Set(ctx, "key", []byte("v"), time.Hour); err != context.Canceled {
				t.Errorf("Set error = %v, want context.Canceled", err)
			}
		})
	}
	if _, hit, _ := fc.Get(context.Background(), "key"); hit {
		t.Error("canceled Set should not store an entry")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.tsv")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if got != Hash([]byte("hello")) {
		t.Errorf("HashFile = %s, want Hash of contents", got)
	}

	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("HashFile should fail for a missing file")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// Reshape options are part of the key
	rk1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Prefix: "Sample"})
	rk2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Prefix: "Sample", Drop: []string{"VALUE"}})
	if rk1 == rk2 {
		t.Error("Different drop lists should produce different keys")
	}
	if !strings.HasPrefix(rk1, "png:") {
		t.Errorf("ArtifactKey should be prefixed: %s", rk1)
	}

	// Plot options are part of the key
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Kind: "facet", DPI: 300})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Kind: "pairs", DPI: 300})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if ak1 != k.ArtifactKey("hash123", ArtifactKeyOpts{Kind: "facet", DPI: 300}) {
		t.Error("ArtifactKey should be deterministic")
	}
	if ak1 == k.ArtifactKey("hash456", ArtifactKeyOpts{Kind: "facet", DPI: 300}) {
		t.Error("Different input hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "v1.0.0:")

	// All keys should be prefixed
	want := "v1.0.0:" + inner.ArtifactKey("h", ArtifactKeyOpts{Prefix: "Sample"})
	if got := scoped.ArtifactKey("h", ArtifactKeyOpts{Prefix: "Sample"}); got != want {
		t.Errorf("ScopedKeyer ArtifactKey = %s, want %s", got, want)
	}

	ak := scoped.ArtifactKey("h", ArtifactKeyOpts{})
	if !strings.HasPrefix(ak, "v1.0.0:png:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{})
	if key != "prefix:"+NewDefaultKeyer().ArtifactKey("h", ArtifactKeyOpts{}) {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if c.Dir() != dir {
		t.Errorf("Dir = %s, want %s", c.Dir(), dir)
	}

	if _, hit, err := c.Get(ctx, "png:abc"); err != nil || hit {
		t.Fatalf("Get on empty cache: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "png:abc", []byte("image"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "png:abc")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "image" {
		t.Errorf("Get = %q, want %q", data, "image")
	}

	if err := c.Delete(ctx, "png:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "png:abc"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "png:abc"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path("k")), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry should be a silent miss: hit=%v err=%v", hit, err)
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get after Clear should miss")
	}
}
