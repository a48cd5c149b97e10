package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q", want)
		}
	}
}

func TestCacheScope(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "dev", "abc123"
	if got := CacheScope(); got != "dev-abc123:" {
		t.Errorf("CacheScope() = %q", got)
	}

	Version = "v1.2.0"
	if got := CacheScope(); got != "v1.2.0:" {
		t.Errorf("CacheScope() = %q", got)
	}
}
