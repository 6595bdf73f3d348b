package flock

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathForIsDeterministic(t *testing.T) {
	a := PathFor("/tmp/locks", "/home/u/.cursor/mcp.json")
	b := PathFor("/tmp/locks", "/home/u/.cursor/mcp.json")
	if a != b {
		t.Fatalf("PathFor not deterministic: %q vs %q", a, b)
	}
	if filepath.Dir(a) != "/tmp/locks" {
		t.Fatalf("lock placed outside dir: %q", a)
	}
	if !strings.HasSuffix(a, ".lock") {
		t.Fatalf("lock path missing suffix: %q", a)
	}
}

func TestPathForDistinguishesTargets(t *testing.T) {
	a := PathFor("/tmp/locks", "/home/u/.cursor/mcp.json")
	b := PathFor("/tmp/locks", "/home/u/.gemini/settings.json")
	if a == b {
		t.Fatalf("different targets share a lock path: %q", a)
	}
}

func TestAcquireCreatesLockFileAndReleases(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "locks")
	path := PathFor(dir, "/home/u/.cursor/mcp.json")

	lock, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("lock file not created: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
}

func TestReleaseIsSafeToCallTwice(t *testing.T) {
	path := PathFor(t.TempDir(), "target")

	lock, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("first Release() error = %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("second Release() error = %v", err)
	}
}

func TestAcquireAfterReleaseSucceeds(t *testing.T) {
	path := PathFor(t.TempDir(), "target")

	first, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	second, err := Acquire(path)
	if err != nil {
		t.Fatalf("re-Acquire() error = %v", err)
	}
	if err := second.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
}
