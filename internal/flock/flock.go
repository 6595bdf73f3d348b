// Package flock serializes read-modify-write cycles on client config
// files across concurrent mcpsync invocations. Locks live in the
// mcpsync config directory, keyed by a hash of the guarded path, so
// client directories are never littered with lock files.
package flock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// Lock is a held advisory lock.
type Lock struct {
	path string
	file *os.File
}

// PathFor returns the lock file path inside dir guarding target.
func PathFor(dir, target string) string {
	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(target)))
	return filepath.Join(dir, fmt.Sprintf("sync-%s.lock", hash[:12]))
}

// Acquire takes an exclusive lock at path, blocking until available.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	return &Lock{path: path, file: f}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
