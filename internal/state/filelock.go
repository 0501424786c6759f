package state

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileLock is an advisory flock(2) lock on a lock file.
type FileLock struct {
	file *os.File
	path string
}

// LockFile acquires an exclusive lock on path, creating the file if needed.
// It blocks until the lock is available. Call Unlock to release it.
func LockFile(path string) (*FileLock, error) {
	//nolint:gosec // G304: lock paths are derived from the config path
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for locking: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return &FileLock{file: f, path: path}, nil
}

// Unlock releases the lock and closes the lock file.
func (fl *FileLock) Unlock() error {
	if fl.file == nil {
		return nil
	}

	if err := syscall.Flock(int(fl.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = fl.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := fl.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	fl.file = nil
	return nil
}

// Path returns the path to the lock file.
func (fl *FileLock) Path() string {
	return fl.path
}

// WithLock runs fn while holding an exclusive lock on lockPath.
func WithLock(lockPath string, fn func() error) error {
	if err := EnsureDir(filepath.Dir(lockPath)); err != nil {
		return err
	}

	fl, err := LockFile(lockPath)
	if err != nil {
		return err
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}
