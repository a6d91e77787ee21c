package kv

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore keeps each key in its own file under dir.
// Writes go through a temp file and a rename, under an exclusive lock.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store using the given directory.
// The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory holding the store's files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) valuePath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, "kaban.lock")
}

// Get reads the value for key. A missing file is not an error.
func (s *FileStore) Get(key string) (string, bool, error) {
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.valuePath(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the value for key atomically.
func (s *FileStore) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	return s.withLock(func() error {
		return s.write(key, []byte(value))
	})
}

// Close is a no-op; the file store holds no open handles between calls.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) write(key string, data []byte) error {
	path := s.valuePath(key)
	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", key, err)
	}

	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename %s: %w", key, err)
	}

	return nil
}

// withLock runs fn while holding an exclusive lock on the store directory.
func (s *FileStore) withLock(fn func() error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}
