// Package filelock guards the task file with advisory locks: writers take
// an exclusive lock, readers a shared one, so a reader never sees a file
// that is halfway through a rewrite.
package filelock

import "os"

const fileMode = 0o644

// File is an open file holding an advisory lock. Close releases it.
type File struct {
	*os.File
}

// Open opens path for writing under an exclusive lock, creating the file
// if needed. Existing content is kept; callers truncate once Open returns.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, fileMode) //nolint:gosec // data path from flag or config
	if err != nil {
		return nil, err
	}
	return acquire(f, true)
}

// OpenRead opens an existing file for reading under a shared lock. A
// missing file is reported as an os.ErrNotExist error.
func OpenRead(path string) (*File, error) {
	f, err := os.Open(path) //nolint:gosec // data path from flag or config
	if err != nil {
		return nil, err
	}
	return acquire(f, false)
}

func acquire(f *os.File, exclusive bool) (*File, error) {
	if err := lockFile(f, exclusive); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &File{File: f}, nil
}

// Close releases the lock and closes the file.
func (f *File) Close() error {
	unlockErr := unlockFile(f.File)
	closeErr := f.File.Close()
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
