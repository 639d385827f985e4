//go:build windows

package filelock

import (
	"errors"
	"math"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

const retryInterval = 5 * time.Millisecond

// lockFile locks the whole file. LockFileEx is called with
// LOCKFILE_FAIL_IMMEDIATELY and retried, so a blocked lock never parks the
// OS thread.
func lockFile(f *os.File, exclusive bool) error {
	flags := uint32(windows.LOCKFILE_FAIL_IMMEDIATELY)
	if exclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	for {
		err := windows.LockFileEx(windows.Handle(f.Fd()), flags, 0,
			math.MaxUint32, math.MaxUint32, new(windows.Overlapped))
		if !errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return err
		}
		time.Sleep(retryInterval)
	}
}

func unlockFile(f *os.File) error {
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0,
		math.MaxUint32, math.MaxUint32, new(windows.Overlapped))
}
