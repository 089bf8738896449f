//go:build unix

package filelock

import (
	"errors"
	"fmt"
	"loglib/internal/global"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Appends data to the locked file. Blocks until the lock is held and confirmed.
func (lock *Lock) Append(data []byte) (err error) {
	retry, confirm, maxConfirmations := lock.settings()

	for attempt := 0; attempt < maxConfirmations; attempt++ {
		var file *os.File
		file, err = os.OpenFile(lock.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, global.LogFilePerm)
		if err != nil {
			err = fmt.Errorf("%w: failed to open log file %q: %w", global.ErrLogging, lock.Path, err)
			return
		}
		fd := int(file.Fd())

		err = lock.acquire(fd, retry)
		if err != nil {
			_ = file.Close()
			err = fmt.Errorf("%w: failed to lock log file %q: %w", global.ErrLogging, lock.Path, err)
			return
		}

		// Second non-blocking attempt after a pause confirms nobody raced in between
		time.Sleep(confirm)
		err = confirmLock(fd)
		if err != nil {
			_ = unix.Flock(fd, unix.LOCK_UN)
			_ = file.Close()
			lock.counters().Restarts.Add(1)
			err = nil
			continue
		}

		err = writeAll(file, data)
		unlockErr := unix.Flock(fd, unix.LOCK_UN)
		closeErr := file.Close()
		if err != nil {
			err = fmt.Errorf("%w: failed to write log file %q: %w", global.ErrLogging, lock.Path, err)
			return
		}
		if unlockErr != nil {
			err = fmt.Errorf("%w: failed to unlock log file %q: %w", global.ErrLogging, lock.Path, unlockErr)
			return
		}
		if closeErr != nil {
			err = fmt.Errorf("%w: failed to close log file %q: %w", global.ErrLogging, lock.Path, closeErr)
			return
		}
		lock.counters().Appends.Add(1)
		return
	}

	err = fmt.Errorf("%w: lock on %q could not be confirmed after %d attempts", global.ErrLogging, lock.Path, maxConfirmations)
	return
}

// Retries the non-blocking exclusive lock until it is granted. No upper bound.
func (lock *Lock) acquire(fd int, retry time.Duration) (err error) {
	for {
		err = tryLock(fd)
		if err == nil {
			return
		}
		if !errors.Is(err, unix.EWOULDBLOCK) {
			return
		}
		lock.counters().Retries.Add(1)
		time.Sleep(retry)
	}
}

// Re-check of a held lock, replaceable in tests
var confirmLock = tryLock

func tryLock(fd int) (err error) {
	for {
		err = unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if !errors.Is(err, unix.EINTR) {
			return
		}
	}
}

func writeAll(file *os.File, data []byte) (err error) {
	for len(data) > 0 {
		var n int
		n, err = file.Write(data)
		if err != nil {
			return
		}
		data = data[n:] // remove the bytes that were successfully written
	}
	return
}
