// Exclusive-lock append protocol for log files shared between writers
package filelock

import (
	"loglib/internal/global"
	"sync/atomic"
	"time"
)

// Per-append lock on a single path. Every append is a fresh open/lock/write/unlock/close cycle.
type Lock struct {
	Path                 string
	RetryInterval        time.Duration // wait between non-blocking lock attempts
	ConfirmationInterval time.Duration // wait before re-confirming a held lock
	MaxConfirmations     int           // restarts allowed before giving up
	stats                *Stats
}

// Counters shared by every lock of one sink
type Stats struct {
	Appends  atomic.Uint64 // completed appends
	Retries  atomic.Uint64 // lock attempts that found the file held
	Restarts atomic.Uint64 // confirmations that failed and restarted the cycle
}

// Creates lock for path with default intervals. Stats may be nil.
func New(path string, stats *Stats) (lock *Lock) {
	lock = &Lock{
		Path:                 path,
		RetryInterval:        global.DefaultLockRetryInterval,
		ConfirmationInterval: global.DefaultLockConfirmationInterval,
		MaxConfirmations:     global.DefaultLockMaxConfirmations,
		stats:                stats,
	}
	return
}

// Unset retry interval and confirmation bound fall back to defaults. A zero confirmation
// interval is kept and confirms immediately; only a negative one is replaced.
func (lock *Lock) settings() (retry, confirm time.Duration, maxConfirmations int) {
	retry = lock.RetryInterval
	if retry <= 0 {
		retry = global.DefaultLockRetryInterval
	}
	confirm = lock.ConfirmationInterval
	if confirm < 0 {
		confirm = global.DefaultLockConfirmationInterval
	}
	maxConfirmations = lock.MaxConfirmations
	if maxConfirmations <= 0 {
		maxConfirmations = global.DefaultLockMaxConfirmations
	}
	return
}

// Unattached locks count into a throwaway set
var discarded Stats

func (lock *Lock) counters() (stats *Stats) {
	stats = lock.stats
	if stats == nil {
		stats = &discarded
	}
	return
}
