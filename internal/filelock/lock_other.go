//go:build !unix

package filelock

import (
	"fmt"
	"loglib/internal/global"
)

// Advisory file locking is only implemented for unix platforms
func (lock *Lock) Append(data []byte) (err error) {
	err = fmt.Errorf("%w: file locking is not supported on this platform (%q)", global.ErrLogging, lock.Path)
	return
}
