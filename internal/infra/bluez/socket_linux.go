//go:build linux

package bluez

import (
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// newSocket wraps a profile fd. The fd is switched to non-blocking mode so
// the runtime poller owns it and Close unblocks a pending Read.
func newSocket(fd int) (*os.File, error) {
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, errors.Wrap(err, "set nonblock")
	}
	return os.NewFile(uintptr(fd), "rfcomm"), nil
}
