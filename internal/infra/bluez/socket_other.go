//go:build !linux

package bluez

import (
	"os"

	"github.com/cockroachdb/errors"
)

func newSocket(fd int) (*os.File, error) {
	return nil, errors.New("profile sockets are only supported on linux")
}
