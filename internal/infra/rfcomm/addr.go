// Package rfcomm dials raw RFCOMM client sockets.
package rfcomm

import (
	"net"

	"github.com/cockroachdb/errors"
)

// MaxChannel is the highest valid RFCOMM server channel.
const MaxChannel = 30

// Errors
var (
	ErrInvalidChannel = errors.New("rfcomm channel must be between 1 and 30")
	ErrUnsupported    = errors.New("rfcomm sockets are only supported on linux")
)

// parseAddress converts "AA:BB:CC:DD:EE:FF" to the kernel's little-endian
// bdaddr byte order.
func parseAddress(s string) ([6]byte, error) {
	var b [6]byte
	hw, err := net.ParseMAC(s)
	if err != nil {
		return b, errors.Wrapf(err, "invalid bluetooth address %q", s)
	}
	if len(hw) != 6 {
		return b, errors.Newf("invalid bluetooth address %q: want 6 bytes, got %d", s, len(hw))
	}
	for i := 0; i < 6; i++ {
		b[i] = hw[5-i]
	}
	return b, nil
}

func validChannel(ch uint8) bool {
	return ch >= 1 && ch <= MaxChannel
}

// Dialer opens RFCOMM client sockets.
type Dialer struct{}

// NewDialer creates a dialer.
func NewDialer() *Dialer {
	return &Dialer{}
}
