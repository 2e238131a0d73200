//go:build !linux

package rfcomm

import (
	"context"
	"io"
)

// Dial is not available on this platform.
func (d *Dialer) Dial(ctx context.Context, address string, channel uint8) (io.ReadCloser, error) {
	return nil, ErrUnsupported
}
