//go:build linux

package rfcomm

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// pollInterval bounds how long a connect waits between context checks.
const pollInterval = 100 * time.Millisecond

// Dial connects to channel on the device at address. The connect is
// non-blocking and polled so that ctx cancellation aborts it promptly.
// The returned socket is owned by the runtime poller, so Close unblocks a
// pending Read.
func (d *Dialer) Dial(ctx context.Context, address string, channel uint8) (io.ReadCloser, error) {
	if !validChannel(channel) {
		return nil, ErrInvalidChannel
	}
	addr, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, unix.BTPROTO_RFCOMM)
	if err != nil {
		return nil, errors.Wrap(err, "create rfcomm socket")
	}

	zlog.Debug().Msgf("rfcomm connecting: address=%s channel=%d", address, channel)
	if err := connect(ctx, fd, &unix.SockaddrRFCOMM{Addr: addr, Channel: channel}); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	return os.NewFile(uintptr(fd), "rfcomm:"+address), nil
}

func connect(ctx context.Context, fd int, sa unix.Sockaddr) error {
	err := unix.Connect(fd, sa)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.EINPROGRESS), errors.Is(err, unix.EAGAIN):
	default:
		return errors.Wrap(err, "connect")
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLOUT}}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := unix.Poll(fds, int(pollInterval/time.Millisecond))
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return errors.Wrap(err, "poll")
		}
		if n == 0 {
			continue
		}

		soErr, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if err != nil {
			return errors.Wrap(err, "getsockopt")
		}
		if soErr != 0 {
			return errors.Wrap(unix.Errno(soErr), "connect")
		}
		return nil
	}
}
