package connection

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/osa030/bluetoothhub/internal/domain/device"
	"github.com/osa030/bluetoothhub/internal/infra/config"
)

// Socket is a connected RFCOMM stream. Close must unblock a pending Read.
type Socket interface {
	io.ReadCloser
}

// Transport opens RFCOMM client sockets.
type Transport interface {
	// Open blocks until the socket is connected, ctx is done, or the attempt
	// fails. Implementations must return promptly once ctx is cancelled.
	Open(ctx context.Context, dev device.Ref) (Socket, error)

	// Name returns the transport name (used in config).
	Name() string
}

// ProfileConnector asks the Bluetooth daemon to connect the registered
// service profile on a device and hands back the resulting socket.
type ProfileConnector interface {
	ConnectProfile(ctx context.Context, deviceID string) (io.ReadCloser, error)
}

// SocketDialer opens raw RFCOMM sockets.
type SocketDialer interface {
	Dial(ctx context.Context, address string, channel uint8) (io.ReadCloser, error)
}

// ProfileTransportConfig holds settings for the profile transport.
type ProfileTransportConfig struct {
	ConnectTimeoutSec int `yaml:"connect_timeout_sec" mapstructure:"connect_timeout_sec" default:"30" validate:"gte=1,lte=300"`
}

// ProfileTransport connects through the Bluetooth daemon's profile manager.
// Device IDs must be daemon object paths.
type ProfileTransport struct {
	connector ProfileConnector
	config    *ProfileTransportConfig
}

// NewProfileTransport creates a ProfileTransport from raw settings.
func NewProfileTransport(connector ProfileConnector, settings map[string]any) (*ProfileTransport, error) {
	if connector == nil {
		return nil, errors.New("profile connector is required")
	}

	var cfg ProfileTransportConfig
	if err := config.DecodeSettings(settings, &cfg); err != nil {
		return nil, err
	}
	return &ProfileTransport{connector: connector, config: &cfg}, nil
}

// Name implements Transport.
func (t *ProfileTransport) Name() string { return "profile" }

// ConnectTimeout returns the configured connect timeout.
func (t *ProfileTransport) ConnectTimeout() time.Duration {
	return time.Duration(t.config.ConnectTimeoutSec) * time.Second
}

// Open implements Transport.
func (t *ProfileTransport) Open(ctx context.Context, dev device.Ref) (Socket, error) {
	sock, err := t.connector.ConnectProfile(ctx, dev.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "profile connect %s", dev.DisplayName())
	}
	return sock, nil
}

// RFCOMMTransportConfig holds settings for the raw socket transport.
type RFCOMMTransportConfig struct {
	Channel           int `yaml:"channel" mapstructure:"channel" default:"1" validate:"gte=1,lte=30"`
	ConnectTimeoutSec int `yaml:"connect_timeout_sec" mapstructure:"connect_timeout_sec" default:"30" validate:"gte=1,lte=300"`
}

// RFCOMMTransport dials a fixed RFCOMM channel on the device address.
type RFCOMMTransport struct {
	dialer SocketDialer
	config *RFCOMMTransportConfig
}

// NewRFCOMMTransport creates an RFCOMMTransport from raw settings.
func NewRFCOMMTransport(dialer SocketDialer, settings map[string]any) (*RFCOMMTransport, error) {
	if dialer == nil {
		return nil, errors.New("socket dialer is required")
	}

	var cfg RFCOMMTransportConfig
	if err := config.DecodeSettings(settings, &cfg); err != nil {
		return nil, err
	}
	return &RFCOMMTransport{dialer: dialer, config: &cfg}, nil
}

// Name implements Transport.
func (t *RFCOMMTransport) Name() string { return "rfcomm" }

// Channel returns the configured RFCOMM channel.
func (t *RFCOMMTransport) Channel() uint8 { return uint8(t.config.Channel) }

// ConnectTimeout returns the configured connect timeout.
func (t *RFCOMMTransport) ConnectTimeout() time.Duration {
	return time.Duration(t.config.ConnectTimeoutSec) * time.Second
}

// Open implements Transport.
func (t *RFCOMMTransport) Open(ctx context.Context, dev device.Ref) (Socket, error) {
	if dev.Address == "" {
		return nil, errors.Newf("device %s has no address", dev.ID)
	}
	sock, err := t.dialer.Dial(ctx, dev.Address, t.Channel())
	if err != nil {
		return nil, errors.Wrapf(err, "rfcomm dial %s channel %d", dev.Address, t.config.Channel)
	}
	return sock, nil
}
