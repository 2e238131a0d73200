package connection

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/bluetoothhub/internal/domain/device"
	"github.com/osa030/bluetoothhub/internal/infra/config"
)

type fakeConnector struct {
	deviceID string
	err      error
}

func (f *fakeConnector) ConnectProfile(ctx context.Context, deviceID string) (io.ReadCloser, error) {
	f.deviceID = deviceID
	if f.err != nil {
		return nil, f.err
	}
	local, remote := net.Pipe()
	_ = remote.Close()
	return local, nil
}

type fakeDialer struct {
	address string
	channel uint8
}

func (f *fakeDialer) Dial(ctx context.Context, address string, channel uint8) (io.ReadCloser, error) {
	f.address = address
	f.channel = channel
	local, remote := net.Pipe()
	_ = remote.Close()
	return local, nil
}

func TestNewProfileTransport(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		want     time.Duration
		wantErr  bool
	}{
		{"defaults", nil, 30 * time.Second, false},
		{"explicit timeout", map[string]any{"connect_timeout_sec": 5}, 5 * time.Second, false},
		{"timeout out of range", map[string]any{"connect_timeout_sec": 1000}, 0, true},
		{"wrong type", map[string]any{"connect_timeout_sec": "soon"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewProfileTransport(&fakeConnector{}, tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.ConnectTimeout())
			assert.Equal(t, "profile", tr.Name())
		})
	}

	_, err := NewProfileTransport(nil, nil)
	assert.Error(t, err)
}

func TestProfileTransport_Open(t *testing.T) {
	conn := &fakeConnector{}
	tr, err := NewProfileTransport(conn, nil)
	require.NoError(t, err)

	dev := device.New("/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF", "AA:BB:CC:DD:EE:FF", "Sensor", "")
	sock, err := tr.Open(context.Background(), dev)
	require.NoError(t, err)
	defer sock.Close()
	assert.Equal(t, dev.ID, conn.deviceID)

	conn.err = errors.New("br-connection-refused")
	_, err = tr.Open(context.Background(), dev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "br-connection-refused")
	assert.Contains(t, err.Error(), "Sensor")
}

func TestNewRFCOMMTransport(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		channel  uint8
		wantErr  bool
	}{
		{"defaults", nil, 1, false},
		{"channel 30", map[string]any{"channel": 30}, 30, false},
		{"channel 0", map[string]any{"channel": 0}, 1, false},
		{"channel too high", map[string]any{"channel": 31}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewRFCOMMTransport(&fakeDialer{}, tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.channel, tr.Channel())
		})
	}
}

func TestRFCOMMTransport_Open(t *testing.T) {
	dialer := &fakeDialer{}
	tr, err := NewRFCOMMTransport(dialer, map[string]any{"channel": 4})
	require.NoError(t, err)

	sock, err := tr.Open(context.Background(), device.New("AA:BB:CC:DD:EE:FF", "AA:BB:CC:DD:EE:FF", "", ""))
	require.NoError(t, err)
	defer sock.Close()
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", dialer.address)
	assert.Equal(t, uint8(4), dialer.channel)

	_, err = tr.Open(context.Background(), device.New("x", "", "", ""))
	assert.Error(t, err)
}

func TestNewTransportFromConfig(t *testing.T) {
	cfg := &config.Config{Transport: config.TransportConfig{Type: config.TransportRFCOMM}}
	tr, err := NewTransportFromConfig(cfg, nil, &fakeDialer{})
	require.NoError(t, err)
	assert.Equal(t, "rfcomm", tr.Name())

	cfg.Transport.Type = config.TransportProfile
	tr, err = NewTransportFromConfig(cfg, &fakeConnector{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "profile", tr.Name())

	_, err = NewTransportFromConfig(cfg, nil, nil)
	assert.Error(t, err)

	cfg.Transport.Type = "usb"
	_, err = NewTransportFromConfig(cfg, nil, nil)
	assert.Error(t, err)
}

func TestSupervisor_UsesTransportTimeout(t *testing.T) {
	tr, err := NewRFCOMMTransport(&fakeDialer{}, map[string]any{"connect_timeout_sec": 7})
	require.NoError(t, err)

	s := NewSupervisor(device.New("a", "AA:BB:CC:DD:EE:FF", "", ""), tr, Options{})
	assert.Equal(t, 7*time.Second, s.opts.ConnectTimeout)
	s.Cancel()
}
