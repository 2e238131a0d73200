package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("server:\n  addr: \":9090\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "hci0", cfg.Bluetooth.Adapter)
	assert.Equal(t, DefaultServiceUUID, cfg.Bluetooth.ServiceUUID)
	assert.Equal(t, 12*time.Second, cfg.DiscoveryTimeout())
	assert.True(t, cfg.SkipUnnamedDevices())
	assert.Equal(t, TransportProfile, cfg.Transport.Type)
	assert.Equal(t, 1, cfg.Stream.ReadSize)
	assert.Equal(t, "utf-8", cfg.Stream.Encoding)
	assert.Empty(t, cfg.API.Token)
}

func TestParse_ExplicitValues(t *testing.T) {
	yml := `
bluetooth:
  adapter: hci1
  discovery_timeout_sec: 30
  skip_unnamed: false
transport:
  type: rfcomm
  settings:
    channel: 3
stream:
  read_size: 64
  encoding: iso-8859-1
`
	cfg, err := Parse([]byte(yml))
	require.NoError(t, err)

	assert.Equal(t, "hci1", cfg.Bluetooth.Adapter)
	assert.Equal(t, 30*time.Second, cfg.DiscoveryTimeout())
	assert.False(t, cfg.SkipUnnamedDevices())
	assert.Equal(t, TransportRFCOMM, cfg.Transport.Type)
	assert.Equal(t, 3, cfg.Transport.Settings["channel"])
	assert.Equal(t, 64, cfg.Stream.ReadSize)
	assert.Equal(t, "iso-8859-1", cfg.Stream.Encoding)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("HUB_API_TOKEN", "secret")
	t.Setenv("HUB_ADAPTER", "hci2")
	t.Setenv("HUB_SERVICE_UUID", "00001101-0000-1000-8000-00805f9b34fb")

	cfg, err := Parse([]byte("api:\n  token: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, "hci2", cfg.Bluetooth.Adapter)
	assert.Equal(t, "00001101-0000-1000-8000-00805f9b34fb", cfg.Bluetooth.ServiceUUID)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "unknown transport",
			yaml:   "transport:\n  type: usb\n",
			errMsg: "Type",
		},
		{
			name:   "bad service uuid",
			yaml:   "bluetooth:\n  service_uuid: not-a-uuid\n",
			errMsg: "ServiceUUID",
		},
		{
			name:   "negative discovery timeout",
			yaml:   "bluetooth:\n  discovery_timeout_sec: -1\n",
			errMsg: "DiscoveryTimeoutSec",
		},
		{
			name:   "read size too large",
			yaml:   "stream:\n  read_size: 100000\n",
			errMsg: "ReadSize",
		},
		{
			name:   "malformed yaml",
			yaml:   "server: [",
			errMsg: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  hooks:\n    on_started: [\"echo up\"]\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo up"}, cfg.Server.Hooks.OnStarted)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Filters(t *testing.T) {
	cfg, err := Parse([]byte(`
filters:
  name_pattern_filter:
    enabled: true
    settings:
      pattern: "^HC-"
  address_filter:
    enabled: false
`))
	require.NoError(t, err)

	assert.True(t, cfg.IsFilterEnabled("name_pattern_filter"))
	assert.False(t, cfg.IsFilterEnabled("address_filter"))
	assert.False(t, cfg.IsFilterEnabled("missing_filter"))
	assert.Equal(t, "^HC-", cfg.Filters["name_pattern_filter"].Settings["pattern"])
}
