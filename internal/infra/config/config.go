// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Transport types
const (
	TransportProfile = "profile"
	TransportRFCOMM  = "rfcomm"
)

// DefaultServiceUUID is the RFCOMM service record the hub connects to.
const DefaultServiceUUID = "8f49458d-2120-490d-839a-94245945487b"

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig            `yaml:"server"`
	API       APIConfig               `yaml:"api"`
	Bluetooth BluetoothConfig         `yaml:"bluetooth"`
	Transport TransportConfig         `yaml:"transport"`
	Stream    StreamConfig            `yaml:"stream"`
	Filters   map[string]FilterConfig `yaml:"filters"`
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr  string      `yaml:"addr" default:":8080"`
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// APIConfig represents API access configuration.
type APIConfig struct {
	// Token guards mutating RPCs when non-empty.
	Token string `yaml:"token"`
}

// BluetoothConfig represents radio configuration.
type BluetoothConfig struct {
	Adapter             string `yaml:"adapter" default:"hci0" validate:"required"`
	ServiceUUID         string `yaml:"service_uuid" default:"8f49458d-2120-490d-839a-94245945487b" validate:"required,uuid"`
	DiscoveryTimeoutSec int    `yaml:"discovery_timeout_sec" default:"12" validate:"gte=0,lte=600"`
	SkipUnnamed         *bool  `yaml:"skip_unnamed" default:"true"`
}

// TransportConfig selects how RFCOMM sockets are opened.
type TransportConfig struct {
	Type     string         `yaml:"type" default:"profile" validate:"oneof=profile rfcomm"`
	Settings map[string]any `yaml:"settings"`
}

// StreamConfig represents byte stream reader configuration.
type StreamConfig struct {
	ReadSize int    `yaml:"read_size" default:"1" validate:"gte=1,lte=4096"`
	Encoding string `yaml:"encoding" default:"utf-8" validate:"required"`
}

// FilterConfig represents a discovery filter's configuration.
type FilterConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse parses configuration from YAML bytes, applies environment
// overrides and defaults, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("HUB_API_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("HUB_ADAPTER"); v != "" {
		c.Bluetooth.Adapter = v
	}
	if v := os.Getenv("HUB_SERVICE_UUID"); v != "" {
		c.Bluetooth.ServiceUUID = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// DiscoveryTimeout returns the discovery auto-cancel timeout.
// Zero disables the timeout.
func (c *Config) DiscoveryTimeout() time.Duration {
	return time.Duration(c.Bluetooth.DiscoveryTimeoutSec) * time.Second
}

// SkipUnnamedDevices reports whether unnamed devices are ignored during discovery.
func (c *Config) SkipUnnamedDevices() bool {
	if c.Bluetooth.SkipUnnamed == nil {
		return true
	}
	return *c.Bluetooth.SkipUnnamed
}

// IsFilterEnabled checks if a filter is enabled.
func (c *Config) IsFilterEnabled(filterName string) bool {
	if f, ok := c.Filters[filterName]; ok {
		return f.Enabled
	}
	return false
}
