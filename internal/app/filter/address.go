package filter

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/domain/device"
	"github.com/osa030/bluetoothhub/internal/infra/config"
)

// AddressConfig represents the configuration for AddressFilter.
type AddressConfig struct {
	Allow []string `yaml:"allow" mapstructure:"allow" validate:"dive,mac"`
	Deny  []string `yaml:"deny" mapstructure:"deny" validate:"dive,mac"`
}

// AddressFilter accepts or rejects devices by Bluetooth address.
// Deny wins over allow; an empty allow list allows every address.
type AddressFilter struct {
	allow map[string]bool
	deny  map[string]bool
}

// NewAddressFilter creates a new address filter.
func NewAddressFilter() *AddressFilter {
	return &AddressFilter{}
}

func (f *AddressFilter) Name() string {
	return "address_filter"
}

func (f *AddressFilter) Description() string {
	return "Accepts or rejects devices by Bluetooth address"
}

func (f *AddressFilter) ReturnCodes() []string {
	return []string{"address_denied", "address_not_allowed"}
}

func (f *AddressFilter) ValidateConfig(settings map[string]any) error {
	var cfg AddressConfig
	if err := config.DecodeSettings(settings, &cfg); err != nil {
		return err
	}

	f.allow = addressSet(cfg.Allow)
	f.deny = addressSet(cfg.Deny)
	zlog.Info().Msgf("address filter config: allow=%d deny=%d", len(f.allow), len(f.deny))
	return nil
}

func (f *AddressFilter) Check(ctx context.Context, dev device.Ref) Result {
	addr := strings.ToUpper(dev.Address)
	if f.deny[addr] {
		return Reject("address_denied")
	}
	if len(f.allow) > 0 && !f.allow[addr] {
		return Reject("address_not_allowed")
	}
	return Accept()
}

func addressSet(addrs []string) map[string]bool {
	set := make(map[string]bool, len(addrs))
	for _, a := range addrs {
		set[strings.ToUpper(a)] = true
	}
	return set
}

func init() {
	Register("address_filter", func() Filter {
		return &AddressFilter{}
	})
}
