package filter

import (
	"context"
	"regexp"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/domain/device"
	"github.com/osa030/bluetoothhub/internal/infra/config"
)

// NamePatternConfig represents the configuration for NamePatternFilter.
type NamePatternConfig struct {
	Pattern string `yaml:"pattern" mapstructure:"pattern" validate:"required"`
}

// NamePatternFilter accepts devices whose display name matches a regular
// expression.
type NamePatternFilter struct {
	config  *NamePatternConfig
	pattern *regexp.Regexp
}

// NewNamePatternFilter creates a new name pattern filter.
func NewNamePatternFilter() *NamePatternFilter {
	return &NamePatternFilter{}
}

func (f *NamePatternFilter) Name() string {
	return "name_pattern_filter"
}

func (f *NamePatternFilter) Description() string {
	return "Accepts devices whose name matches a regular expression"
}

func (f *NamePatternFilter) ReturnCodes() []string {
	return []string{"name_mismatch"}
}

func (f *NamePatternFilter) ValidateConfig(settings map[string]any) error {
	var cfg NamePatternConfig
	if err := config.DecodeSettings(settings, &cfg); err != nil {
		return err
	}

	pattern, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return errors.Wrapf(err, "invalid pattern %q", cfg.Pattern)
	}

	f.config = &cfg
	f.pattern = pattern
	zlog.Info().Msgf("name pattern filter config: %+v", cfg)
	return nil
}

func (f *NamePatternFilter) Check(ctx context.Context, dev device.Ref) Result {
	// If config is not set, accept all devices
	if f.pattern == nil {
		return Accept()
	}
	if f.pattern.MatchString(dev.Name) || (dev.Alias != "" && f.pattern.MatchString(dev.Alias)) {
		return Accept()
	}
	return Reject("name_mismatch")
}

func init() {
	Register("name_pattern_filter", func() Filter {
		return &NamePatternFilter{}
	})
}
