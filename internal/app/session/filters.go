package session

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/app/filter"
	"github.com/osa030/bluetoothhub/internal/infra/config"
)

// setupFilters builds the discovery filter chain from the enabled filters.
// Filters run in name order.
func setupFilters(cfg *config.Config) (*filter.Chain, error) {
	registered := filter.GetRegistered()
	for name := range cfg.Filters {
		if _, ok := registered[name]; !ok {
			return nil, errors.Newf("unknown filter %q", name)
		}
	}

	chain := filter.NewChain()
	for _, name := range filter.Names() {
		if !cfg.IsFilterEnabled(name) {
			continue
		}
		f := registered[name]()
		if err := f.ValidateConfig(cfg.Filters[name].Settings); err != nil {
			return nil, errors.Wrapf(err, "filter %s", name)
		}
		chain.Add(f)
		zlog.Info().Msgf("discovery filter enabled: filter=%s", name)
	}
	return chain, nil
}
