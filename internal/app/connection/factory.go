package connection

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/infra/config"
)

// NewTransportFromConfig creates the configured transport.
// Only the collaborator for the selected type needs to be non-nil.
func NewTransportFromConfig(cfg *config.Config, profile ProfileConnector, dialer SocketDialer) (Transport, error) {
	tcfg := cfg.Transport
	zlog.Debug().Msgf("creating transport: type=%s settings=%+v", tcfg.Type, tcfg.Settings)

	var transport Transport
	var err error
	switch tcfg.Type {
	case config.TransportProfile:
		transport, err = NewProfileTransport(profile, tcfg.Settings)

	case config.TransportRFCOMM:
		transport, err = NewRFCOMMTransport(dialer, tcfg.Settings)

	default:
		return nil, errors.Newf("unsupported transport type: %s", tcfg.Type)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create transport (type %s)", tcfg.Type)
	}

	zlog.Info().Msgf("registered transport: type=%s", transport.Name())
	return transport, nil
}
