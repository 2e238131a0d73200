package session

import (
	"context"

	"github.com/osa030/bluetoothhub/internal/app/session/state"
	"github.com/osa030/bluetoothhub/internal/domain/device"
)

// Radio controls the local Bluetooth adapter.
type Radio interface {
	// State queries the adapter. An error means no adapter is available.
	State(ctx context.Context) (state.Radio, error)
	PairedDevices(ctx context.Context) ([]device.Ref, error)
	StartDiscovery(ctx context.Context) error
	CancelDiscovery(ctx context.Context) error
	RequestEnable(ctx context.Context) error
}

// PermissionChecker reports whether the hub may use the radio.
type PermissionChecker interface {
	CheckPermission(ctx context.Context) state.Permission
}

// PermissionFunc adapts a function to PermissionChecker.
type PermissionFunc func(ctx context.Context) state.Permission

// CheckPermission implements PermissionChecker.
func (f PermissionFunc) CheckPermission(ctx context.Context) state.Permission {
	return f(ctx)
}

// AlwaysPermitted grants every permission query.
var AlwaysPermitted = PermissionFunc(func(context.Context) state.Permission {
	return state.PermissionGranted
})
