package session

import (
	"github.com/osa030/bluetoothhub/internal/app/connection"
	"github.com/osa030/bluetoothhub/internal/app/session/state"
	"github.com/osa030/bluetoothhub/internal/domain/device"
)

// View is an immutable snapshot of the session.
// A new View is built on every mutation; never modify a published one.
type View struct {
	SessionID string
	Version   uint64

	Radio      state.Radio
	Discovery  state.Discovery
	Permission state.Permission

	Discovered []device.Ref // Insertion order, deduped by ID
	Paired     []device.Ref // Snapshot taken when discovery starts
	Selected   *device.Ref

	Connection       connection.State
	LastReceivedData *string
	LastError        string
}

// IsDiscovering returns true while discovery is active.
func (v View) IsDiscovering() bool {
	return v.Discovery == state.Discovering
}

// PermissionRequired returns true when an operation was refused for lack
// of permission.
func (v View) PermissionRequired() bool {
	return v.Permission == state.PermissionRequired
}

// FindDevice looks up a discovered or paired device by ID.
func (v View) FindDevice(id string) (device.Ref, bool) {
	for _, d := range v.Discovered {
		if d.ID == id {
			return d, true
		}
	}
	for _, d := range v.Paired {
		if d.ID == id {
			return d, true
		}
	}
	return device.Ref{}, false
}
