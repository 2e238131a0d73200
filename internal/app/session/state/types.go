// Package state provides session state management.
package state

// Radio represents the local Bluetooth adapter availability.
type Radio int

const (
	RadioUnavailable Radio = iota // No adapter present
	RadioDisabled                 // Adapter present but powered off
	RadioReady                    // Adapter powered on
)

// String returns the string representation of the radio state.
func (r Radio) String() string {
	switch r {
	case RadioUnavailable:
		return "unavailable"
	case RadioDisabled:
		return "disabled"
	case RadioReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Discovery represents whether device discovery is running.
type Discovery int

const (
	DiscoveryIdle Discovery = iota // Not discovering
	Discovering                    // Discovery in progress
)

// String returns the string representation of the discovery state.
func (d Discovery) String() string {
	switch d {
	case DiscoveryIdle:
		return "idle"
	case Discovering:
		return "discovering"
	default:
		return "unknown"
	}
}

// Permission represents what is known about the Bluetooth permission.
type Permission int

const (
	PermissionUnknown  Permission = iota // Not queried yet
	PermissionGranted                    // Caller may discover and connect
	PermissionDenied                     // User refused
	PermissionRequired                   // Must be granted before discovery
)

// String returns the string representation of the permission state.
func (p Permission) String() string {
	switch p {
	case PermissionUnknown:
		return "unknown"
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	case PermissionRequired:
		return "required"
	default:
		return "unknown"
	}
}

// ParsePermission converts a string produced by Permission.String back.
func ParsePermission(s string) (Permission, bool) {
	switch s {
	case "granted":
		return PermissionGranted, true
	case "denied":
		return PermissionDenied, true
	case "required":
		return PermissionRequired, true
	case "unknown":
		return PermissionUnknown, true
	default:
		return PermissionUnknown, false
	}
}
