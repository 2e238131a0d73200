// Package device provides the Ref domain value for a physical Bluetooth device.
package device

import "strings"

// Ref identifies a physical Bluetooth device as reported by the radio.
// A Ref is never mutated after it has been observed.
type Ref struct {
	ID      string // Identity (BlueZ object path or MAC address)
	Address string // Bluetooth device address, optional
	Name    string // Remote name, optional
	Alias   string // User-assigned alias, optional
}

// New creates a device reference.
func New(id, address, name, alias string) Ref {
	return Ref{
		ID:      id,
		Address: address,
		Name:    name,
		Alias:   alias,
	}
}

// DisplayName returns the best human-readable label for the device.
func (r Ref) DisplayName() string {
	switch {
	case r.Alias != "":
		return r.Alias
	case r.Name != "":
		return r.Name
	case r.Address != "":
		return r.Address
	default:
		return "Unknown Device"
	}
}

// HasName reports whether the device advertised a remote name.
func (r Ref) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}

// Same reports whether both references identify the same physical device.
func (r Ref) Same(other Ref) bool {
	return r.ID == other.ID
}

// Dedupe returns a copy of refs with later duplicates (by ID) removed.
// Order of first occurrence is kept.
func Dedupe(refs []Ref) []Ref {
	seen := make(map[string]bool, len(refs))
	out := make([]Ref, 0, len(refs))
	for _, r := range refs {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}
