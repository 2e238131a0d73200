package registry

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/osa030/bluetoothhub/internal/domain/device"
)

var ErrUnknownDevice = errors.New("unknown device")

// DeviceRegistry keeps devices in insertion order with duplicates (by ID)
// suppressed. Safe for concurrent use.
type DeviceRegistry struct {
	mu    sync.RWMutex
	order []string
	refs  map[string]device.Ref
}

// NewDeviceRegistry creates an empty device registry.
func NewDeviceRegistry() *DeviceRegistry {
	return &DeviceRegistry{
		order: make([]string, 0),
		refs:  make(map[string]device.Ref),
	}
}

// Add appends the device unless one with the same ID is already present.
// Returns true if the device was added.
func (r *DeviceRegistry) Add(ref device.Ref) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.refs[ref.ID]; ok {
		return false
	}
	r.refs[ref.ID] = ref
	r.order = append(r.order, ref.ID)
	return true
}

// Replace swaps the whole content for refs, deduplicating by ID.
func (r *DeviceRegistry) Replace(refs []device.Ref) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]string, 0, len(refs))
	r.refs = make(map[string]device.Ref, len(refs))
	for _, ref := range refs {
		if _, ok := r.refs[ref.ID]; ok {
			continue
		}
		r.refs[ref.ID] = ref
		r.order = append(r.order, ref.ID)
	}
}

// Clear removes all devices.
func (r *DeviceRegistry) Clear() {
	r.Replace(nil)
}

// Get retrieves a device by ID.
func (r *DeviceRegistry) Get(id string) (device.Ref, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.refs[id]
	if !ok {
		return device.Ref{}, ErrUnknownDevice
	}
	return ref, nil
}

// Contains reports whether a device with the given ID is present.
func (r *DeviceRegistry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.refs[id]
	return ok
}

// All returns a fresh slice of the devices in insertion order.
func (r *DeviceRegistry) All() []device.Ref {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]device.Ref, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.refs[id])
	}
	return result
}

// Count returns the number of devices.
func (r *DeviceRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
