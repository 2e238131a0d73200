package state

import (
	"sync"
)

// Manager holds the scalar session state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	sessionID string

	radio      Radio
	discovery  Discovery
	permission Permission
	lastError  string
}

// New creates a new state manager.
func New(sessionID string, radio Radio) *Manager {
	return &Manager{
		sessionID:  sessionID,
		radio:      radio,
		discovery:  DiscoveryIdle,
		permission: PermissionUnknown,
	}
}

// GetSessionID returns the session ID.
func (m *Manager) GetSessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

// GetRadio returns the radio state.
func (m *Manager) GetRadio() Radio {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.radio
}

// SetRadio sets the radio state. Losing the radio also stops discovery.
func (m *Manager) SetRadio(r Radio) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.radio = r
	if r != RadioReady {
		m.discovery = DiscoveryIdle
	}
}

// GetDiscovery returns the discovery state.
func (m *Manager) GetDiscovery() Discovery {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.discovery
}

// IsDiscovering returns true while discovery is running.
func (m *Manager) IsDiscovering() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.discovery == Discovering
}

// StartDiscovering sets the discovery state to Discovering.
func (m *Manager) StartDiscovering() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discovery = Discovering
}

// StopDiscovering sets the discovery state to DiscoveryIdle.
func (m *Manager) StopDiscovering() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discovery = DiscoveryIdle
}

// GetPermission returns the permission state.
func (m *Manager) GetPermission() Permission {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.permission
}

// SetPermission sets the permission state.
func (m *Manager) SetPermission(p Permission) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.permission = p
}

// IsPermitted returns true if permission has been granted.
func (m *Manager) IsPermitted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.permission == PermissionGranted
}

// GetLastError returns the last collaborator error message.
func (m *Manager) GetLastError() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastError
}

// SetLastError records a collaborator error message. Empty clears it.
func (m *Manager) SetLastError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = msg
}
