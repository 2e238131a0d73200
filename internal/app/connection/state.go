// Package connection provides the supervisor for a single outbound RFCOMM
// connection attempt and its data session.
package connection

import "fmt"

// Phase represents the connection lifecycle phase.
type Phase int

const (
	PhaseNotStarted   Phase = iota // Supervisor created, Connect not called
	PhaseConnecting                // Blocking socket open in progress
	PhaseConnected                 // Socket open, reader active
	PhaseDataReceived              // Data arrived on a connected socket
	PhaseFailed                    // Open failed (terminal)
	PhaseClosed                    // Cancelled or stream ended (terminal)
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseConnecting:
		return "connecting"
	case PhaseConnected:
		return "connected"
	case PhaseDataReceived:
		return "data_received"
	case PhaseFailed:
		return "failed"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// State is the tagged connection state published by a supervisor.
type State struct {
	Phase  Phase
	Data   string // Payload for PhaseDataReceived
	Reason string // Cause for PhaseFailed, optional detail for PhaseClosed
}

// NotStarted returns the initial state.
func NotStarted() State { return State{Phase: PhaseNotStarted} }

// Connecting returns the connecting state.
func Connecting() State { return State{Phase: PhaseConnecting} }

// Connected returns the connected state.
func Connected() State { return State{Phase: PhaseConnected} }

// DataReceived returns a data state carrying payload.
func DataReceived(payload string) State {
	return State{Phase: PhaseDataReceived, Data: payload}
}

// Failed returns a failed state with a human-readable reason.
func Failed(reason string) State {
	return State{Phase: PhaseFailed, Reason: reason}
}

// Closed returns a closed state.
func Closed(reason string) State {
	return State{Phase: PhaseClosed, Reason: reason}
}

// IsLive returns true while the attempt or session is in progress.
func (s State) IsLive() bool {
	switch s.Phase {
	case PhaseConnecting, PhaseConnected, PhaseDataReceived:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for Failed and Closed.
func (s State) IsTerminal() bool {
	return s.Phase == PhaseFailed || s.Phase == PhaseClosed
}

// String returns a compact description used in logs.
func (s State) String() string {
	switch s.Phase {
	case PhaseDataReceived:
		return fmt.Sprintf("%s(%q)", s.Phase, s.Data)
	case PhaseFailed, PhaseClosed:
		if s.Reason != "" {
			return fmt.Sprintf("%s(%s)", s.Phase, s.Reason)
		}
	}
	return s.Phase.String()
}
