package connect

import (
	"github.com/osa030/bluetoothhub/internal/app/connection"
	"github.com/osa030/bluetoothhub/internal/app/session"
	"github.com/osa030/bluetoothhub/internal/app/session/state"
	"github.com/osa030/bluetoothhub/internal/domain/device"
	bluetoothhubv1 "github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1"
)

func toDevice(d device.Ref) *bluetoothhubv1.Device {
	return &bluetoothhubv1.Device{
		Id:          d.ID,
		Address:     d.Address,
		Name:        d.Name,
		Alias:       d.Alias,
		DisplayName: d.DisplayName(),
	}
}

func toDevices(refs []device.Ref) []*bluetoothhubv1.Device {
	out := make([]*bluetoothhubv1.Device, 0, len(refs))
	for _, d := range refs {
		out = append(out, toDevice(d))
	}
	return out
}

func toView(v session.View) *bluetoothhubv1.View {
	out := &bluetoothhubv1.View{
		SessionId:          v.SessionID,
		Version:            v.Version,
		Radio:              toRadioState(v.Radio),
		Discovery:          toDiscoveryState(v.Discovery),
		Permission:         toPermissionState(v.Permission),
		PermissionRequired: v.PermissionRequired(),
		Discovered:         toDevices(v.Discovered),
		Paired:             toDevices(v.Paired),
		Connection: &bluetoothhubv1.ConnectionState{
			Phase:  toConnectionPhase(v.Connection.Phase),
			Data:   v.Connection.Data,
			Reason: v.Connection.Reason,
		},
		LastError: v.LastError,
	}
	if v.Selected != nil {
		out.Selected = toDevice(*v.Selected)
	}
	if v.LastReceivedData != nil {
		data := *v.LastReceivedData
		out.LastReceivedData = &data
	}
	return out
}

func toRadioState(r state.Radio) bluetoothhubv1.RadioState {
	switch r {
	case state.RadioUnavailable:
		return bluetoothhubv1.RadioState_RADIO_STATE_UNAVAILABLE
	case state.RadioDisabled:
		return bluetoothhubv1.RadioState_RADIO_STATE_DISABLED
	case state.RadioReady:
		return bluetoothhubv1.RadioState_RADIO_STATE_READY
	default:
		return bluetoothhubv1.RadioState_RADIO_STATE_UNSPECIFIED
	}
}

func toDiscoveryState(d state.Discovery) bluetoothhubv1.DiscoveryState {
	switch d {
	case state.DiscoveryIdle:
		return bluetoothhubv1.DiscoveryState_DISCOVERY_STATE_IDLE
	case state.Discovering:
		return bluetoothhubv1.DiscoveryState_DISCOVERY_STATE_DISCOVERING
	default:
		return bluetoothhubv1.DiscoveryState_DISCOVERY_STATE_UNSPECIFIED
	}
}

func toPermissionState(p state.Permission) bluetoothhubv1.PermissionState {
	switch p {
	case state.PermissionUnknown:
		return bluetoothhubv1.PermissionState_PERMISSION_STATE_UNKNOWN
	case state.PermissionGranted:
		return bluetoothhubv1.PermissionState_PERMISSION_STATE_GRANTED
	case state.PermissionDenied:
		return bluetoothhubv1.PermissionState_PERMISSION_STATE_DENIED
	case state.PermissionRequired:
		return bluetoothhubv1.PermissionState_PERMISSION_STATE_REQUIRED
	default:
		return bluetoothhubv1.PermissionState_PERMISSION_STATE_UNSPECIFIED
	}
}

// fromPermissionState maps a reported permission back onto the session
// value. Only granted, denied and required can be reported.
func fromPermissionState(p bluetoothhubv1.PermissionState) (state.Permission, bool) {
	switch p {
	case bluetoothhubv1.PermissionState_PERMISSION_STATE_GRANTED:
		return state.PermissionGranted, true
	case bluetoothhubv1.PermissionState_PERMISSION_STATE_DENIED:
		return state.PermissionDenied, true
	case bluetoothhubv1.PermissionState_PERMISSION_STATE_REQUIRED:
		return state.PermissionRequired, true
	default:
		return state.PermissionUnknown, false
	}
}

// ParsePermission converts a permission name such as "granted" into the
// value carried by ReportPermissionRequest.
func ParsePermission(s string) (bluetoothhubv1.PermissionState, bool) {
	p, ok := state.ParsePermission(s)
	if !ok || p == state.PermissionUnknown {
		return bluetoothhubv1.PermissionState_PERMISSION_STATE_UNSPECIFIED, false
	}
	return toPermissionState(p), true
}

func toConnectionPhase(p connection.Phase) bluetoothhubv1.ConnectionPhase {
	switch p {
	case connection.PhaseNotStarted:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_NOT_STARTED
	case connection.PhaseConnecting:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_CONNECTING
	case connection.PhaseConnected:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_CONNECTED
	case connection.PhaseDataReceived:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_DATA_RECEIVED
	case connection.PhaseFailed:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_FAILED
	case connection.PhaseClosed:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_CLOSED
	default:
		return bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_UNSPECIFIED
	}
}
