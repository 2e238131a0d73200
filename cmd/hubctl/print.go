package main

import (
	"fmt"
	"io"
	"strings"

	bluetoothhubv1 "github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1"
)

// enumLabel turns an enum value such as RADIO_STATE_READY into "ready".
func enumLabel(e fmt.Stringer, prefix string) string {
	return strings.ToLower(strings.TrimPrefix(e.String(), prefix))
}

func radioLabel(r bluetoothhubv1.RadioState) string {
	return enumLabel(r, "RADIO_STATE_")
}

func discoveryLabel(d bluetoothhubv1.DiscoveryState) string {
	return enumLabel(d, "DISCOVERY_STATE_")
}

func permissionLabel(p bluetoothhubv1.PermissionState) string {
	return enumLabel(p, "PERMISSION_STATE_")
}

func formatDevice(d *bluetoothhubv1.Device) string {
	if d == nil {
		return "(none)"
	}
	if d.GetAddress() != "" && d.GetAddress() != d.GetDisplayName() {
		return fmt.Sprintf("%s [%s]", d.GetDisplayName(), d.GetAddress())
	}
	return d.GetDisplayName()
}

func formatConnection(c *bluetoothhubv1.ConnectionState) string {
	phase := enumLabel(c.GetPhase(), "CONNECTION_PHASE_")
	switch c.GetPhase() {
	case bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_DATA_RECEIVED:
		return fmt.Sprintf("data received %q", c.GetData())
	case bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_FAILED,
		bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_CLOSED:
		if c.GetReason() != "" {
			return fmt.Sprintf("%s (%s)", phase, c.GetReason())
		}
	}
	return phase
}

func printView(w io.Writer, v *bluetoothhubv1.View) {
	if v == nil {
		fmt.Fprintln(w, "(no view)")
		return
	}

	fmt.Fprintf(w, "Session:    %s (version %d)\n", v.GetSessionId(), v.GetVersion())
	fmt.Fprintf(w, "Radio:      %s\n", radioLabel(v.GetRadio()))
	fmt.Fprintf(w, "Discovery:  %s\n", discoveryLabel(v.GetDiscovery()))
	fmt.Fprintf(w, "Permission: %s\n", permissionLabel(v.GetPermission()))
	if v.GetPermissionRequired() {
		fmt.Fprintln(w, "  ! permission must be granted before discovery or connect")
	}
	fmt.Fprintf(w, "Selected:   %s\n", formatDevice(v.GetSelected()))
	fmt.Fprintf(w, "Connection: %s\n", formatConnection(v.GetConnection()))
	if v.LastReceivedData != nil {
		fmt.Fprintf(w, "Last data:  %q\n", v.GetLastReceivedData())
	}
	if v.GetLastError() != "" {
		fmt.Fprintf(w, "Last error: %s\n", v.GetLastError())
	}

	printDevices(w, "Discovered", v.GetDiscovered())
	printDevices(w, "Paired", v.GetPaired())
}

func printDevices(w io.Writer, title string, devices []*bluetoothhubv1.Device) {
	fmt.Fprintf(w, "%s (%d):\n", title, len(devices))
	for _, d := range devices {
		fmt.Fprintf(w, "  %-40s %s\n", d.GetId(), formatDevice(d))
	}
}
