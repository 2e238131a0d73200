// Package bluez talks to the BlueZ daemon over the system D-Bus: adapter
// power and discovery, paired device listing, discovery signals and the
// Profile1 object that hands over connected RFCOMM sockets.
package bluez

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"

	"github.com/osa030/bluetoothhub/internal/domain/device"
)

const (
	busName             = "org.bluez"
	rootPath            = dbus.ObjectPath("/org/bluez")
	adapterIface        = "org.bluez.Adapter1"
	deviceIface         = "org.bluez.Device1"
	profileIface        = "org.bluez.Profile1"
	profileManagerIface = "org.bluez.ProfileManager1"
	objManagerIface     = "org.freedesktop.DBus.ObjectManager"
	propsIface          = "org.freedesktop.DBus.Properties"

	errAccessDenied   = "org.freedesktop.DBus.Error.AccessDenied"
	errUnknownObject  = "org.freedesktop.DBus.Error.UnknownObject"
	errUnknownMethod  = "org.freedesktop.DBus.Error.UnknownMethod"
	errServiceUnknown = "org.freedesktop.DBus.Error.ServiceUnknown"
	errNotReady       = "org.bluez.Error.NotReady"
	errBluezFailed    = "org.bluez.Error.Failed"
)

// Errors
var (
	ErrAdapterNotFound = errors.New("bluetooth adapter not found")
	ErrBluezNotRunning = errors.New("org.bluez not found on system bus")
	ErrNotRegistered   = errors.New("profile not registered")
	ErrBusy            = errors.New("profile connection already in progress")
)

// Handler receives radio events. Methods are called from the signal
// goroutine and must not block.
type Handler interface {
	OnDeviceFound(dev device.Ref)
	OnDiscoveryStarted()
	OnDiscoveryFinished()
	OnAdapterStateChanged(enabled bool)
	OnRadioUnavailable()
}

// managedObjects is the GetManagedObjects reply shape.
type managedObjects map[dbus.ObjectPath]map[string]map[string]dbus.Variant

// AdapterPath returns the object path of the named adapter ("hci0").
func AdapterPath(adapter string) dbus.ObjectPath {
	return rootPath + "/" + dbus.ObjectPath(adapter)
}

// DevicePath converts a MAC address like "AA:BB:CC:DD:EE:FF" to
// "/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF".
func DevicePath(adapter, mac string) dbus.ObjectPath {
	escaped := strings.ReplaceAll(strings.ToUpper(mac), ":", "_")
	return AdapterPath(adapter) + "/dev_" + dbus.ObjectPath(escaped)
}

// MACFromPath extracts a MAC address from a device object path.
func MACFromPath(p dbus.ObjectPath) string {
	s := string(p)
	idx := strings.LastIndex(s, "/dev_")
	if idx < 0 {
		return ""
	}
	return strings.ReplaceAll(s[idx+5:], "_", ":")
}

// isChildOf reports whether p is a direct child of parent.
func isChildOf(p, parent dbus.ObjectPath) bool {
	prefix := string(parent) + "/"
	s := string(p)
	return strings.HasPrefix(s, prefix) && !strings.Contains(s[len(prefix):], "/")
}

// deviceFromProps builds a device reference from Device1 properties.
// The object path is the device ID.
func deviceFromProps(path dbus.ObjectPath, props map[string]dbus.Variant) device.Ref {
	address := stringProp(props, "Address")
	if address == "" {
		address = MACFromPath(path)
	}
	alias := stringProp(props, "Alias")
	// BlueZ falls back to a dashed address when no alias is known.
	if alias == strings.ReplaceAll(address, ":", "-") {
		alias = ""
	}
	return device.New(string(path), address, stringProp(props, "Name"), alias)
}

func stringProp(props map[string]dbus.Variant, name string) string {
	v, ok := props[name]
	if !ok {
		return ""
	}
	s, _ := v.Value().(string)
	return s
}

func boolProp(props map[string]dbus.Variant, name string) (bool, bool) {
	v, ok := props[name]
	if !ok {
		return false, false
	}
	b, ok := v.Value().(bool)
	return b, ok
}

// dbusErrorName returns the D-Bus error name of err, if it is one.
func dbusErrorName(err error) string {
	var derr dbus.Error
	if errors.As(err, &derr) {
		return derr.Name
	}
	var pderr *dbus.Error
	if errors.As(err, &pderr) && pderr != nil {
		return pderr.Name
	}
	return ""
}
