package bluez

import (
	"context"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/app/session/state"
	"github.com/osa030/bluetoothhub/internal/domain/device"
)

// Client wraps a private system bus connection bound to one adapter.
type Client struct {
	conn        *dbus.Conn
	adapter     string
	adapterPath dbus.ObjectPath
}

// Connect opens a private system bus connection and checks that BlueZ is
// running. The adapter itself may be missing; State reports that.
func Connect(ctx context.Context, adapter string) (*Client, error) {
	conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to system bus")
	}

	var names []string
	if err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to list bus names")
	}
	found := false
	for _, n := range names {
		if n == busName {
			found = true
			break
		}
	}
	if !found {
		conn.Close()
		return nil, ErrBluezNotRunning
	}

	zlog.Info().Msgf("connected to bluez: adapter=%s", adapter)
	return newClient(conn, adapter), nil
}

func newClient(conn *dbus.Conn, adapter string) *Client {
	return &Client{
		conn:        conn,
		adapter:     adapter,
		adapterPath: AdapterPath(adapter),
	}
}

// Close closes the bus connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// --- property helpers ---

func (c *Client) getProp(ctx context.Context, path dbus.ObjectPath, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	err := c.conn.Object(busName, path).CallWithContext(ctx, propsIface+".Get", 0, iface, prop).Store(&v)
	return v, err
}

func (c *Client) setProp(ctx context.Context, path dbus.ObjectPath, iface, prop string, val any) error {
	return c.conn.Object(busName, path).CallWithContext(ctx, propsIface+".Set", 0, iface, prop, dbus.MakeVariant(val)).Err
}

func (c *Client) adapterCall(ctx context.Context, method string, args ...any) error {
	return c.conn.Object(busName, c.adapterPath).CallWithContext(ctx, adapterIface+"."+method, 0, args...).Err
}

func (c *Client) managedObjects(ctx context.Context) (managedObjects, error) {
	var objs managedObjects
	call := c.conn.Object(busName, "/").CallWithContext(ctx, objManagerIface+".GetManagedObjects", 0)
	if call.Err != nil {
		return nil, errors.Wrap(call.Err, "GetManagedObjects")
	}
	if err := call.Store(&objs); err != nil {
		return nil, errors.Wrap(err, "decode GetManagedObjects")
	}
	return objs, nil
}

// --- radio ---

// State reports whether the adapter is powered. A missing adapter is
// returned as ErrAdapterNotFound.
func (c *Client) State(ctx context.Context) (state.Radio, error) {
	v, err := c.getProp(ctx, c.adapterPath, adapterIface, "Powered")
	if err != nil {
		switch dbusErrorName(err) {
		case errUnknownObject, errUnknownMethod, errServiceUnknown:
			return state.RadioUnavailable, errors.Wrapf(ErrAdapterNotFound, "%s", c.adapter)
		}
		return state.RadioUnavailable, errors.Wrap(err, "failed to read adapter power")
	}
	powered, ok := v.Value().(bool)
	if !ok {
		return state.RadioUnavailable, errors.New("adapter Powered is not bool")
	}
	if powered {
		return state.RadioReady, nil
	}
	return state.RadioDisabled, nil
}

// RequestEnable powers the adapter on.
func (c *Client) RequestEnable(ctx context.Context) error {
	if err := c.setProp(ctx, c.adapterPath, adapterIface, "Powered", true); err != nil {
		return errors.Wrap(err, "power on")
	}
	zlog.Info().Msgf("adapter power on requested: adapter=%s", c.adapter)
	return nil
}

// PairedDevices lists bonded devices known to the adapter, sorted by path.
func (c *Client) PairedDevices(ctx context.Context) ([]device.Ref, error) {
	objs, err := c.managedObjects(ctx)
	if err != nil {
		return nil, err
	}
	return pairedFromObjects(objs, c.adapterPath), nil
}

func pairedFromObjects(objs managedObjects, adapterPath dbus.ObjectPath) []device.Ref {
	var out []device.Ref
	for path, ifaces := range objs {
		props, ok := ifaces[deviceIface]
		if !ok || !isChildOf(path, adapterPath) {
			continue
		}
		if paired, _ := boolProp(props, "Paired"); !paired {
			continue
		}
		out = append(out, deviceFromProps(path, props))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StartDiscovery starts BR/EDR inquiry on the adapter.
func (c *Client) StartDiscovery(ctx context.Context) error {
	filter := map[string]dbus.Variant{
		"Transport": dbus.MakeVariant("bredr"),
	}
	if err := c.adapterCall(ctx, "SetDiscoveryFilter", filter); err != nil {
		// Older daemons lack filters; discovery still works without one.
		zlog.Debug().Msgf("SetDiscoveryFilter failed: error=%v", err)
	}
	if err := c.adapterCall(ctx, "StartDiscovery"); err != nil {
		return errors.Wrap(err, "StartDiscovery")
	}
	return nil
}

// CancelDiscovery stops discovery. Stopping an idle adapter is not an error.
func (c *Client) CancelDiscovery(ctx context.Context) error {
	err := c.adapterCall(ctx, "StopDiscovery")
	if err == nil {
		return nil
	}
	switch dbusErrorName(err) {
	case errNotReady:
		return nil
	case errBluezFailed:
		if strings.Contains(err.Error(), "No discovery started") {
			return nil
		}
	}
	return errors.Wrap(err, "StopDiscovery")
}

// CheckPermission reports whether the bus policy lets this process drive
// the adapter.
func (c *Client) CheckPermission(ctx context.Context) state.Permission {
	_, err := c.getProp(ctx, c.adapterPath, adapterIface, "Address")
	return permissionFromError(err)
}

func permissionFromError(err error) state.Permission {
	if err == nil {
		return state.PermissionGranted
	}
	switch dbusErrorName(err) {
	case errAccessDenied:
		return state.PermissionDenied
	case errUnknownObject, errUnknownMethod:
		// No adapter; permission is not what is missing.
		return state.PermissionGranted
	}
	return state.PermissionUnknown
}
