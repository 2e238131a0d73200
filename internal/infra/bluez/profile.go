package bluez

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	zlog "github.com/rs/zerolog/log"
)

// ProfilePath is where the client profile object is exported.
const ProfilePath = dbus.ObjectPath("/org/osa030/bluetoothhub/profile")

const disconnectTimeout = 3 * time.Second

// ProfileManager registers a client-role Profile1 for the service UUID and
// collects the sockets BlueZ hands over after Device1.ConnectProfile.
type ProfileManager struct {
	client      *Client
	serviceUUID string
	path        dbus.ObjectPath

	mu         sync.Mutex
	registered bool
	pending    map[dbus.ObjectPath]chan *os.File
}

// NewProfileManager creates a profile manager. Call Register before use.
func NewProfileManager(client *Client, serviceUUID string) *ProfileManager {
	return &ProfileManager{
		client:      client,
		serviceUUID: serviceUUID,
		path:        ProfilePath,
		pending:     make(map[dbus.ObjectPath]chan *os.File),
	}
}

// Register exports the profile object and registers it with BlueZ.
func (p *ProfileManager) Register(ctx context.Context) error {
	p.mu.Lock()
	registered := p.registered
	p.mu.Unlock()
	if registered {
		return nil
	}

	conn := p.client.conn
	if err := conn.Export(&profileObject{mgr: p}, p.path, profileIface); err != nil {
		return errors.Wrap(err, "export profile")
	}

	opts := map[string]dbus.Variant{
		"Name":        dbus.MakeVariant("bluetoothhub"),
		"Role":        dbus.MakeVariant("client"),
		"AutoConnect": dbus.MakeVariant(false),
	}
	call := conn.Object(busName, rootPath).CallWithContext(ctx, profileManagerIface+".RegisterProfile", 0, p.path, p.serviceUUID, opts)
	if call.Err != nil {
		_ = conn.Export(nil, p.path, profileIface)
		return errors.Wrapf(call.Err, "RegisterProfile(%s)", p.serviceUUID)
	}

	p.mu.Lock()
	p.registered = true
	p.mu.Unlock()
	zlog.Info().Msgf("profile registered: path=%s uuid=%s", p.path, p.serviceUUID)
	return nil
}

// Unregister removes the profile from BlueZ and unexports it.
func (p *ProfileManager) Unregister(ctx context.Context) error {
	p.mu.Lock()
	if !p.registered {
		p.mu.Unlock()
		return nil
	}
	p.registered = false
	p.mu.Unlock()

	conn := p.client.conn
	err := conn.Object(busName, rootPath).CallWithContext(ctx, profileManagerIface+".UnregisterProfile", 0, p.path).Err
	_ = conn.Export(nil, p.path, profileIface)
	if err != nil {
		return errors.Wrap(err, "UnregisterProfile")
	}
	zlog.Info().Msgf("profile unregistered: path=%s", p.path)
	return nil
}

// ConnectProfile connects the service profile on the device at deviceID
// (a BlueZ object path) and returns the socket BlueZ delivers. Cancelling
// ctx aborts the attempt and asks BlueZ to drop the profile connection.
func (p *ProfileManager) ConnectProfile(ctx context.Context, deviceID string) (io.ReadCloser, error) {
	path := dbus.ObjectPath(deviceID)
	if !path.IsValid() {
		return nil, errors.Newf("invalid device path: %q", deviceID)
	}

	ch := make(chan *os.File, 1)
	p.mu.Lock()
	if !p.registered {
		p.mu.Unlock()
		return nil, ErrNotRegistered
	}
	if _, busy := p.pending[path]; busy {
		p.mu.Unlock()
		return nil, ErrBusy
	}
	p.pending[path] = ch
	p.mu.Unlock()

	defer p.release(path, ch)

	dev := p.client.conn.Object(busName, path)
	call := dev.CallWithContext(ctx, deviceIface+".ConnectProfile", 0, p.serviceUUID)
	if ctx.Err() != nil {
		p.disconnect(path)
		return nil, errors.Wrap(ctx.Err(), "ConnectProfile")
	}
	if call.Err != nil {
		return nil, errors.Wrap(call.Err, "ConnectProfile")
	}

	select {
	case f := <-ch:
		zlog.Info().Msgf("profile connected: device=%s", path)
		return f, nil
	case <-ctx.Done():
		p.disconnect(path)
		return nil, errors.Wrap(ctx.Err(), "waiting for profile socket")
	}
}

// release forgets a pending attempt and closes a socket that arrived late.
func (p *ProfileManager) release(path dbus.ObjectPath, ch chan *os.File) {
	p.mu.Lock()
	if p.pending[path] == ch {
		delete(p.pending, path)
	}
	p.mu.Unlock()

	select {
	case f := <-ch:
		_ = f.Close()
	default:
	}
}

func (p *ProfileManager) disconnect(path dbus.ObjectPath) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	err := p.client.conn.Object(busName, path).CallWithContext(ctx, deviceIface+".DisconnectProfile", 0, p.serviceUUID).Err
	if err != nil {
		zlog.Debug().Msgf("DisconnectProfile failed: device=%s error=%v", path, err)
	}
}

// deliver hands a connected socket to the waiting attempt. It returns false
// if nobody is waiting for this device.
func (p *ProfileManager) deliver(path dbus.ObjectPath, f *os.File) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, ok := p.pending[path]
	if !ok {
		return false
	}
	select {
	case ch <- f:
		return true
	default:
		return false
	}
}

// profileObject is the exported org.bluez.Profile1 implementation.
type profileObject struct {
	mgr *ProfileManager
}

// Release is called by BlueZ when the profile is being released.
func (o *profileObject) Release() *dbus.Error {
	zlog.Warn().Msg("profile released by bluez")
	o.mgr.mu.Lock()
	o.mgr.registered = false
	o.mgr.mu.Unlock()
	return nil
}

// Cancel is called when a pending request is cancelled.
func (o *profileObject) Cancel() *dbus.Error { return nil }

// RequestDisconnection is informational; the socket owner closes the fd.
func (o *profileObject) RequestDisconnection(dev dbus.ObjectPath) *dbus.Error {
	zlog.Debug().Msgf("profile disconnection requested: device=%s", dev)
	return nil
}

// NewConnection receives the connected RFCOMM socket.
func (o *profileObject) NewConnection(dev dbus.ObjectPath, fd dbus.UnixFD, _ map[string]dbus.Variant) *dbus.Error {
	f, err := newSocket(int(fd))
	if err != nil {
		closeFD(int(fd))
		return &dbus.Error{Name: "org.bluez.Error.Rejected", Body: []interface{}{err.Error()}}
	}
	if !o.mgr.deliver(dev, f) {
		_ = f.Close()
		return &dbus.Error{Name: "org.bluez.Error.Rejected", Body: []interface{}{"no pending connection"}}
	}
	return nil
}

func closeFD(fd int) {
	_ = os.NewFile(uintptr(fd), "rfcomm").Close()
}
