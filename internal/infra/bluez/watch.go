package bluez

import (
	"context"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	zlog "github.com/rs/zerolog/log"
)

const lookupTimeout = 2 * time.Second

// watcher turns BlueZ signals for one adapter into Handler calls.
type watcher struct {
	adapterPath dbus.ObjectPath
	handler     Handler

	// lookup fetches Device1 properties for devices that reappear through
	// PropertiesChanged rather than InterfacesAdded.
	lookup func(path dbus.ObjectPath) (map[string]dbus.Variant, error)
}

// Subscribe starts delivering adapter and discovery events to h. The
// returned function stops delivery; it is safe to call more than once.
func (c *Client) Subscribe(h Handler) (func(), error) {
	matches := [][]dbus.MatchOption{
		{
			dbus.WithMatchInterface(objManagerIface),
			dbus.WithMatchMember("InterfacesAdded"),
		},
		{
			dbus.WithMatchInterface(objManagerIface),
			dbus.WithMatchMember("InterfacesRemoved"),
		},
		{
			dbus.WithMatchInterface(propsIface),
			dbus.WithMatchMember("PropertiesChanged"),
			dbus.WithMatchPathNamespace(c.adapterPath),
		},
	}
	for i, m := range matches {
		if err := c.conn.AddMatchSignal(m...); err != nil {
			for _, added := range matches[:i] {
				_ = c.conn.RemoveMatchSignal(added...)
			}
			return nil, err
		}
	}

	w := &watcher{
		adapterPath: c.adapterPath,
		handler:     h,
		lookup: func(path dbus.ObjectPath) (map[string]dbus.Variant, error) {
			ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
			defer cancel()
			var props map[string]dbus.Variant
			err := c.conn.Object(busName, path).CallWithContext(ctx, propsIface+".GetAll", 0, deviceIface).Store(&props)
			return props, err
		},
	}

	sigCh := make(chan *dbus.Signal, 64)
	c.conn.Signal(sigCh)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				zlog.Error().Msgf("bluez signal loop panicked: %v", r)
			}
		}()
		for {
			select {
			case <-stop:
				return
			case sig, ok := <-sigCh:
				if !ok {
					return
				}
				w.dispatch(sig)
			}
		}
	}()

	zlog.Info().Msgf("watching adapter: path=%s", c.adapterPath)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.conn.RemoveSignal(sigCh)
			for _, m := range matches {
				_ = c.conn.RemoveMatchSignal(m...)
			}
			close(stop)
			<-done
		})
	}, nil
}

func (w *watcher) dispatch(sig *dbus.Signal) {
	if sig == nil {
		return
	}
	switch sig.Name {
	case objManagerIface + ".InterfacesAdded":
		w.onInterfacesAdded(sig)
	case objManagerIface + ".InterfacesRemoved":
		w.onInterfacesRemoved(sig)
	case propsIface + ".PropertiesChanged":
		w.onPropertiesChanged(sig)
	}
}

func (w *watcher) onInterfacesAdded(sig *dbus.Signal) {
	if len(sig.Body) < 2 {
		return
	}
	path, _ := sig.Body[0].(dbus.ObjectPath)
	ifaces, _ := sig.Body[1].(map[string]map[string]dbus.Variant)
	if ifaces == nil {
		return
	}

	if path == w.adapterPath {
		if props, ok := ifaces[adapterIface]; ok {
			powered, _ := boolProp(props, "Powered")
			w.handler.OnAdapterStateChanged(powered)
		}
		return
	}

	if props, ok := ifaces[deviceIface]; ok && isChildOf(path, w.adapterPath) {
		w.handler.OnDeviceFound(deviceFromProps(path, props))
	}
}

func (w *watcher) onInterfacesRemoved(sig *dbus.Signal) {
	if len(sig.Body) < 2 {
		return
	}
	path, _ := sig.Body[0].(dbus.ObjectPath)
	ifaces, _ := sig.Body[1].([]string)
	if path != w.adapterPath {
		return
	}
	for _, iface := range ifaces {
		if iface == adapterIface {
			zlog.Warn().Msgf("adapter removed: path=%s", path)
			w.handler.OnRadioUnavailable()
			return
		}
	}
}

func (w *watcher) onPropertiesChanged(sig *dbus.Signal) {
	if len(sig.Body) < 2 {
		return
	}
	iface, _ := sig.Body[0].(string)
	changed, _ := sig.Body[1].(map[string]dbus.Variant)
	if changed == nil {
		return
	}

	switch {
	case iface == adapterIface && sig.Path == w.adapterPath:
		if powered, ok := boolProp(changed, "Powered"); ok {
			w.handler.OnAdapterStateChanged(powered)
		}
		if discovering, ok := boolProp(changed, "Discovering"); ok {
			if discovering {
				w.handler.OnDiscoveryStarted()
			} else {
				w.handler.OnDiscoveryFinished()
			}
		}

	case iface == deviceIface && isChildOf(sig.Path, w.adapterPath):
		// Cached devices announce themselves through RSSI updates.
		_, rssi := changed["RSSI"]
		_, name := changed["Name"]
		if !rssi && !name {
			return
		}
		props, err := w.lookup(sig.Path)
		if err != nil {
			zlog.Debug().Msgf("device lookup failed: path=%s error=%v", sig.Path, err)
			return
		}
		w.handler.OnDeviceFound(deviceFromProps(sig.Path, props))
	}
}
