// Package session provides the session manager.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/app/connection"
	"github.com/osa030/bluetoothhub/internal/app/filter"
	"github.com/osa030/bluetoothhub/internal/app/notification"
	"github.com/osa030/bluetoothhub/internal/app/session/registry"
	"github.com/osa030/bluetoothhub/internal/app/session/state"
	"github.com/osa030/bluetoothhub/internal/app/stream"
	"github.com/osa030/bluetoothhub/internal/domain/device"
	"github.com/osa030/bluetoothhub/internal/infra/config"
)

var (
	ErrNoDeviceSelected = errors.New("no device selected")
	ErrUnknownDevice    = registry.ErrUnknownDevice
	ErrManagerClosed    = errors.New("session manager is closed")
	ErrNotStarted       = errors.New("session manager is not started")
)

const defaultCallTimeout = 5 * time.Second

// Options holds session manager configuration.
type Options struct {
	DiscoveryTimeout time.Duration // Auto-cancel discovery after this long; 0 disables
	SkipUnnamed      bool          // Ignore devices found without a name
	ConnectTimeout   time.Duration // Passed to supervisors; 0 uses the transport's
	Stream           stream.Config
	CallTimeout      time.Duration // Bound for radio calls; 0 means 5s
	Filters          *filter.Chain // Applied to found devices; nil accepts all
}

// OptionsFromConfig builds Options from the application configuration.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	enc, err := stream.LookupEncoding(cfg.Stream.Encoding)
	if err != nil {
		return Options{}, errors.Wrap(err, "invalid stream encoding")
	}
	filters, err := setupFilters(cfg)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Filters:          filters,
		DiscoveryTimeout: cfg.DiscoveryTimeout(),
		SkipUnnamed:      cfg.SkipUnnamedDevices(),
		Stream: stream.Config{
			ReadSize: cfg.Stream.ReadSize,
			Encoding: enc,
		},
	}, nil
}

// Manager is the session state machine. All mutations run on a single
// event loop goroutine; public operations enqueue work and wait for it,
// radio and connection events are enqueued without waiting.
type Manager struct {
	opts Options

	// Collaborators
	radio       Radio
	transport   connection.Transport
	permissions PermissionChecker

	// Loop-owned state
	stateMgr       *state.Manager
	discovered     *registry.DeviceRegistry
	paired         *registry.DeviceRegistry
	selected       *device.Ref
	supervisor     *connection.Supervisor
	connState      connection.State
	lastData       *string
	version        uint64
	discoveryTimer *time.Timer
	discoveryGen   uint64

	// Radio finish signals still owed for cancels issued by the manager.
	pendingFinishes int

	views   *notification.Manager[View]
	mailbox *mailbox

	startOnce sync.Once
	closeOnce sync.Once
	started   chan struct{}

	// Context
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a new session manager. Call Start before use.
// A nil permissions checker grants everything.
func NewManager(opts Options, radio Radio, transport connection.Transport, permissions PermissionChecker) *Manager {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = defaultCallTimeout
	}
	if permissions == nil {
		permissions = AlwaysPermitted
	}

	ctx, cancel := context.WithCancel(context.Background())
	sessionID := uuid.New().String()

	m := &Manager{
		opts:        opts,
		radio:       radio,
		transport:   transport,
		permissions: permissions,
		stateMgr:    state.New(sessionID, state.RadioUnavailable),
		discovered:  registry.NewDeviceRegistry(),
		paired:      registry.NewDeviceRegistry(),
		connState:   connection.NotStarted(),
		mailbox:     newMailbox(),
		started:     make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	m.views = notification.NewManager(m.buildView())
	return m
}

// Start reads the adapter state, snapshots paired devices and starts the event
// loop. A missing adapter is not an error; the view reports RadioUnavailable.
func (m *Manager) Start(ctx context.Context) error {
	if m.ctx.Err() != nil {
		return ErrManagerClosed
	}

	var started bool
	m.startOnce.Do(func() {
		started = true

		radio, err := m.radio.State(ctx)
		if err != nil {
			zlog.Warn().Msgf("radio unavailable: session_id=%s error=%v", m.stateMgr.GetSessionID(), err)
			m.stateMgr.SetRadio(state.RadioUnavailable)
			m.stateMgr.SetLastError(err.Error())
		} else {
			m.stateMgr.SetRadio(radio)
		}

		if radio == state.RadioReady {
			if paired, err := m.radio.PairedDevices(ctx); err != nil {
				zlog.Error().Msgf("failed to list paired devices: error=%v", err)
			} else {
				m.paired.Replace(paired)
			}
		}

		m.publish("started")
		zlog.Info().Msgf("session started: session_id=%s radio=%s paired=%d",
			m.stateMgr.GetSessionID(), m.stateMgr.GetRadio(), m.paired.Count())

		close(m.started)
		go m.loop()
	})
	if !started {
		return errors.New("session manager already started")
	}
	return nil
}

// Done returns a channel that is closed when the event loop has exited.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// SessionID returns the session ID.
func (m *Manager) SessionID() string {
	return m.stateMgr.GetSessionID()
}

// View returns the current snapshot.
func (m *Manager) View() View {
	return m.views.Load()
}

// Subscribe returns a latest-value stream of views. The channel holds the
// current view immediately and is closed by Unsubscribe or Close.
func (m *Manager) Subscribe() (string, <-chan View) {
	return m.views.Subscribe()
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.views.Unsubscribe(subscriptionID)
}

// Close cancels discovery and the live connection, stops the event loop
// and closes all subscriptions.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		select {
		case <-m.started:
			err := m.do(context.Background(), func() error {
				m.stopDiscoveryTimer()
				if m.stateMgr.IsDiscovering() {
					m.radioCall("cancel discovery", m.radio.CancelDiscovery)
					m.stateMgr.StopDiscovering()
				}
				if m.supervisor != nil {
					m.supervisor.Cancel()
				}
				return nil
			})
			if err != nil {
				zlog.Warn().Msgf("session shutdown: %v", err)
			}

			m.cancel()
			select {
			case <-m.done:
			case <-time.After(1 * time.Second):
				zlog.Warn().Msg("session loop did not stop in time")
			}
		default:
			m.cancel()
			close(m.done)
		}

		m.views.Close()
		zlog.Info().Msgf("session closed: session_id=%s", m.stateMgr.GetSessionID())
	})
}

// loop runs queued closures until the manager is closed.
func (m *Manager) loop() {
	defer close(m.done)
	defer m.mailbox.close()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-m.mailbox.signal:
			for _, fn := range m.mailbox.drain() {
				m.run(fn)
			}
		}
	}
}

func (m *Manager) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error().Msgf("session loop task panicked: %v", r)
		}
	}()
	fn()
}

// do runs fn on the event loop and waits for its result.
func (m *Manager) do(ctx context.Context, fn func() error) error {
	select {
	case <-m.started:
	default:
		return ErrNotStarted
	}

	result := make(chan error, 1)
	if !m.mailbox.post(func() { result <- fn() }) {
		return ErrManagerClosed
	}

	select {
	case err := <-result:
		return err
	case <-m.done:
		return ErrManagerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post runs fn on the event loop without waiting.
func (m *Manager) post(fn func()) {
	if !m.mailbox.post(fn) {
		zlog.Debug().Msg("session event dropped: manager closed")
	}
}

// callContext bounds a radio call made from the event loop.
func (m *Manager) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, m.opts.CallTimeout)
}

// radioCall runs a radio operation and records failures in LastError.
func (m *Manager) radioCall(op string, fn func(context.Context) error) bool {
	ctx, cancel := m.callContext()
	defer cancel()

	if err := fn(ctx); err != nil {
		zlog.Error().Msgf("radio call failed: op=%s error=%v", op, err)
		m.stateMgr.SetLastError(fmt.Sprintf("%s: %v", op, err))
		return false
	}
	return true
}

// ===== Radio events =====

// OnRadioEnabled records that the adapter is powered on.
func (m *Manager) OnRadioEnabled() {
	m.post(func() { m.setRadio(state.RadioReady) })
}

// OnRadioDisabled records that the adapter is powered off.
func (m *Manager) OnRadioDisabled() {
	m.post(func() { m.setRadio(state.RadioDisabled) })
}

// OnRadioUnavailable records that the adapter has disappeared.
func (m *Manager) OnRadioUnavailable() {
	m.post(func() { m.setRadio(state.RadioUnavailable) })
}

// OnAdapterStateChanged maps an adapter power change to radio state.
func (m *Manager) OnAdapterStateChanged(enabled bool) {
	if enabled {
		m.OnRadioEnabled()
		return
	}
	m.OnRadioDisabled()
}

func (m *Manager) setRadio(r state.Radio) {
	if m.stateMgr.GetRadio() == r {
		return
	}
	m.stateMgr.SetRadio(r)
	if r != state.RadioReady {
		m.stopDiscoveryTimer()
	}
	zlog.Info().Msgf("radio state changed: radio=%s", r)
	m.publish("radio")
}

// OnDeviceFound appends dev to the discovered list while discovery is active.
func (m *Manager) OnDeviceFound(dev device.Ref) {
	m.post(func() {
		if !m.stateMgr.IsDiscovering() {
			zlog.Debug().Msgf("device found outside discovery, dropped: device=%s", dev.ID)
			return
		}
		if m.opts.SkipUnnamed && !dev.HasName() {
			zlog.Debug().Msgf("unnamed device skipped: device=%s", dev.ID)
			return
		}
		if result := m.opts.Filters.Execute(m.ctx, dev); !result.Accepted {
			zlog.Debug().Msgf("device filtered: device=%s code=%s", dev.ID, result.Code)
			return
		}
		if !m.discovered.Add(dev) {
			return
		}
		zlog.Info().Msgf("device found: device=%s name=%s", dev.ID, dev.DisplayName())
		m.publish("device_found")
	})
}

// OnDiscoveryStarted records that the radio reports discovery running.
// Finish signals owed by earlier cancels arrive before it, so any still
// outstanding were coalesced by the radio and are forgotten.
func (m *Manager) OnDiscoveryStarted() {
	m.post(func() {
		if m.pendingFinishes > 0 {
			zlog.Debug().Msgf("discovery restarted by radio: dropped_finishes=%d", m.pendingFinishes)
			m.pendingFinishes = 0
		}
	})
}

// OnDiscoveryFinished marks discovery as idle. Discovered devices are kept.
// A finish that answers a cancel issued by the manager itself is ignored so
// a restarted discovery is not ended by the run it replaced.
func (m *Manager) OnDiscoveryFinished() {
	m.post(func() {
		if m.pendingFinishes > 0 {
			m.pendingFinishes--
			zlog.Debug().Msgf("discovery finish of cancelled run ignored: pending=%d", m.pendingFinishes)
			return
		}
		if !m.stateMgr.IsDiscovering() {
			return
		}
		m.stopDiscoveryTimer()
		m.stateMgr.StopDiscovering()
		zlog.Info().Msgf("discovery finished: discovered=%d", m.discovered.Count())
		m.publish("discovery_finished")
	})
}

// ===== Permission reports =====

// PermissionGranted records a granted permission.
func (m *Manager) PermissionGranted() {
	m.post(func() { m.setPermission(state.PermissionGranted) })
}

// PermissionDenied records a denied permission.
func (m *Manager) PermissionDenied() {
	m.post(func() { m.setPermission(state.PermissionDenied) })
}

// PermissionRequired records that permission must be requested.
func (m *Manager) PermissionRequired() {
	m.post(func() { m.setPermission(state.PermissionRequired) })
}

// ReportPermission records a permission report and waits for it to apply.
func (m *Manager) ReportPermission(ctx context.Context, p state.Permission) error {
	return m.do(ctx, func() error {
		m.setPermission(p)
		return nil
	})
}

func (m *Manager) setPermission(p state.Permission) {
	if m.stateMgr.GetPermission() == p {
		return
	}
	m.stateMgr.SetPermission(p)
	zlog.Info().Msgf("permission changed: permission=%s", p)
	m.publish("permission")
}

// ensurePermission lazily queries the checker. When permission is missing
// the view is flagged with PermissionRequired.
func (m *Manager) ensurePermission() bool {
	if m.stateMgr.IsPermitted() {
		return true
	}

	ctx, cancel := m.callContext()
	defer cancel()

	if p := m.permissions.CheckPermission(ctx); p == state.PermissionGranted {
		m.stateMgr.SetPermission(state.PermissionGranted)
		return true
	}

	m.stateMgr.SetPermission(state.PermissionRequired)
	zlog.Warn().Msg("permission required")
	m.publish("permission_required")
	return false
}

// ===== Discovery =====

// RequestDiscovery starts a fresh discovery. Discovered devices are cleared,
// paired devices are re-read and a running discovery is restarted.
func (m *Manager) RequestDiscovery(ctx context.Context) error {
	return m.do(ctx, func() error {
		if !m.ensurePermission() {
			return nil
		}
		if radio := m.stateMgr.GetRadio(); radio != state.RadioReady {
			m.stateMgr.SetLastError(fmt.Sprintf("discovery: radio %s", radio))
			m.publish("discovery_refused")
			return nil
		}

		m.discovered.Clear()
		m.snapshotPaired()

		if m.stateMgr.IsDiscovering() {
			m.stopDiscoveryTimer()
			m.cancelRadioDiscovery()
			m.stateMgr.StopDiscovering()
		}

		if !m.radioCall("start discovery", m.radio.StartDiscovery) {
			m.publish("discovery_failed")
			return nil
		}

		m.stateMgr.StartDiscovering()
		m.stateMgr.SetLastError("")
		m.armDiscoveryTimer()
		zlog.Info().Msgf("discovery started: paired=%d", m.paired.Count())
		m.publish("discovery_started")
		return nil
	})
}

// CancelDiscovery stops an active discovery. It is a no-op when idle.
func (m *Manager) CancelDiscovery(ctx context.Context) error {
	return m.do(ctx, func() error {
		m.stopDiscovery("cancelled")
		return nil
	})
}

func (m *Manager) stopDiscovery(reason string) {
	if !m.stateMgr.IsDiscovering() {
		return
	}
	m.stopDiscoveryTimer()
	m.cancelRadioDiscovery()
	m.stateMgr.StopDiscovering()
	zlog.Info().Msgf("discovery stopped: reason=%s discovered=%d", reason, m.discovered.Count())
	m.publish("discovery_stopped")
}

// cancelRadioDiscovery stops the radio scan. The radio answers a
// successful cancel with a finish signal of its own, which is owed.
func (m *Manager) cancelRadioDiscovery() {
	if m.radioCall("cancel discovery", m.radio.CancelDiscovery) {
		m.pendingFinishes++
	}
}

func (m *Manager) snapshotPaired() {
	ctx, cancel := m.callContext()
	defer cancel()

	paired, err := m.radio.PairedDevices(ctx)
	if err != nil {
		zlog.Error().Msgf("failed to list paired devices: error=%v", err)
		m.stateMgr.SetLastError(fmt.Sprintf("paired devices: %v", err))
		return
	}
	m.paired.Replace(paired)
}

func (m *Manager) armDiscoveryTimer() {
	if m.opts.DiscoveryTimeout <= 0 {
		return
	}
	m.discoveryGen++
	gen := m.discoveryGen
	m.discoveryTimer = time.AfterFunc(m.opts.DiscoveryTimeout, func() {
		m.post(func() {
			if gen != m.discoveryGen {
				return
			}
			m.stopDiscovery("timeout")
		})
	})
}

func (m *Manager) stopDiscoveryTimer() {
	m.discoveryGen++
	if m.discoveryTimer != nil {
		m.discoveryTimer.Stop()
		m.discoveryTimer = nil
	}
}

// ===== Selection and connection =====

// SelectDevice records dev as the connection target. A live connection is
// left untouched.
func (m *Manager) SelectDevice(ctx context.Context, dev device.Ref) error {
	return m.do(ctx, func() error {
		m.selectDevice(dev)
		return nil
	})
}

// SelectDeviceByID selects a discovered or paired device by ID.
func (m *Manager) SelectDeviceByID(ctx context.Context, id string) error {
	return m.do(ctx, func() error {
		dev, err := m.discovered.Get(id)
		if err != nil {
			if dev, err = m.paired.Get(id); err != nil {
				return errors.Wrapf(err, "select %s", id)
			}
		}
		m.selectDevice(dev)
		return nil
	})
}

func (m *Manager) selectDevice(dev device.Ref) {
	m.selected = &dev
	zlog.Info().Msgf("device selected: device=%s name=%s", dev.ID, dev.DisplayName())
	m.publish("selected")
}

// ConnectToSelected starts a connection to the selected device. A running
// discovery is cancelled and a live connection is cancelled and awaited
// before the new attempt starts.
func (m *Manager) ConnectToSelected(ctx context.Context) error {
	return m.do(ctx, func() error {
		if m.selected == nil {
			return ErrNoDeviceSelected
		}
		if !m.ensurePermission() {
			return nil
		}

		m.stopDiscovery("connecting")
		m.retireSupervisor()

		dev := *m.selected
		var sup *connection.Supervisor
		sup = connection.NewSupervisor(dev, m.transport, connection.Options{
			ConnectTimeout: m.opts.ConnectTimeout,
			Stream:         m.opts.Stream,
			OnEvent: func(st connection.State) {
				m.post(func() { m.onConnectionEvent(sup, st) })
			},
		})
		m.supervisor = sup
		m.connState = connection.Connecting()
		m.lastData = nil

		if err := sup.Connect(); err != nil {
			return errors.Wrap(err, "failed to start connection")
		}
		zlog.Info().Msgf("connecting: device=%s supervisor_id=%s", dev.ID, sup.ID())
		m.publish("connecting")
		return nil
	})
}

// retireSupervisor cancels the current supervisor and waits for it to reach
// a terminal state, so that at most one attempt is ever live.
func (m *Manager) retireSupervisor() {
	old := m.supervisor
	if old == nil {
		return
	}
	m.supervisor = nil
	old.Cancel()

	select {
	case <-old.Done():
	case <-time.After(1 * time.Second):
		zlog.Warn().Msgf("waiting for previous connection to close: supervisor_id=%s", old.ID())
		<-old.Done()
	}
}

// CancelConnection cancels the live connection. It is a no-op otherwise.
func (m *Manager) CancelConnection(ctx context.Context) error {
	return m.do(ctx, func() error {
		if m.supervisor == nil {
			return nil
		}
		zlog.Info().Msgf("cancelling connection: supervisor_id=%s", m.supervisor.ID())
		m.supervisor.Cancel()
		return nil
	})
}

func (m *Manager) onConnectionEvent(sup *connection.Supervisor, st connection.State) {
	if sup != m.supervisor {
		zlog.Debug().Msgf("stale connection event ignored: supervisor_id=%s state=%s", sup.ID(), st)
		return
	}

	m.connState = st
	if st.Phase == connection.PhaseDataReceived {
		data := st.Data
		m.lastData = &data
	}
	m.publish("connection")
}

// RequestEnableRadio asks the radio collaborator to power on the adapter.
func (m *Manager) RequestEnableRadio(ctx context.Context) error {
	return m.do(ctx, func() error {
		if m.radioCall("enable radio", m.radio.RequestEnable) {
			m.stateMgr.SetLastError("")
		}
		m.publish("enable_radio")
		return nil
	})
}

// ===== View =====

func (m *Manager) buildView() View {
	var selected *device.Ref
	if m.selected != nil {
		sel := *m.selected
		selected = &sel
	}
	var data *string
	if m.lastData != nil {
		d := *m.lastData
		data = &d
	}

	return View{
		SessionID:        m.stateMgr.GetSessionID(),
		Version:          m.version,
		Radio:            m.stateMgr.GetRadio(),
		Discovery:        m.stateMgr.GetDiscovery(),
		Permission:       m.stateMgr.GetPermission(),
		Discovered:       m.discovered.All(),
		Paired:           m.paired.All(),
		Selected:         selected,
		Connection:       m.connState,
		LastReceivedData: data,
		LastError:        m.stateMgr.GetLastError(),
	}
}

// publish builds and publishes a fresh view.
func (m *Manager) publish(reason string) {
	m.version++
	v := m.buildView()
	m.views.Publish(v)
	zlog.Debug().Msgf("view published: version=%d reason=%s connection=%s", v.Version, reason, v.Connection)
}
