package session

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/bluetoothhub/internal/app/connection"
	"github.com/osa030/bluetoothhub/internal/app/session/state"
	"github.com/osa030/bluetoothhub/internal/domain/device"
)

// ===== Fakes =====

type fakeRadio struct {
	mu       sync.Mutex
	state    state.Radio
	stateErr error
	paired   []device.Ref
	startErr error
	starts   int
	cancels  int
	enables  int

	// onCancel runs after a successful CancelDiscovery, outside the lock.
	onCancel func()
}

func (r *fakeRadio) State(ctx context.Context) (state.Radio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.stateErr
}

func (r *fakeRadio) PairedDevices(ctx context.Context) ([]device.Ref, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]device.Ref(nil), r.paired...), nil
}

func (r *fakeRadio) StartDiscovery(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
	return r.startErr
}

func (r *fakeRadio) CancelDiscovery(ctx context.Context) error {
	r.mu.Lock()
	r.cancels++
	onCancel := r.onCancel
	r.mu.Unlock()

	if onCancel != nil {
		onCancel()
	}
	return nil
}

// finishAsync makes every cancel answer with a late OnDiscoveryFinished
// from another goroutine, the way BlueZ reports Discovering=false.
func (r *fakeRadio) finishAsync(m *Manager, wg *sync.WaitGroup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onCancel = func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.OnDiscoveryFinished()
		}()
	}
}

func (r *fakeRadio) RequestEnable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enables++
	return nil
}

func (r *fakeRadio) counts() (starts, cancels, enables int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starts, r.cancels, r.enables
}

// fakeTransport delegates each Open to a per-call behavior and tracks how
// many opens are in flight at once.
type fakeTransport struct {
	mu          sync.Mutex
	calls       int
	inFlight    int
	maxInFlight int
	contexts    []context.Context
	open        func(ctx context.Context, call int) (connection.Socket, error)
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Open(ctx context.Context, dev device.Ref) (connection.Socket, error) {
	f.mu.Lock()
	call := f.calls
	f.calls++
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.contexts = append(f.contexts, ctx)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()
	return f.open(ctx, call)
}

func (f *fakeTransport) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeTransport) context(i int) context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contexts[i]
}

func blockUntilCancelled(ctx context.Context, _ int) (connection.Socket, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var (
	devA = device.New("dev-a", "AA:AA:AA:AA:AA:AA", "Alpha", "")
	devB = device.New("dev-b", "BB:BB:BB:BB:BB:BB", "Bravo", "")
	devP = device.New("dev-p", "CC:CC:CC:CC:CC:CC", "Paired", "")
)

func newTestManager(t *testing.T, radio *fakeRadio, transport connection.Transport, perms PermissionChecker, opts Options) *Manager {
	t.Helper()
	m := NewManager(opts, radio, transport, perms)
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Close)
	return m
}

func readyRadio() *fakeRadio {
	return &fakeRadio{state: state.RadioReady, paired: []device.Ref{devP}}
}

// barrier waits until every previously posted event has been handled.
func barrier(t *testing.T, m *Manager) {
	t.Helper()
	require.NoError(t, m.do(context.Background(), func() error { return nil }))
}

func startDiscovery(t *testing.T, m *Manager) {
	t.Helper()
	require.NoError(t, m.RequestDiscovery(context.Background()))
	require.True(t, m.View().IsDiscovering())
}

func ids(refs []device.Ref) []string {
	var out []string
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}

// ===== Lifecycle =====

func TestManager_StartReadsRadioState(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})

	v := m.View()
	assert.Equal(t, state.RadioReady, v.Radio)
	assert.Equal(t, state.DiscoveryIdle, v.Discovery)
	assert.Equal(t, []string{"dev-p"}, ids(v.Paired))
	assert.Equal(t, connection.PhaseNotStarted, v.Connection.Phase)
	assert.NotEmpty(t, v.SessionID)
	assert.Equal(t, m.SessionID(), v.SessionID)

	assert.Error(t, m.Start(context.Background()))
}

func TestManager_StartWithoutAdapter(t *testing.T) {
	radio := &fakeRadio{stateErr: errors.New("adapter hci0 not found")}
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})

	v := m.View()
	assert.Equal(t, state.RadioUnavailable, v.Radio)
	assert.Contains(t, v.LastError, "not found")
	assert.Empty(t, v.Paired)
}

func TestManager_OperationsBeforeStart(t *testing.T) {
	m := NewManager(Options{}, readyRadio(), &fakeTransport{}, nil)
	assert.ErrorIs(t, m.RequestDiscovery(context.Background()), ErrNotStarted)

	m.Close()
	<-m.Done()
	assert.ErrorIs(t, m.Start(context.Background()), ErrManagerClosed)
}

func TestManager_Close(t *testing.T) {
	radio := readyRadio()
	transport := &fakeTransport{open: blockUntilCancelled}
	m := NewManager(Options{}, radio, transport, nil)
	require.NoError(t, m.Start(context.Background()))

	startDiscovery(t, m)
	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))

	_, ch := m.Subscribe()
	m.Close()
	m.Close()

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}

	_, cancels, _ := radio.counts()
	assert.GreaterOrEqual(t, cancels, 1)
	require.Eventually(t, func() bool {
		return transport.callCount() == 1 && transport.context(0).Err() != nil
	}, time.Second, 5*time.Millisecond)

	for range ch {
	}
	assert.ErrorIs(t, m.CancelConnection(context.Background()), ErrManagerClosed)
}

// ===== Permission =====

func TestManager_DiscoveryWithoutPermission(t *testing.T) {
	radio := readyRadio()
	denied := PermissionFunc(func(context.Context) state.Permission { return state.PermissionDenied })
	m := newTestManager(t, radio, &fakeTransport{}, denied, Options{})

	require.NoError(t, m.RequestDiscovery(context.Background()))

	v := m.View()
	assert.True(t, v.PermissionRequired())
	assert.Equal(t, state.DiscoveryIdle, v.Discovery)
	starts, _, _ := radio.counts()
	assert.Equal(t, 0, starts)
}

func TestManager_PermissionCheckedLazily(t *testing.T) {
	var mu sync.Mutex
	queries := 0
	checker := PermissionFunc(func(context.Context) state.Permission {
		mu.Lock()
		defer mu.Unlock()
		queries++
		return state.PermissionGranted
	})
	m := newTestManager(t, readyRadio(), &fakeTransport{}, checker, Options{})

	mu.Lock()
	assert.Equal(t, 0, queries)
	mu.Unlock()

	startDiscovery(t, m)
	startDiscovery(t, m)

	mu.Lock()
	assert.Equal(t, 1, queries)
	mu.Unlock()
	assert.Equal(t, state.PermissionGranted, m.View().Permission)
}

func TestManager_PermissionReports(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})

	m.PermissionRequired()
	barrier(t, m)
	assert.Equal(t, state.PermissionRequired, m.View().Permission)

	m.PermissionDenied()
	barrier(t, m)
	assert.Equal(t, state.PermissionDenied, m.View().Permission)

	m.PermissionGranted()
	barrier(t, m)
	assert.Equal(t, state.PermissionGranted, m.View().Permission)

	require.NoError(t, m.ReportPermission(context.Background(), state.PermissionDenied))
	assert.Equal(t, state.PermissionDenied, m.View().Permission)
}

// ===== Discovery =====

func TestManager_DeviceFoundDeduplicates(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})
	startDiscovery(t, m)

	m.OnDeviceFound(devA)
	m.OnDeviceFound(devA)
	m.OnDeviceFound(devB)
	m.OnDeviceFound(devA)
	barrier(t, m)

	assert.Equal(t, []string{"dev-a", "dev-b"}, ids(m.View().Discovered))
}

func TestManager_DeviceFoundFiltering(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{SkipUnnamed: true})

	// Not discovering
	m.OnDeviceFound(devA)
	barrier(t, m)
	assert.Empty(t, m.View().Discovered)

	startDiscovery(t, m)
	m.OnDeviceFound(device.New("dev-x", "DD:DD:DD:DD:DD:DD", "", ""))
	m.OnDeviceFound(devB)
	barrier(t, m)
	assert.Equal(t, []string{"dev-b"}, ids(m.View().Discovered))
}

func TestManager_RequestDiscoveryRestarts(t *testing.T) {
	radio := readyRadio()
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})

	startDiscovery(t, m)
	m.OnDeviceFound(devA)
	barrier(t, m)
	require.Len(t, m.View().Discovered, 1)

	radio.mu.Lock()
	radio.paired = []device.Ref{devP, devB}
	radio.mu.Unlock()

	startDiscovery(t, m)

	v := m.View()
	assert.Empty(t, v.Discovered)
	assert.Equal(t, []string{"dev-p", "dev-b"}, ids(v.Paired))
	starts, cancels, _ := radio.counts()
	assert.Equal(t, 2, starts)
	assert.Equal(t, 1, cancels)
}

func TestManager_DiscoveryRequiresReadyRadio(t *testing.T) {
	radio := readyRadio()
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})

	m.OnAdapterStateChanged(false)
	barrier(t, m)
	require.Equal(t, state.RadioDisabled, m.View().Radio)

	require.NoError(t, m.RequestDiscovery(context.Background()))
	v := m.View()
	assert.Equal(t, state.DiscoveryIdle, v.Discovery)
	assert.Contains(t, v.LastError, "disabled")
	starts, _, _ := radio.counts()
	assert.Equal(t, 0, starts)
}

func TestManager_DiscoveryStartFailure(t *testing.T) {
	radio := readyRadio()
	radio.startErr = errors.New("org.bluez.Error.InProgress")
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})

	require.NoError(t, m.RequestDiscovery(context.Background()))

	v := m.View()
	assert.Equal(t, state.DiscoveryIdle, v.Discovery)
	assert.Contains(t, v.LastError, "InProgress")
}

func TestManager_DiscoveryFinishedKeepsDevices(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})
	startDiscovery(t, m)
	m.OnDeviceFound(devA)
	m.OnDiscoveryFinished()
	m.OnDeviceFound(devB)
	barrier(t, m)

	v := m.View()
	assert.Equal(t, state.DiscoveryIdle, v.Discovery)
	assert.Equal(t, []string{"dev-a"}, ids(v.Discovered))
}

func TestManager_RestartIgnoresLateFinish(t *testing.T) {
	radio := readyRadio()
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})
	var finishes sync.WaitGroup
	radio.finishAsync(m, &finishes)

	startDiscovery(t, m)
	startDiscovery(t, m)
	finishes.Wait()
	barrier(t, m)

	require.True(t, m.View().IsDiscovering())
	m.OnDeviceFound(devA)
	barrier(t, m)
	assert.Equal(t, []string{"dev-a"}, ids(m.View().Discovered))

	starts, cancels, _ := radio.counts()
	assert.Equal(t, 2, starts)
	assert.Equal(t, 1, cancels)

	// The running discovery still ends on a genuine finish.
	m.OnDiscoveryFinished()
	barrier(t, m)
	assert.False(t, m.View().IsDiscovering())
	assert.Equal(t, []string{"dev-a"}, ids(m.View().Discovered))
}

func TestManager_CancelThenRestartIgnoresLateFinish(t *testing.T) {
	radio := readyRadio()
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})
	var finishes sync.WaitGroup

	startDiscovery(t, m)
	radio.finishAsync(m, &finishes)
	require.NoError(t, m.CancelDiscovery(context.Background()))
	startDiscovery(t, m)
	finishes.Wait()
	barrier(t, m)

	assert.True(t, m.View().IsDiscovering())
}

func TestManager_DiscoveryStartedForgetsCoalescedFinish(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})

	// The radio reports the restart without a finish for the cancelled run.
	startDiscovery(t, m)
	startDiscovery(t, m)
	m.OnDiscoveryStarted()
	m.OnDiscoveryFinished()
	barrier(t, m)

	assert.False(t, m.View().IsDiscovering())
}

func TestManager_CancelDiscovery(t *testing.T) {
	radio := readyRadio()
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})

	// Idle: no radio call
	require.NoError(t, m.CancelDiscovery(context.Background()))
	_, cancels, _ := radio.counts()
	assert.Equal(t, 0, cancels)

	startDiscovery(t, m)
	require.NoError(t, m.CancelDiscovery(context.Background()))
	_, cancels, _ = radio.counts()
	assert.Equal(t, 1, cancels)
	assert.Equal(t, state.DiscoveryIdle, m.View().Discovery)
}

func TestManager_DiscoveryTimeout(t *testing.T) {
	radio := readyRadio()
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{DiscoveryTimeout: 30 * time.Millisecond})
	startDiscovery(t, m)

	require.Eventually(t, func() bool {
		return !m.View().IsDiscovering()
	}, time.Second, 5*time.Millisecond)

	_, cancels, _ := radio.counts()
	assert.Equal(t, 1, cancels)
}

func TestManager_RadioDisabledStopsDiscovery(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})
	startDiscovery(t, m)

	m.OnRadioUnavailable()
	barrier(t, m)
	v := m.View()
	assert.Equal(t, state.RadioUnavailable, v.Radio)
	assert.Equal(t, state.DiscoveryIdle, v.Discovery)

	m.OnRadioEnabled()
	barrier(t, m)
	assert.Equal(t, state.RadioReady, m.View().Radio)
}

func TestManager_RequestEnableRadio(t *testing.T) {
	radio := &fakeRadio{state: state.RadioDisabled}
	m := newTestManager(t, radio, &fakeTransport{}, nil, Options{})

	require.NoError(t, m.RequestEnableRadio(context.Background()))
	_, _, enables := radio.counts()
	assert.Equal(t, 1, enables)
}

// ===== Selection =====

func TestManager_SelectDeviceByID(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})
	startDiscovery(t, m)
	m.OnDeviceFound(devA)
	barrier(t, m)

	require.NoError(t, m.SelectDeviceByID(context.Background(), "dev-a"))
	require.NotNil(t, m.View().Selected)
	assert.Equal(t, "dev-a", m.View().Selected.ID)

	require.NoError(t, m.SelectDeviceByID(context.Background(), "dev-p"))
	assert.Equal(t, "dev-p", m.View().Selected.ID)

	err := m.SelectDeviceByID(context.Background(), "dev-zzz")
	assert.ErrorIs(t, err, ErrUnknownDevice)
	assert.Equal(t, "dev-p", m.View().Selected.ID)
}

func TestManager_ConnectWithoutSelection(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})
	assert.ErrorIs(t, m.ConnectToSelected(context.Background()), ErrNoDeviceSelected)
}

func TestManager_SelectDoesNotCancelConnection(t *testing.T) {
	transport := &fakeTransport{open: blockUntilCancelled}
	m := newTestManager(t, readyRadio(), transport, nil, Options{})

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))
	require.Eventually(t, func() bool { return transport.callCount() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, m.SelectDevice(context.Background(), devB))

	assert.NoError(t, transport.context(0).Err())
	v := m.View()
	assert.Equal(t, connection.PhaseConnecting, v.Connection.Phase)
	assert.Equal(t, "dev-b", v.Selected.ID)
}

// ===== Connection =====

func TestManager_ConnectCancelsDiscovery(t *testing.T) {
	radio := readyRadio()
	transport := &fakeTransport{open: blockUntilCancelled}
	m := newTestManager(t, radio, transport, nil, Options{})
	startDiscovery(t, m)

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))

	assert.Equal(t, state.DiscoveryIdle, m.View().Discovery)
	_, cancels, _ := radio.counts()
	assert.Equal(t, 1, cancels)
}

func TestManager_ConnectWithoutPermission(t *testing.T) {
	transport := &fakeTransport{open: blockUntilCancelled}
	denied := PermissionFunc(func(context.Context) state.Permission { return state.PermissionRequired })
	m := newTestManager(t, readyRadio(), transport, denied, Options{})

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))

	v := m.View()
	assert.True(t, v.PermissionRequired())
	assert.Equal(t, connection.PhaseNotStarted, v.Connection.Phase)
	assert.Equal(t, 0, transport.callCount())
}

func TestManager_ReconnectSupersedesLiveAttempt(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	transport := &fakeTransport{
		open: func(ctx context.Context, call int) (connection.Socket, error) {
			if call == 0 {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return local, nil
		},
	}
	m := newTestManager(t, readyRadio(), transport, nil, Options{})

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))
	require.Eventually(t, func() bool { return transport.callCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, m.ConnectToSelected(context.Background()))

	// The first attempt was cancelled before the second started.
	assert.Error(t, transport.context(0).Err())

	require.Eventually(t, func() bool {
		return m.View().Connection.Phase == connection.PhaseConnected
	}, time.Second, 5*time.Millisecond)
	barrier(t, m)

	assert.Equal(t, connection.PhaseConnected, m.View().Connection.Phase)
	assert.Equal(t, 2, transport.callCount())
	transport.mu.Lock()
	assert.Equal(t, 1, transport.maxInFlight)
	transport.mu.Unlock()
}

func TestManager_ReceivesDataInOrder(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	transport := &fakeTransport{
		open: func(ctx context.Context, call int) (connection.Socket, error) {
			return local, nil
		},
	}
	m := newTestManager(t, readyRadio(), transport, nil, Options{})

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))
	require.Eventually(t, func() bool {
		return m.View().Connection.Phase == connection.PhaseConnected
	}, time.Second, 5*time.Millisecond)

	lastData := func(want string) func() bool {
		return func() bool {
			d := m.View().LastReceivedData
			return d != nil && *d == want
		}
	}

	_, err := remote.Write([]byte("h"))
	require.NoError(t, err)
	require.Eventually(t, lastData("h"), time.Second, 5*time.Millisecond)

	_, err = remote.Write([]byte("i"))
	require.NoError(t, err)
	require.Eventually(t, lastData("i"), time.Second, 5*time.Millisecond)

	require.NoError(t, remote.Close())
	require.Eventually(t, func() bool {
		return m.View().Connection.Phase == connection.PhaseClosed
	}, time.Second, 5*time.Millisecond)

	v := m.View()
	require.NotNil(t, v.LastReceivedData)
	assert.Equal(t, "i", *v.LastReceivedData)
}

func TestManager_ConnectTimeoutKeepsDevices(t *testing.T) {
	transport := &fakeTransport{open: blockUntilCancelled}
	m := newTestManager(t, readyRadio(), transport, nil, Options{ConnectTimeout: 30 * time.Millisecond})

	startDiscovery(t, m)
	m.OnDeviceFound(devA)
	m.OnDeviceFound(devB)
	barrier(t, m)

	require.NoError(t, m.SelectDeviceByID(context.Background(), "dev-b"))
	require.NoError(t, m.ConnectToSelected(context.Background()))

	require.Eventually(t, func() bool {
		return m.View().Connection.Phase == connection.PhaseFailed
	}, time.Second, 5*time.Millisecond)

	v := m.View()
	assert.Contains(t, v.Connection.Reason, "timeout")
	assert.Equal(t, []string{"dev-a", "dev-b"}, ids(v.Discovered))
	assert.Equal(t, []string{"dev-p"}, ids(v.Paired))
}

func TestManager_ConnectFailureReason(t *testing.T) {
	transport := &fakeTransport{
		open: func(ctx context.Context, call int) (connection.Socket, error) {
			return nil, errors.New("host is down")
		},
	}
	m := newTestManager(t, readyRadio(), transport, nil, Options{})

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))

	require.Eventually(t, func() bool {
		return m.View().Connection.Phase == connection.PhaseFailed
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Error on connectivity: host is down", m.View().Connection.Reason)
}

func TestManager_CancelConnection(t *testing.T) {
	transport := &fakeTransport{open: blockUntilCancelled}
	m := newTestManager(t, readyRadio(), transport, nil, Options{})

	// Nothing to cancel
	require.NoError(t, m.CancelConnection(context.Background()))
	assert.Equal(t, connection.PhaseNotStarted, m.View().Connection.Phase)

	require.NoError(t, m.SelectDevice(context.Background(), devA))
	require.NoError(t, m.ConnectToSelected(context.Background()))
	require.NoError(t, m.CancelConnection(context.Background()))
	require.NoError(t, m.CancelConnection(context.Background()))

	require.Eventually(t, func() bool {
		return m.View().Connection.Phase == connection.PhaseClosed
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "cancelled", m.View().Connection.Reason)
}

// ===== View publication =====

func TestManager_SubscribeSeesCurrentView(t *testing.T) {
	m := newTestManager(t, readyRadio(), &fakeTransport{}, nil, Options{})
	before := m.View().Version

	require.NoError(t, m.SelectDevice(context.Background(), devA))

	id, ch := m.Subscribe()
	defer m.Unsubscribe(id)

	v := <-ch
	assert.Greater(t, v.Version, before)
	require.NotNil(t, v.Selected)
	assert.Equal(t, "dev-a", v.Selected.ID)

	require.NoError(t, m.SelectDevice(context.Background(), devB))
	v = <-ch
	assert.Equal(t, "dev-b", v.Selected.ID)
}

func TestView_FindDevice(t *testing.T) {
	v := View{Discovered: []device.Ref{devA}, Paired: []device.Ref{devP}}

	d, ok := v.FindDevice("dev-p")
	assert.True(t, ok)
	assert.Equal(t, devP, d)

	_, ok = v.FindDevice("dev-b")
	assert.False(t, ok)
}
