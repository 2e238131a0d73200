package connection

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/bluetoothhub/internal/domain/device"
)

type fakeTransport struct {
	open func(ctx context.Context, dev device.Ref) (Socket, error)
}

func (f *fakeTransport) Open(ctx context.Context, dev device.Ref) (Socket, error) {
	return f.open(ctx, dev)
}

func (f *fakeTransport) Name() string { return "fake" }

// trackedSocket records whether Close was called.
type trackedSocket struct {
	net.Conn
	mu     sync.Mutex
	closed int
}

func (s *trackedSocket) Close() error {
	s.mu.Lock()
	s.closed++
	s.mu.Unlock()
	return s.Conn.Close()
}

func (s *trackedSocket) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// recorder collects states delivered through Options.OnEvent.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) record(st State) {
	r.mu.Lock()
	r.states = append(r.states, st)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, len(r.states))
	copy(out, r.states)
	return out
}

func (r *recorder) phases() []Phase {
	var out []Phase
	for _, st := range r.snapshot() {
		out = append(out, st.Phase)
	}
	return out
}

var testDevice = device.New("AA:BB:CC:DD:EE:FF", "AA:BB:CC:DD:EE:FF", "Sensor", "")

func waitDone(t *testing.T, s *Supervisor) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("supervisor did not finish; state=%s", s.State())
	}
}

func TestSupervisor_ConnectAndReceive(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	rec := &recorder{}
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			return local, nil
		},
	}, Options{OnEvent: rec.record})

	require.NoError(t, s.Connect())

	_, err := remote.Write([]byte("h"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return s.State() == DataReceived("h")
	}, time.Second, 5*time.Millisecond)

	_, err = remote.Write([]byte("i"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return s.State() == DataReceived("i")
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, remote.Close())
	waitDone(t, s)

	assert.Equal(t, []State{
		Connecting(),
		Connected(),
		DataReceived("h"),
		DataReceived("i"),
		Closed("stream ended"),
	}, rec.snapshot())
}

func TestSupervisor_OpenFailure(t *testing.T) {
	rec := &recorder{}
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			return nil, errors.New("connection refused")
		},
	}, Options{OnEvent: rec.record})

	require.NoError(t, s.Connect())
	waitDone(t, s)

	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "Error on connectivity: connection refused", st.Reason)
	assert.Equal(t, []Phase{PhaseConnecting, PhaseFailed}, rec.phases())
}

func TestSupervisor_NilSocketIsFailure(t *testing.T) {
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			return nil, nil
		},
	}, Options{})

	require.NoError(t, s.Connect())
	waitDone(t, s)

	assert.Equal(t, PhaseFailed, s.State().Phase)
	assert.Contains(t, s.State().Reason, ErrNoSocket.Error())
}

func TestSupervisor_ConnectTimeout(t *testing.T) {
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, Options{ConnectTimeout: 30 * time.Millisecond})

	require.NoError(t, s.Connect())
	waitDone(t, s)

	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Contains(t, st.Reason, "timeout")
}

func TestSupervisor_CancelWhileConnecting(t *testing.T) {
	entered := make(chan struct{})
	rec := &recorder{}
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			close(entered)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, Options{OnEvent: rec.record})

	require.NoError(t, s.Connect())
	<-entered
	assert.Equal(t, PhaseConnecting, s.State().Phase)

	s.Cancel()
	waitDone(t, s)

	assert.Equal(t, Closed("cancelled"), s.State())
	assert.Equal(t, []Phase{PhaseConnecting, PhaseClosed}, rec.phases())
}

func TestSupervisor_OpenSucceedsAfterCancel(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()
	sock := &trackedSocket{Conn: local}

	entered := make(chan struct{})
	release := make(chan struct{})
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			close(entered)
			<-release
			return sock, nil
		},
	}, Options{})

	require.NoError(t, s.Connect())
	<-entered
	s.Cancel()
	close(release)
	waitDone(t, s)

	assert.Equal(t, Closed("cancelled"), s.State())
	assert.Equal(t, 1, sock.closeCount())
}

func TestSupervisor_CancelWhileConnected(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()
	sock := &trackedSocket{Conn: local}

	rec := &recorder{}
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			return sock, nil
		},
	}, Options{OnEvent: rec.record})

	require.NoError(t, s.Connect())
	require.Eventually(t, func() bool {
		return s.State().Phase == PhaseConnected
	}, time.Second, 5*time.Millisecond)

	s.Cancel()
	s.Cancel()
	waitDone(t, s)

	assert.Equal(t, Closed("cancelled"), s.State())
	assert.Equal(t, 1, sock.closeCount())
	assert.Equal(t, []Phase{PhaseConnecting, PhaseConnected, PhaseClosed}, rec.phases())
}

func TestSupervisor_CancelBeforeConnect(t *testing.T) {
	opened := false
	rec := &recorder{}
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			opened = true
			return nil, errors.New("unreachable")
		},
	}, Options{OnEvent: rec.record})

	s.Cancel()
	s.Cancel()
	waitDone(t, s)

	assert.ErrorIs(t, s.Connect(), ErrAlreadyStarted)
	assert.False(t, opened)
	assert.Equal(t, []State{Closed("cancelled")}, rec.snapshot())
}

func TestSupervisor_ConnectTwice(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			select {
			case <-block:
			case <-ctx.Done():
			}
			return nil, errors.New("stopped")
		},
	}, Options{})

	require.NoError(t, s.Connect())
	assert.ErrorIs(t, s.Connect(), ErrAlreadyStarted)

	s.Cancel()
	waitDone(t, s)
}

func TestSupervisor_WatchSeesLatestState(t *testing.T) {
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			return nil, errors.New("no route")
		},
	}, Options{})

	require.NoError(t, s.Connect())
	waitDone(t, s)

	id, ch := s.Watch()
	defer s.Unwatch(id)

	st := <-ch
	assert.Equal(t, PhaseFailed, st.Phase)
	_, ok := <-ch
	assert.False(t, ok, "watch after the terminal state is already closed")
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, testDevice, s.Device())
}

func TestSupervisor_WatchClosesAfterTerminalState(t *testing.T) {
	s := NewSupervisor(testDevice, &fakeTransport{
		open: func(ctx context.Context, dev device.Ref) (Socket, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, Options{})

	_, ch := s.Watch()
	require.Equal(t, PhaseNotStarted, (<-ch).Phase)

	last := make(chan State, 1)
	go func() {
		var st State
		for v := range ch {
			st = v
		}
		last <- st
	}()

	require.NoError(t, s.Connect())
	s.Cancel()
	waitDone(t, s)

	select {
	case st := <-last:
		assert.Equal(t, Closed("cancelled"), st)
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after terminal state")
	}
}
