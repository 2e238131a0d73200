package connection

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/bluetoothhub/internal/app/notification"
	"github.com/osa030/bluetoothhub/internal/app/stream"
	"github.com/osa030/bluetoothhub/internal/domain/device"
)

// Errors
var (
	ErrAlreadyStarted = errors.New("connection already started")
	ErrNoSocket       = errors.New("transport returned no socket")
)

// Options holds supervisor configuration.
type Options struct {
	ConnectTimeout time.Duration // Upper bound for Transport.Open; 0 means no limit
	Stream         stream.Config // Reader configuration
	OnEvent        func(State)   // Receives every state in order; must not block
}

// Supervisor manages exactly one connection attempt to one device and the
// data session that follows. Failed and Closed are terminal: a new attempt
// needs a new Supervisor.
type Supervisor struct {
	id        string
	device    device.Ref
	transport Transport
	opts      Options

	mu        sync.Mutex
	started   bool
	cancelled bool
	sock      Socket

	closeOnce  sync.Once
	finishOnce sync.Once

	states *notification.Manager[State]

	// Context
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSupervisor creates a supervisor for dev. Nothing happens until Connect.
// When opts.ConnectTimeout is zero the transport's own timeout is used, if
// it has one.
func NewSupervisor(dev device.Ref, transport Transport, opts Options) *Supervisor {
	if opts.ConnectTimeout == 0 {
		if t, ok := transport.(interface{ ConnectTimeout() time.Duration }); ok {
			opts.ConnectTimeout = t.ConnectTimeout()
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Supervisor{
		id:        uuid.New().String(),
		device:    dev,
		transport: transport,
		opts:      opts,
		states:    notification.NewManager(NotStarted()),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// ID returns the supervisor ID.
func (s *Supervisor) ID() string {
	return s.id
}

// Device returns the target device.
func (s *Supervisor) Device() device.Ref {
	return s.device
}

// State returns the most recent state.
func (s *Supervisor) State() State {
	return s.states.Load()
}

// Watch subscribes to state changes with most-recent-value semantics.
// The returned channel immediately holds the current state and is closed
// once the terminal state has been delivered.
func (s *Supervisor) Watch() (string, <-chan State) {
	return s.states.Subscribe()
}

// Unwatch removes a subscription created by Watch.
func (s *Supervisor) Unwatch(id string) {
	s.states.Unsubscribe(id)
}

// Done returns a channel that is closed once a terminal state is published.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Connect publishes Connecting and starts the blocking open on a new
// goroutine. It returns immediately.
func (s *Supervisor) Connect() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	s.publish(Connecting())
	go s.run()
	return nil
}

// Cancel aborts the attempt or closes the open socket. It is idempotent and
// safe to call before Connect, in which case the supervisor goes straight to
// Closed.
func (s *Supervisor) Cancel() {
	s.mu.Lock()
	if !s.started {
		s.started = true
		s.cancelled = true
		s.mu.Unlock()
		s.cancel()
		s.finish(Closed("cancelled"))
		return
	}
	s.cancelled = true
	hasSocket := s.sock != nil
	s.mu.Unlock()

	s.cancel()
	if hasSocket {
		s.closeSocket()
	}
}

func (s *Supervisor) run() {
	ctx := s.ctx
	if s.opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ConnectTimeout)
		defer cancel()
	}

	zlog.Info().Msgf("connection: opening: supervisor_id=%s device=%s transport=%s",
		s.id, s.device.ID, s.transport.Name())

	sock, err := s.transport.Open(ctx, s.device)
	if err == nil && sock == nil {
		err = ErrNoSocket
	}
	if err != nil {
		switch {
		case s.isCancelled():
			s.finish(Closed("cancelled"))
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
			s.finish(Failed(fmt.Sprintf("connect timeout after %s", s.opts.ConnectTimeout)))
		default:
			s.finish(Failed("Error on connectivity: " + err.Error()))
		}
		return
	}

	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		_ = sock.Close()
		s.finish(Closed("cancelled"))
		return
	}
	s.sock = sock
	s.mu.Unlock()

	s.publish(Connected())
	stream.Start(sock, s.opts.Stream, s.onStreamEvent)
}

func (s *Supervisor) onStreamEvent(e stream.Event) {
	switch e.Kind {
	case stream.EventData:
		s.publish(DataReceived(e.Text))

	case stream.EventClosed:
		s.closeSocket()
		reason := "stream ended"
		switch {
		case s.isCancelled():
			reason = "cancelled"
		case e.Err != nil && !errors.Is(e.Err, io.EOF):
			reason = "stream ended: " + e.Err.Error()
		}
		s.finish(Closed(reason))
	}
}

func (s *Supervisor) isCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// closeSocket closes the owned socket once. Must only be called after
// s.sock has been set.
func (s *Supervisor) closeSocket() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		sock := s.sock
		s.mu.Unlock()

		if err := sock.Close(); err != nil {
			zlog.Debug().Msgf("connection: socket close: supervisor_id=%s error=%v", s.id, err)
		}
	})
}

// finish publishes the terminal state, closes every Watch channel and
// releases waiters.
func (s *Supervisor) finish(st State) {
	s.finishOnce.Do(func() {
		s.publish(st)
		s.states.Close()
		s.cancel()
		close(s.done)

		switch st.Phase {
		case PhaseFailed:
			zlog.Warn().Msgf("connection: failed: supervisor_id=%s device=%s reason=%s", s.id, s.device.ID, st.Reason)
		default:
			zlog.Info().Msgf("connection: closed: supervisor_id=%s device=%s reason=%s", s.id, s.device.ID, st.Reason)
		}
	})
}

func (s *Supervisor) publish(st State) {
	s.states.Publish(st)
	zlog.Debug().Msgf("connection: state: supervisor_id=%s state=%s", s.id, st)
	if s.opts.OnEvent != nil {
		s.opts.OnEvent(st)
	}
}
