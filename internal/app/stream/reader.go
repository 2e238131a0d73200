// Package stream provides the byte stream reader that turns a connected
// socket into ordered data events.
package stream

import (
	"io"
	"sync"

	"golang.org/x/text/encoding"
)

// DefaultReadSize reads one byte at a time.
const DefaultReadSize = 1

// EventKind represents a reader event type.
type EventKind int

const (
	EventData   EventKind = iota // Text decoded from a successful read
	EventClosed                  // Stream ended; always the last event
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventData:
		return "data"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event represents a reader event.
type Event struct {
	Kind EventKind
	Text string // Decoded text (EventData)
	Err  error  // Read error that ended the stream (EventClosed)
}

// Config holds reader configuration.
type Config struct {
	ReadSize int               // Bytes requested per read; < 1 means DefaultReadSize
	Encoding encoding.Encoding // Text encoding; nil means UTF-8
}

// Reader runs a blocking read loop over a borrowed socket.
// It never closes the socket; closing it is how the owner stops the loop.
type Reader struct {
	src     io.Reader
	onEvent func(Event)
	buf     []byte
	dec     *decoder

	done      chan struct{}
	closeOnce sync.Once
}

// Start begins reading src on a new goroutine and returns immediately.
// onEvent is invoked from the reader goroutine, in read order.
func Start(src io.Reader, cfg Config, onEvent func(Event)) *Reader {
	size := cfg.ReadSize
	if size < 1 {
		size = DefaultReadSize
	}
	r := &Reader{
		src:     src,
		onEvent: onEvent,
		buf:     make([]byte, size),
		dec:     newDecoder(cfg.Encoding),
		done:    make(chan struct{}),
	}
	go r.loop()
	return r
}

// Done returns a channel that is closed when the read loop has exited.
func (r *Reader) Done() <-chan struct{} {
	return r.done
}

func (r *Reader) loop() {
	defer close(r.done)
	for {
		n, err := r.src.Read(r.buf)
		if n > 0 {
			if text := r.dec.decode(r.buf[:n]); text != "" {
				r.onEvent(Event{Kind: EventData, Text: text})
			}
		}
		if err != nil {
			if text := r.dec.flush(); text != "" {
				r.onEvent(Event{Kind: EventData, Text: text})
			}
			r.closeOnce.Do(func() {
				r.onEvent(Event{Kind: EventClosed, Err: err})
			})
			return
		}
	}
}
