package stream

import (
	"bytes"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect starts a reader and returns all events once the loop exits.
func collect(t *testing.T, src io.Reader, cfg Config) []Event {
	t.Helper()

	var events []Event
	r := Start(src, cfg, func(e Event) {
		events = append(events, e)
	})

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not finish")
	}
	return events
}

func texts(events []Event) []string {
	var out []string
	for _, e := range events {
		if e.Kind == EventData {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestReader_OneEventPerByte(t *testing.T) {
	events := collect(t, strings.NewReader("hi"), Config{})

	require.Len(t, events, 3)
	assert.Equal(t, []string{"h", "i"}, texts(events))
	assert.Equal(t, EventClosed, events[2].Kind)
	assert.ErrorIs(t, events[2].Err, io.EOF)
}

func TestReader_BatchedReads(t *testing.T) {
	events := collect(t, bytes.NewReader([]byte("hello")), Config{ReadSize: 64})

	assert.Equal(t, []string{"hello"}, texts(events))
	assert.Equal(t, EventClosed, events[len(events)-1].Kind)
}

func TestReader_MultiByteRuneSplitAcrossReads(t *testing.T) {
	events := collect(t, strings.NewReader("é!"), Config{ReadSize: 1})

	assert.Equal(t, []string{"é", "!"}, texts(events))
}

func TestReader_InvalidBytesAreLossy(t *testing.T) {
	events := collect(t, bytes.NewReader([]byte{'a', 0xff, 'b'}), Config{ReadSize: 1})

	assert.Equal(t, []string{"a", "�", "b"}, texts(events))
	assert.Equal(t, EventClosed, events[len(events)-1].Kind)
}

func TestReader_DanglingSequenceFlushedBeforeClose(t *testing.T) {
	events := collect(t, bytes.NewReader([]byte{'x', 0xe2, 0x82}), Config{ReadSize: 1})

	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, "x", events[0].Text)
	assert.Contains(t, events[len(events)-2].Text, "�")
	assert.Equal(t, EventClosed, events[len(events)-1].Kind)
}

func TestReader_Latin1(t *testing.T) {
	enc, err := LookupEncoding("latin1")
	require.NoError(t, err)

	events := collect(t, bytes.NewReader([]byte{0xe9}), Config{Encoding: enc})

	assert.Equal(t, []string{"é"}, texts(events))
}

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = LookupEncoding("klingon-8")
	assert.Error(t, err)
}

func TestReader_ClosedExactlyOnceAndLast(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	events := make(chan Event, 16)
	r := Start(local, Config{}, func(e Event) { events <- e })

	_, err := remote.Write([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: EventData, Text: "o"}, <-events)
	assert.Equal(t, Event{Kind: EventData, Text: "k"}, <-events)

	// The owner closing the socket unblocks the pending read.
	require.NoError(t, local.Close())

	closed := <-events
	assert.Equal(t, EventClosed, closed.Kind)
	assert.Error(t, closed.Err)

	<-r.Done()
	select {
	case e := <-events:
		t.Fatalf("event after close: %+v", e)
	default:
	}
}

func TestReader_StartDoesNotBlock(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	started := make(chan struct{})
	go func() {
		Start(local, Config{}, func(Event) {})
		close(started)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("Start blocked the caller")
	}
	local.Close()
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "data", EventData.String())
	assert.Equal(t, "closed", EventClosed.String())
	assert.Equal(t, "unknown", EventKind(9).String())
}
