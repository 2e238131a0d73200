package main

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bluetoothhubv1 "github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1"
)

type recordingClient struct {
	calls      []string
	connectIDs []string
	err        error
}

func (c *recordingClient) RequestDiscovery(context.Context, *connect.Request[bluetoothhubv1.RequestDiscoveryRequest]) (*connect.Response[bluetoothhubv1.RequestDiscoveryResponse], error) {
	c.calls = append(c.calls, "discover")
	return connect.NewResponse(&bluetoothhubv1.RequestDiscoveryResponse{}), c.err
}

func (c *recordingClient) CancelDiscovery(context.Context, *connect.Request[bluetoothhubv1.CancelDiscoveryRequest]) (*connect.Response[bluetoothhubv1.CancelDiscoveryResponse], error) {
	c.calls = append(c.calls, "stop")
	return connect.NewResponse(&bluetoothhubv1.CancelDiscoveryResponse{}), c.err
}

func (c *recordingClient) Connect(_ context.Context, req *connect.Request[bluetoothhubv1.ConnectRequest]) (*connect.Response[bluetoothhubv1.ConnectResponse], error) {
	c.calls = append(c.calls, "connect")
	c.connectIDs = append(c.connectIDs, req.Msg.DeviceId)
	return connect.NewResponse(&bluetoothhubv1.ConnectResponse{}), c.err
}

func (c *recordingClient) CancelConnection(context.Context, *connect.Request[bluetoothhubv1.CancelConnectionRequest]) (*connect.Response[bluetoothhubv1.CancelConnectionResponse], error) {
	c.calls = append(c.calls, "cancel")
	return connect.NewResponse(&bluetoothhubv1.CancelConnectionResponse{}), c.err
}

func (c *recordingClient) EnableRadio(context.Context, *connect.Request[bluetoothhubv1.EnableRadioRequest]) (*connect.Response[bluetoothhubv1.EnableRadioResponse], error) {
	c.calls = append(c.calls, "enable")
	return connect.NewResponse(&bluetoothhubv1.EnableRadioResponse{}), c.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sampleView() *bluetoothhubv1.View {
	return &bluetoothhubv1.View{
		Radio:     bluetoothhubv1.RadioState_RADIO_STATE_READY,
		Discovery: bluetoothhubv1.DiscoveryState_DISCOVERY_STATE_DISCOVERING,
		Discovered: []*bluetoothhubv1.Device{
			{Id: "dev-a", DisplayName: "Alpha"},
			{Id: "dev-p", DisplayName: "Paired"},
		},
		Paired: []*bluetoothhubv1.Device{
			{Id: "dev-p", DisplayName: "Paired"},
			{Id: "dev-q", DisplayName: "Quiet"},
		},
		Connection: &bluetoothhubv1.ConnectionState{Phase: bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_NOT_STARTED},
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_Devices(t *testing.T) {
	m := newModel(context.Background(), &recordingClient{}, nil)
	assert.Empty(t, m.devices())

	m.view = sampleView()
	var ids []string
	for _, d := range m.devices() {
		ids = append(ids, d.GetId())
	}
	assert.Equal(t, []string{"dev-a", "dev-p", "dev-q"}, ids)
}

func TestModel_Keys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		calls []string
	}{
		{name: "discover", keys: []string{"d"}, calls: []string{"discover"}},
		{name: "stop", keys: []string{"s"}, calls: []string{"stop"}},
		{name: "cancel", keys: []string{"c"}, calls: []string{"cancel"}},
		{name: "enable", keys: []string{"e"}, calls: []string{"enable"}},
		{name: "connect", keys: []string{"enter"}, calls: []string{"connect"}},
		{name: "unknown key", keys: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recordingClient{}
			m := newModel(context.Background(), client, nil)
			m, _ = update(t, m, viewMsg{view: sampleView()})

			for _, k := range tt.keys {
				var cmd tea.Cmd
				m, cmd = update(t, m, key(k))
				if cmd != nil {
					m, _ = update(t, m, cmd())
				}
			}
			assert.Equal(t, tt.calls, client.calls)
			assert.NoError(t, m.err)
		})
	}
}

func TestModel_ConnectUsesCursor(t *testing.T) {
	client := &recordingClient{}
	m := newModel(context.Background(), client, nil)
	m, _ = update(t, m, viewMsg{view: sampleView()})

	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))
	assert.Equal(t, 2, m.cursor)

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, []string{"dev-q"}, client.connectIDs)
	assert.Contains(t, m.status, "Quiet")
}

func TestModel_CursorClampedOnShrink(t *testing.T) {
	m := newModel(context.Background(), &recordingClient{}, nil)
	m, _ = update(t, m, viewMsg{view: sampleView()})
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))

	m, _ = update(t, m, viewMsg{view: &bluetoothhubv1.View{Discovered: []*bluetoothhubv1.Device{{Id: "dev-a", DisplayName: "Alpha"}}}})
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ActionError(t *testing.T) {
	client := &recordingClient{err: errors.New("boom")}
	m := newModel(context.Background(), client, nil)

	m, cmd := update(t, m, key("d"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "boom")
}

func TestModel_StreamClosed(t *testing.T) {
	views := make(chan *bluetoothhubv1.View, 1)
	views <- sampleView()
	close(views)

	m := newModel(context.Background(), &recordingClient{}, views)
	msg := m.Init()()
	m, cmd := update(t, m, msg)
	require.NotNil(t, m.view)

	m, _ = update(t, m, cmd())
	assert.True(t, m.closed)
	assert.Contains(t, m.View(), "hub stream closed")
}

func TestModel_ViewRendersDevices(t *testing.T) {
	m := newModel(context.Background(), &recordingClient{}, nil)
	v := sampleView()
	v.Selected = &bluetoothhubv1.Device{Id: "dev-p", DisplayName: "Paired"}
	data := "x"
	v.LastReceivedData = &data
	m, _ = update(t, m, viewMsg{view: v})

	out := m.View()
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Quiet")
	assert.Contains(t, out, "Paired *")
	assert.Contains(t, out, `"x"`)
	assert.Contains(t, out, "discovering")
	assert.Contains(t, out, "not_started")
}

func TestFormatConnection(t *testing.T) {
	tests := []struct {
		name string
		in   *bluetoothhubv1.ConnectionState
		want string
	}{
		{name: "nil", in: nil, want: "unspecified"},
		{
			name: "connecting",
			in:   &bluetoothhubv1.ConnectionState{Phase: bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_CONNECTING},
			want: "connecting",
		},
		{
			name: "data",
			in:   &bluetoothhubv1.ConnectionState{Phase: bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_DATA_RECEIVED, Data: "x"},
			want: `data received "x"`,
		},
		{
			name: "failed with reason",
			in:   &bluetoothhubv1.ConnectionState{Phase: bluetoothhubv1.ConnectionPhase_CONNECTION_PHASE_FAILED, Reason: "refused"},
			want: "failed (refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatConnection(tt.in))
		})
	}
}
