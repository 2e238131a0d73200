package main

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bluetoothhubv1 "github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1"
)

// hubClient is the subset of the HubService client the TUI drives.
type hubClient interface {
	RequestDiscovery(context.Context, *connect.Request[bluetoothhubv1.RequestDiscoveryRequest]) (*connect.Response[bluetoothhubv1.RequestDiscoveryResponse], error)
	CancelDiscovery(context.Context, *connect.Request[bluetoothhubv1.CancelDiscoveryRequest]) (*connect.Response[bluetoothhubv1.CancelDiscoveryResponse], error)
	Connect(context.Context, *connect.Request[bluetoothhubv1.ConnectRequest]) (*connect.Response[bluetoothhubv1.ConnectResponse], error)
	CancelConnection(context.Context, *connect.Request[bluetoothhubv1.CancelConnectionRequest]) (*connect.Response[bluetoothhubv1.CancelConnectionResponse], error)
	EnableRadio(context.Context, *connect.Request[bluetoothhubv1.EnableRadioRequest]) (*connect.Response[bluetoothhubv1.EnableRadioResponse], error)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type viewMsg struct{ view *bluetoothhubv1.View }

type streamClosedMsg struct{}

type actionMsg struct {
	action string
	err    error
}

type model struct {
	ctx    context.Context
	client hubClient
	views  <-chan *bluetoothhubv1.View

	view   *bluetoothhubv1.View
	cursor int
	status string
	err    error
	closed bool
}

func newModel(ctx context.Context, client hubClient, views <-chan *bluetoothhubv1.View) model {
	return model{
		ctx:    ctx,
		client: client,
		views:  views,
		status: "waiting for hub...",
	}
}

func waitForView(views <-chan *bluetoothhubv1.View) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-views
		if !ok {
			return streamClosedMsg{}
		}
		return viewMsg{view: v}
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return waitForView(m.views)
}

// devices returns discovered devices followed by paired ones not
// already discovered.
func (m model) devices() []*bluetoothhubv1.Device {
	if m.view == nil {
		return nil
	}
	seen := make(map[string]bool, len(m.view.Discovered))
	out := make([]*bluetoothhubv1.Device, 0, len(m.view.Discovered)+len(m.view.Paired))
	for _, d := range m.view.Discovered {
		seen[d.GetId()] = true
		out = append(out, d)
	}
	for _, d := range m.view.Paired {
		if !seen[d.GetId()] {
			out = append(out, d)
		}
	}
	return out
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		m.view = msg.view
		m.status = ""
		if n := len(m.devices()); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}
		return m, waitForView(m.views)

	case streamClosedMsg:
		m.closed = true
		m.status = "hub stream closed"
		return m, nil

	case actionMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.action
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.devices())-1 {
			m.cursor++
		}
	case "d":
		return m, m.run("discovery requested", func(ctx context.Context) error {
			_, err := m.client.RequestDiscovery(ctx, connect.NewRequest(&bluetoothhubv1.RequestDiscoveryRequest{}))
			return err
		})
	case "s":
		return m, m.run("discovery stopped", func(ctx context.Context) error {
			_, err := m.client.CancelDiscovery(ctx, connect.NewRequest(&bluetoothhubv1.CancelDiscoveryRequest{}))
			return err
		})
	case "enter":
		devices := m.devices()
		if len(devices) == 0 {
			return m, nil
		}
		target := devices[m.cursor]
		return m, m.run("connecting to "+target.GetDisplayName(), func(ctx context.Context) error {
			_, err := m.client.Connect(ctx, connect.NewRequest(&bluetoothhubv1.ConnectRequest{DeviceId: target.GetId()}))
			return err
		})
	case "c":
		return m, m.run("connection cancelled", func(ctx context.Context) error {
			_, err := m.client.CancelConnection(ctx, connect.NewRequest(&bluetoothhubv1.CancelConnectionRequest{}))
			return err
		})
	case "e":
		return m, m.run("radio enable requested", func(ctx context.Context) error {
			_, err := m.client.EnableRadio(ctx, connect.NewRequest(&bluetoothhubv1.EnableRadioRequest{}))
			return err
		})
	}
	return m, nil
}

func (m model) run(action string, call func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionMsg{action: action, err: call(ctx)}
	}
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bluetooth Hub"))
	b.WriteString("\n\n")

	if v := m.view; v != nil {
		fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
			labelStyle.Render("radio"), radioLabel(v.GetRadio()),
			labelStyle.Render("discovery"), discoveryLabel(v.GetDiscovery()),
			labelStyle.Render("permission"), permissionLabel(v.GetPermission()))
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("connection"), formatConnection(v.GetConnection()))
		if v.LastReceivedData != nil {
			fmt.Fprintf(&b, "%s %q\n", labelStyle.Render("last data"), v.GetLastReceivedData())
		}
		if v.GetLastError() != "" {
			b.WriteString(errorStyle.Render("hub error: "+v.GetLastError()) + "\n")
		}
		b.WriteString("\n")

		devices := m.devices()
		if len(devices) == 0 {
			b.WriteString(labelStyle.Render("  no devices") + "\n")
		}
		for i, d := range devices {
			line := formatDevice(d)
			if v.Selected != nil && v.Selected.GetId() == d.GetId() {
				line = selectedStyle.Render(line + " *")
			}
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> ") + line + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(helpStyle.Render("d discover • s stop • enter connect • c cancel • e enable radio • q quit"))
	b.WriteString("\n")

	return b.String()
}
