// Package main provides the hub command-line client.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	apiconnect "github.com/osa030/bluetoothhub/internal/api/connect"
	bluetoothhubv1 "github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1"
	"github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1/bluetoothhubv1connect"
)

var (
	app    = kingpin.New("hubctl", "Bluetooth hub client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").String()
	token  = app.Flag("token", "API token for mutating commands").Envar("HUB_API_TOKEN").String()

	viewCmd          = app.Command("view", "Show the current session view")
	discoverCmd      = app.Command("discover", "Start device discovery")
	stopDiscoveryCmd = app.Command("stop-discovery", "Stop device discovery")

	selectCmd      = app.Command("select", "Select a device")
	selectDeviceID = selectCmd.Arg("device-id", "Device ID").Required().String()

	connectCmd      = app.Command("connect", "Connect to the selected device")
	connectDeviceID = connectCmd.Arg("device-id", "Device ID to select first (optional)").String()

	cancelCmd      = app.Command("cancel", "Cancel the live connection")
	enableRadioCmd = app.Command("enable-radio", "Ask the daemon to power the adapter")

	permissionCmd   = app.Command("permission", "Report a permission outcome")
	permissionValue = permissionCmd.Arg("value", "granted, denied or required").Required().Enum("granted", "denied", "required")

	watchCmd = app.Command("watch", "Stream session views")
	tuiCmd   = app.Command("tui", "Interactive terminal UI")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	client := bluetoothhubv1connect.NewHubServiceClient(
		http.DefaultClient,
		*server,
		connect.WithInterceptors(apiconnect.NewTokenClientInterceptor(*token)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch command {
	case viewCmd.FullCommand():
		err = showView(ctx, client)
	case discoverCmd.FullCommand():
		err = discover(ctx, client)
	case stopDiscoveryCmd.FullCommand():
		err = stopDiscovery(ctx, client)
	case selectCmd.FullCommand():
		err = selectDevice(ctx, client, *selectDeviceID)
	case connectCmd.FullCommand():
		err = connectDevice(ctx, client, *connectDeviceID)
	case cancelCmd.FullCommand():
		err = cancelConnection(ctx, client)
	case enableRadioCmd.FullCommand():
		err = enableRadio(ctx, client)
	case permissionCmd.FullCommand():
		err = reportPermission(ctx, client, *permissionValue)
	case watchCmd.FullCommand():
		err = watch(ctx, client)
	case tuiCmd.FullCommand():
		err = runTUI(ctx, client)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showView(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	resp, err := client.GetView(ctx, connect.NewRequest(&bluetoothhubv1.GetViewRequest{}))
	if err != nil {
		return err
	}
	printView(os.Stdout, resp.Msg.View)
	return nil
}

func discover(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	resp, err := client.RequestDiscovery(ctx, connect.NewRequest(&bluetoothhubv1.RequestDiscoveryRequest{}))
	if err != nil {
		return err
	}
	printView(os.Stdout, resp.Msg.View)
	return nil
}

func stopDiscovery(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	resp, err := client.CancelDiscovery(ctx, connect.NewRequest(&bluetoothhubv1.CancelDiscoveryRequest{}))
	if err != nil {
		return err
	}
	printView(os.Stdout, resp.Msg.View)
	return nil
}

func selectDevice(ctx context.Context, client bluetoothhubv1connect.HubServiceClient, deviceID string) error {
	resp, err := client.SelectDevice(ctx, connect.NewRequest(&bluetoothhubv1.SelectDeviceRequest{DeviceId: deviceID}))
	if err != nil {
		return err
	}
	fmt.Printf("Selected: %s\n", formatDevice(resp.Msg.GetView().GetSelected()))
	return nil
}

func connectDevice(ctx context.Context, client bluetoothhubv1connect.HubServiceClient, deviceID string) error {
	resp, err := client.Connect(ctx, connect.NewRequest(&bluetoothhubv1.ConnectRequest{DeviceId: deviceID}))
	if err != nil {
		return err
	}
	v := resp.Msg.View
	fmt.Printf("Connecting to %s: %s\n", formatDevice(v.Selected), formatConnection(v.Connection))
	return nil
}

func cancelConnection(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	resp, err := client.CancelConnection(ctx, connect.NewRequest(&bluetoothhubv1.CancelConnectionRequest{}))
	if err != nil {
		return err
	}
	fmt.Printf("Connection: %s\n", formatConnection(resp.Msg.GetView().GetConnection()))
	return nil
}

func enableRadio(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	resp, err := client.EnableRadio(ctx, connect.NewRequest(&bluetoothhubv1.EnableRadioRequest{}))
	if err != nil {
		return err
	}
	fmt.Printf("Radio: %s\n", radioLabel(resp.Msg.GetView().GetRadio()))
	return nil
}

func reportPermission(ctx context.Context, client bluetoothhubv1connect.HubServiceClient, value string) error {
	permission, ok := apiconnect.ParsePermission(value)
	if !ok {
		return fmt.Errorf("invalid permission %q", value)
	}
	resp, err := client.ReportPermission(ctx, connect.NewRequest(&bluetoothhubv1.ReportPermissionRequest{Permission: permission}))
	if err != nil {
		return err
	}
	fmt.Printf("Permission: %s\n", permissionLabel(resp.Msg.GetView().GetPermission()))
	return nil
}

func watch(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	stream, err := client.WatchView(ctx, connect.NewRequest(&bluetoothhubv1.WatchViewRequest{}))
	if err != nil {
		return err
	}
	defer stream.Close()

	fmt.Println("Watching session. Press Ctrl+C to exit.")

	for stream.Receive() {
		fmt.Println()
		printView(os.Stdout, stream.Msg().View)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runTUI(ctx context.Context, client bluetoothhubv1connect.HubServiceClient) error {
	stream, err := client.WatchView(ctx, connect.NewRequest(&bluetoothhubv1.WatchViewRequest{}))
	if err != nil {
		return err
	}
	defer stream.Close()

	views := make(chan *bluetoothhubv1.View)
	go func() {
		defer close(views)
		for stream.Receive() {
			select {
			case views <- stream.Msg().View:
			case <-ctx.Done():
				return
			}
		}
	}()

	p := tea.NewProgram(newModel(ctx, client, views), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
