// Package main provides the hub daemon entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/bluetoothhub/internal/api/connect"
	"github.com/osa030/bluetoothhub/internal/app/connection"
	"github.com/osa030/bluetoothhub/internal/app/filter"
	"github.com/osa030/bluetoothhub/internal/app/session"
	"github.com/osa030/bluetoothhub/internal/gen/bluetoothhub/v1/bluetoothhubv1connect"
	"github.com/osa030/bluetoothhub/internal/infra/bluez"
	"github.com/osa030/bluetoothhub/internal/infra/config"
	"github.com/osa030/bluetoothhub/internal/infra/logger"
	"github.com/osa030/bluetoothhub/internal/infra/rfcomm"
)

var (
	app        = kingpin.New("hubd", "Bluetooth RFCOMM hub daemon")
	configPath = app.Flag("config", "Path to config file").Default("config/hubd.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()
	noColor    = app.Flag("no-color", "Disable colored console output").Bool()

	// check-adapter command
	checkCmd = app.Command("check-adapter", "Check the Bluetooth adapter and exit")

	// list-filters command
	listFiltersCmd = app.Command("list-filters", "List available discovery filters and exit")
)

func init() {
	app.Command("start", "Start the daemon (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listFiltersCmd.FullCommand() {
		printFilters()
		return
	}

	loggerConfig := logger.Config{
		Output:  "stdout",
		Level:   "info",
		NoColor: *noColor,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = "file"
		loggerConfig.File = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closer.Close()

	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if command == checkCmd.FullCommand() {
		if err := checkAdapter(cfg); err != nil {
			zlog.Error().Msgf("Adapter check failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Daemon error: %v", err)
		os.Exit(1)
	}
}

// run executes the main daemon logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	ctx := context.Background()

	client, err := connectBluez(ctx, cfg.Bluetooth.Adapter)
	if err != nil {
		return fmt.Errorf("failed to connect to bluetooth daemon: %w", err)
	}
	defer client.Close()

	// Only one of these is wired, depending on the transport type.
	var (
		profile connection.ProfileConnector
		dialer  connection.SocketDialer
	)
	switch cfg.Transport.Type {
	case config.TransportProfile:
		pm := bluez.NewProfileManager(client, cfg.Bluetooth.ServiceUUID)
		if err := pm.Register(ctx); err != nil {
			return fmt.Errorf("failed to register profile: %w", err)
		}
		defer func() {
			unregisterCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := pm.Unregister(unregisterCtx); err != nil {
				zlog.Warn().Msgf("Failed to unregister profile: %v", err)
			}
		}()
		profile = pm
	case config.TransportRFCOMM:
		dialer = rfcomm.NewDialer()
	}

	transport, err := connection.NewTransportFromConfig(cfg, profile, dialer)
	if err != nil {
		return fmt.Errorf("failed to create transport: %w", err)
	}

	opts, err := session.OptionsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid session config: %w", err)
	}

	sessionMgr := session.NewManager(opts, client, transport, client)
	if err := sessionMgr.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sessionMgr.Close()

	unsubscribe, err := client.Subscribe(sessionMgr)
	if err != nil {
		return fmt.Errorf("failed to watch adapter: %w", err)
	}
	defer unsubscribe()

	mux := http.NewServeMux()
	hubPath, hubHandler := bluetoothhubv1connect.NewHubServiceHandler(
		apiconnect.NewHubService(sessionMgr),
		connect.WithInterceptors(apiconnect.NewTokenAuthInterceptor(cfg.API.Token)),
	)
	mux.Handle(hubPath, hubHandler)

	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}

	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	go func() {
		zlog.Info().Msgf("Starting server: addr=%s transport=%s", cfg.Server.Addr, transport.Name())
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	<-serverStartedCh
	time.Sleep(100 * time.Millisecond)

	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case <-sessionMgr.Done():
		zlog.Info().Msg("Session ended, shutting down...")
	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close session manager first to terminate active streams
	sessionMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return nil
}

// connectBluez connects to the system bus, retrying while the Bluetooth
// daemon is still coming up.
func connectBluez(ctx context.Context, adapter string) (*bluez.Client, error) {
	maxRetries := 5
	baseDelay := 1 * time.Second

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			delay := baseDelay * time.Duration(1<<uint(i-1))
			zlog.Info().Msgf("Retrying bluetooth connection in %v...", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		client, err := bluez.Connect(ctx, adapter)
		if err != nil {
			lastErr = err
			zlog.Warn().Msgf("Failed to connect to bluetooth daemon (attempt %d/%d): %v", i+1, maxRetries, err)
			continue
		}

		zlog.Info().Msgf("Connected to bluetooth daemon: adapter=%s", adapter)
		return client, nil
	}
	return nil, fmt.Errorf("failed after %d attempts: %v", maxRetries, lastErr)
}

// checkAdapter prints the adapter state and paired devices.
func checkAdapter(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := bluez.Connect(ctx, cfg.Bluetooth.Adapter)
	if err != nil {
		return err
	}
	defer client.Close()

	radio, err := client.State(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Adapter:    %s (%s)\n", cfg.Bluetooth.Adapter, radio)
	fmt.Printf("Permission: %s\n", client.CheckPermission(ctx))

	paired, err := client.PairedDevices(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Paired devices (%d):\n", len(paired))
	for _, d := range paired {
		fmt.Printf("  %-20s %s\n", d.Address, d.DisplayName())
	}
	return nil
}

// printFilters prints available filters.
func printFilters() {
	fmt.Println("Available Filters:")
	registered := filter.GetRegistered()
	for _, name := range filter.Names() {
		f := registered[name]()
		codes := strings.Join(f.ReturnCodes(), ", ")
		fmt.Printf("  %-30s - %s [codes: %s]\n", f.Name(), f.Description(), codes)
	}
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
