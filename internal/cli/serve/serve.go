// Package serve runs the kanban server: the RPC API over HTTP and the change
// notification hub over a unix socket, sharing one database.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/daemon"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/rpc"
)

// ErrAlreadyRunning means another server holds the lock for this data directory
var ErrAlreadyRunning = errors.New("another kanban server is already running")

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the RPC server and the change notification hub",
		Long: `Serve the kanban RPC API over HTTP and broadcast every committed change
to subscribers of the unix socket (see "kanban watch").

Only one server may run per data directory.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("listen", "", "HTTP listen address (default from config)")
	cmd.Flags().String("socket", "", "Event hub socket path (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := cli.ConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("listen"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v, _ := cmd.Flags().GetString("socket"); v != "" {
		cfg.Daemon.SocketPath = v
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", cfg.Server.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.ListenAddr, err)
	}

	return Run(ctx, cfg, ln, slog.Default())
}

// Run serves on ln until ctx is done, then shuts down gracefully within
// cfg.Server.ShutdownTimeout. ln is closed on return.
func Run(ctx context.Context, cfg *config.Config, ln net.Listener, logger *slog.Logger) error {
	defer func() { _ = ln.Close() }()

	lock, err := acquireLock(cfg.LockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release server lock", "error", err)
		}
	}()

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	hub, err := daemon.NewServer(cfg.Daemon.SocketPath,
		daemon.WithBuffers(cfg.Daemon.BroadcastBuffer, cfg.Daemon.ClientBuffer),
		daemon.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to start event hub: %w", err)
	}

	a := app.New(database.NewRepository(db),
		app.WithEventPublisher(hub),
		app.WithLogger(logger))
	defer func() { _ = a.Close() }()

	api := rpc.New(a,
		rpc.WithHub(hub),
		rpc.WithLogger(logger),
		rpc.WithAllowedOrigins(cfg.Server.AllowedOrigins))

	httpServer := &http.Server{
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	hubErr := make(chan error, 1)
	go func() { hubErr <- hub.Start(ctx) }()

	httpErr := make(chan error, 1)
	go func() { httpErr <- httpServer.Serve(ln) }()

	logger.Info("kanban server started",
		"addr", ln.Addr().String(),
		"socket", cfg.Daemon.SocketPath,
		"database", cfg.Database.Path,
		"pid", os.Getpid())

	var serveErr error
	select {
	case <-ctx.Done():
	case err := <-httpErr:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("http server: %w", err)
		}
	}

	logger.Info("kanban server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown incomplete", "error", err)
	}
	if err := hub.Shutdown(); err != nil {
		logger.Error("event hub shutdown failed", "error", err)
	}

	select {
	case <-hubErr:
	case <-shutdownCtx.Done():
		logger.Warn("event hub did not stop in time")
	}

	return serveErr
}

func acquireLock(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire server lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock: %s)", ErrAlreadyRunning, path)
	}
	return lock, nil
}
