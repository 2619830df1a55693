package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/apple-picking/internal/leaderboard/server"
	"github.com/vovakirdan/apple-picking/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu. The local top 10 is
shared by everyone on the server; player names start as the SSH user name.
With a leaderboard URL configured, rounds are submitted there too.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.applepick/host_key

Examples:
  applepick serve                           # Listen on :23234
  applepick serve --ssh :2222               # Listen on port 2222
  applepick serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP leaderboard service",
	Long: `Start the leaderboard service the game submits scores to.

Endpoints:
  POST /scores         - Submit {"playerName", "score", "timestamp"}
  GET  /scores?limit=n - Entries, best first
  GET  /healthz        - Liveness

Examples:
  applepick server
  applepick server --addr :9090
  PORT=9090 applepick server`,
	Args: cobra.NoArgs,
	Run:  runServer,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")

	serverCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = cfg.SSH.Addr
	sshCfg.HostKeyPath = cfg.SSH.HostKeyPath
	sshCfg.DBPath = cfg.Storage.Path
	if cfg.SSH.IdleTimeout > 0 {
		sshCfg.IdleTimeout = cfg.SSH.IdleTimeout
	}
	sshCfg.LeaderboardURL = cfg.Leaderboard.URL
	sshCfg.LeaderboardTimeout = cfg.Leaderboard.Timeout
	sshCfg.Runtime = runtimeConfig(cfg, 80, 24)

	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = minutes(flagIdleTimeout)
	}

	srv, err := tui.NewSSHServer(sshCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting apple picking SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagHTTPAddr != "" {
		cfg.Server.Addr = flagHTTPAddr
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "applepick-lb",
	})
	gin.SetMode(gin.ReleaseMode)

	store := mustOpenStore(cfg)
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(store, cfg.Server, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server error", "error", err)
		stop()
		store.Close()
		os.Exit(1)
	}
}
