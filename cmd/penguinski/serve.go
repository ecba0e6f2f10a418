package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/games/penguin"
	"github.com/vovakirdan/penguin-ski/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Penguin Ski SSH server",
	Long: `Start an SSH server that lets users connect and ski.

Each SSH connection gets its own session with a level picker.
Runs are stored per-server (all users share the same best runs).

Host key handling:
  - If --host-key (or ssh.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.penguinski/host_key

Examples:
  penguinski serve                           # Listen on :23234 with auto-generated key
  penguinski serve --ssh :2222               # Listen on port 2222
  penguinski serve --host-key ./my_host_key  # Use specific host key
  penguinski serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from settings)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "penguinski-ssh")
	penguin.SetLogger(logger)

	cfg := tui.SSHServerConfig{
		Address:      settings.SSH.Address,
		HostKeyPath:  expandHome(settings.SSH.HostKey),
		DBPath:       settings.DBPath,
		IdleTimeout:  settings.IdleTimeout(),
		TickRate:     settings.TickRate,
		Hold:         settings.HoldDuration(),
		DefaultLevel: settings.DefaultLevel().String(),
		Logger:       logger,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Penguin Ski SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
