package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/padtris/internal/games/tetris"
	"github.com/vovakirdan/padtris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMode   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the padtris SSH server",
	Long: `Start an SSH server that lets users connect and play with the keyboard.

Each SSH connection gets its own game. Scores are stored per server (all
users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.padtris/host_key

Examples:
  padtris serve                           # Listen on :23234 with auto-generated key
  padtris serve --ssh :2222               # Listen on port 2222
  padtris serve --host-key ./my_host_key  # Use specific host key
  padtris serve --mode fill               # Sessions start in fill mode

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "normal", "Start mode for every session: normal, fill")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	mode, ok := tetris.ParseMode(flagServeMode)
	if !ok {
		fatal("unknown mode %q (expected normal or fill)", flagServeMode)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = mode.GameID()
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatal("creating server: %v", err)
	}

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
