// padtris is a falling-block puzzle game for the terminal with gamepad support.
//
// Usage:
//
//	padtris play             - Play (keyboard and any attached gamepad)
//	padtris pads             - List attached gamepads and their mappings
//	padtris scores [mode]    - Show high scores
//	padtris serve            - Start SSH server for remote play
//	padtris list             - List game modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.padtris/scores.db)
//	--log <path>    - Set log file for interactive play (default: ~/.padtris/padtris.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/padtris/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/padtris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "padtris",
	Short: "padtris - falling blocks in your terminal, played with a gamepad",
	Long: `padtris is a terminal falling-block puzzle game. It reads attached
gamepads through a normalizer that maps every known controller onto one
standard layout, so any pad plays the same way as the keyboard.

Available commands:
  play     - Play the game
  pads     - List attached gamepads
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show the game modes

Examples:
  padtris play
  padtris play --mode fill
  padtris pads --watch
  padtris scores tetris
  padtris serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.padtris/padtris.log", "Log file for interactive play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(padsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fatal prints an error the way every command reports failures and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openFileLogger returns a logger writing to path. The alt screen owns
// stdout during play, so interactive commands log to a file.
func openFileLogger(path, prefix string) (*log.Logger, func(), error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}
