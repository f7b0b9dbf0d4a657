package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/padtris/internal/config"
	"github.com/vovakirdan/padtris/internal/core"
	"github.com/vovakirdan/padtris/internal/games/tetris"
	"github.com/vovakirdan/padtris/internal/platform/tui"
	"github.com/vovakirdan/padtris/internal/registry"
	"github.com/vovakirdan/padtris/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagMappings   string
	flagDifficulty string
	flagNoGamepad  bool
	flagPrintCfg   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing. Attached gamepads are picked up automatically and can
be plugged in or out at any time.

Keyboard:
  ←/→ or A/D  - Move
  ↓ or S      - Soft drop
  ↑/W/X, Z    - Rotate clockwise, counter-clockwise
  Space       - Hard drop
  P/Esc       - Pause (normal mode)
  M/Tab       - Switch between normal and fill mode
  R           - Restart
  ?           - High scores
  Q/Ctrl+C    - Quit

Gamepad (standard layout, see tetris.yaml to rebind):
  D-pad / left stick  - Move, soft drop (up: hard drop)
  Face 1 / Face 2     - Rotate clockwise, counter-clockwise
  Start               - Pause
  Select              - Switch mode

Difficulty options:
  easy   - Slower base speed
  normal - Default speed, speeds up with score
  hard   - Faster base speed
  fixed  - No speed-up

Examples:
  padtris play
  padtris play --mode fill
  padtris play --difficulty hard
  padtris play --config ./my-tetris.yaml --mappings ./my-pads.yaml
  padtris play --print-config > ~/.padtris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "normal", "Start mode: normal, fill")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMappings, "mappings", "", "Path to a controller mapping table YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoGamepad, "no-gamepad", false, "Keyboard only")
	playCmd.Flags().BoolVar(&flagPrintCfg, "print-config", false, "Print the default game config YAML and exit")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, ok := tetris.ParseMode(flagMode)
	if !ok {
		fatal("unknown mode %q (expected normal or fill)", flagMode)
	}
	if flagPrintCfg {
		os.Stdout.Write(config.GetDefaultYAML(mode.GameID()))
		return
	}
	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		fatal("unknown difficulty %q", flagDifficulty)
	}
	if flagDifficulty == "" {
		preset = ""
	}

	// Fail early on a broken config instead of silently falling back.
	gameCfg, err := config.LoadTetrisPreset(flagConfig, preset)
	if err != nil {
		fatal("%v", err)
	}
	bindings, err := tui.ParseBindings(gameCfg.Gamepad.Bindings)
	if err != nil {
		fatal("%v", err)
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)

	logger, closeLog, err := openFileLogger(flagLogPath, "padtris")
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(mode.GameID())
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if !flagNoGamepad {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		pads, closePads, padErr := openPads(ctx, logger, flagMappings, gameCfg.Gamepad)
		if padErr != nil {
			fatal("%v", padErr)
		}
		defer closePads()
		opts = append(opts, tui.WithGamepad(pads, bindings))
	}

	logger.Info("starting", "mode", mode, "difficulty", gameCfg.Difficulty, "gamepad", !flagNoGamepad)
	runErr := tui.Run(game, store, cfg, opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		fatal("running game: %v", runErr)
	}
}
