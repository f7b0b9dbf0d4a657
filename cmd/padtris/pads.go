package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/padtris/internal/config"
	"github.com/vovakirdan/padtris/internal/gamepad"
)

// settleTime gives freshly opened joystick nodes time to report their state.
const settleTime = 500 * time.Millisecond

var flagWatch bool

var padsCmd = &cobra.Command{
	Use:   "pads",
	Short: "List attached gamepads",
	Long: `Show every attached gamepad with its resolved controller type and the
mapping used to normalize it. With --watch, print normalized control events
until interrupted, which helps when writing a custom mapping table.

Examples:
  padtris pads
  padtris pads --watch
  padtris pads --mappings ./my-pads.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPads,
}

func init() {
	padsCmd.Flags().BoolVar(&flagWatch, "watch", false, "Print normalized events until Ctrl+C")
	padsCmd.Flags().StringVar(&flagMappings, "mappings", "", "Path to a controller mapping table YAML")
	padsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (deadzone settings)")
}

func runPads(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "padtris",
		Level:           log.WarnLevel,
	})

	gameCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pads, closePads, err := openPads(ctx, logger, flagMappings, gameCfg.Gamepad)
	if err != nil {
		fatal("%v", err)
	}
	defer closePads()

	if err := pads.Init(); err != nil {
		if errors.Is(err, gamepad.ErrUnsupportedPlatform) {
			fmt.Println("No gamepad platform available.")
			return
		}
		fatal("%v", err)
	}

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	settle := time.After(settleTime)
	for waiting := true; waiting; {
		select {
		case <-ctx.Done():
			return
		case <-settle:
			waiting = false
		case <-tick.C:
			pads.Update()
		}
	}

	printPads(pads)
	if !flagWatch {
		return
	}

	fmt.Println()
	fmt.Println("Watching for events, press Ctrl+C to stop.")
	watchPads(ctx, pads, tick.C)
}

func printPads(pads *gamepad.Normalizer) {
	devices := pads.Devices()
	fmt.Printf("Platform: %s\n\n", pads.Platform())

	if len(devices) == 0 {
		fmt.Println("No gamepads attached.")
		return
	}

	fmt.Printf("  %-5s  %-12s  %-22s  %-9s  %s\n", "Index", "Type", "Mapping", "Raw", "ID")
	fmt.Printf("  %-5s  %-12s  %-22s  %-9s  %s\n", "-----", "----", "-------", "---", "--")
	for _, d := range devices {
		raw := d.Raw()
		counts := fmt.Sprintf("%db/%da", len(raw.Buttons), len(raw.Axes))
		fmt.Printf("  %-5d  %-12s  %-22s  %-9s  %s\n", d.Index, d.Type, d.Mapping, counts, d.ID)
	}
}

func watchPads(ctx context.Context, pads *gamepad.Normalizer, tick <-chan time.Time) {
	show := func(e gamepad.Event) {
		switch e.Kind {
		case gamepad.EventConnected:
			fmt.Printf("pad %d connected: %s (%s, %s)\n", e.Device.Index, e.Device.ID, e.Device.Type, e.Device.Mapping)
		case gamepad.EventDisconnected:
			fmt.Printf("pad %d disconnected\n", e.Device.Index)
		default:
			fmt.Printf("pad %d %-12s %-22s %+.2f\n", e.Device.Index, e.Kind, e.Control.Name(), e.Value)
		}
	}
	for _, k := range []gamepad.EventKind{
		gamepad.EventConnected,
		gamepad.EventDisconnected,
		gamepad.EventButtonDown,
		gamepad.EventButtonUp,
		gamepad.EventAxisChanged,
	} {
		pads.Bind(k, show)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			pads.Update()
		}
	}
}
