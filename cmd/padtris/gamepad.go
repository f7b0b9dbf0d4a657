package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/padtris/internal/config"
	"github.com/vovakirdan/padtris/internal/gamepad"
	"github.com/vovakirdan/padtris/internal/gamepad/joydev"
)

// openPads builds a normalizer over the Linux joystick backend. A missing
// backend is not an error: the normalizer then reports the unsupported
// platform from Init and plays keyboard only.
func openPads(ctx context.Context, logger *log.Logger, mappingsPath string, pad config.GamepadConfig) (*gamepad.Normalizer, func(), error) {
	table := gamepad.DefaultTable()
	if mappingsPath != "" {
		t, err := gamepad.LoadTable(mappingsPath)
		if err != nil {
			return nil, nil, err
		}
		table = t
	}

	opts := []gamepad.Option{
		gamepad.WithTable(table),
		gamepad.WithFilter(gamepad.Filter{Deadzone: pad.Deadzone, Maximize: pad.Maximize}),
		gamepad.WithLogger(logger),
	}
	closeFn := func() {}

	scanner, err := joydev.Open(ctx, joydev.WithLogger(logger))
	switch {
	case err == nil:
		// Hotplug events first; the polling diff catches anything missed.
		opts = append(opts, gamepad.WithPlatforms(
			gamepad.NewEventPlatform(gamepad.PlatformLinux, scanner),
			gamepad.NewPollingPlatform(gamepad.PlatformLinux, scanner),
		))
		closeFn = func() {
			if err := scanner.Close(); err != nil {
				logger.Warn("joystick scanner stopped with error", "error", err)
			}
		}
	case errors.Is(err, gamepad.ErrUnsupportedPlatform):
		logger.Info("joystick backend unavailable", "error", err)
	default:
		return nil, nil, err
	}

	return gamepad.New(opts...), closeFn, nil
}
