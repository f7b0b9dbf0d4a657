// Package registry maps mode IDs to game factories.
//
// The tetris package registers its normal and fill modes from init(). The
// play, scores and list commands and the SSH server look modes up by ID,
// which is also the key of the mode's score table.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/padtris/internal/core"
)

// Game is one playable mode. Implementations hold pure game logic; the tui
// platform owns input, timing and terminal output.
type Game interface {
	// ID is the mode ID, e.g. "tetris" or "tetris_fill".
	ID() string
	Title() string

	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Rounds that ended
	// during the tick are reported in the result.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game for one session.
type Factory func() Game

type mode struct {
	GameInfo
	create Factory
}

var (
	mu    sync.RWMutex
	modes []mode // registration order
)

// Register adds a mode. The title is read from one instance made by f.
// Panics if the ID is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := find(id); ok {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes = append(modes, mode{
		GameInfo: GameInfo{ID: id, Title: f().Title()},
		create:   f,
	})
}

// List returns every mode in registration order, so the normal mode comes
// before fill.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(modes))
	for i, m := range modes {
		out[i] = m.GameInfo
	}
	return out
}

// Lookup returns the info of a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := find(id)
	return m.GameInfo, ok
}

// Exists reports whether id is a registered mode.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create makes a new game for the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	m, ok := find(id)
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return m.create(), nil
}

// find expects mu to be held.
func find(id string) (mode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return mode{}, false
}
