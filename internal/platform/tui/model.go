package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/vovakirdan/padtris/internal/core"
	"github.com/vovakirdan/padtris/internal/gamepad"
	"github.com/vovakirdan/padtris/internal/registry"
	"github.com/vovakirdan/padtris/internal/storage"
)

// chromeLines is the room under the board for the status line and help bar.
const chromeLines = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	frame    *core.InputFrame
	pads     *gamepad.Normalizer
	binder   *PadBinder
	logger   *log.Logger
	help     help.Model
	scores   ScoreboardModel
	state    core.GameState
	overlay  bool // scoreboard shown over the game
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithGamepad feeds the normalizer's events into the game using bindings.
func WithGamepad(n *gamepad.Normalizer, bindings []Binding) ModelOption {
	return func(m *Model) {
		m.pads = n
		m.binder = NewPadBinder(m.frame, bindings)
		m.binder.Attach(n)
	}
}

// WithLogger sets the logger used for save failures and recovered panics.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil; finished rounds are then not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-chromeLines, 1)

	frame := core.NewInputFrame()
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  &frame,
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.binder == nil {
		m.binder = NewPadBinder(m.frame, nil)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Init initializes the game and the gamepad platform, then starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if m.pads != nil {
		if err := m.pads.Init(); err != nil {
			if errors.Is(err, gamepad.ErrUnsupportedPlatform) {
				m.binder.SetStatus("no gamepad platform available")
			} else {
				m.binder.AppendError(err)
			}
		} else {
			m.binder.SetStatus("gamepad platform: " + m.pads.Platform())
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = max(msg.Height-chromeLines, 1)
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay {
		updated, cmd := m.scores.Update(msg)
		m.scores = updated.(ScoreboardModel)
		if m.scores.Closed() {
			m.overlay = false
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "?" {
		m.openScores()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) openScores() {
	m.scores = NewScoreboardModel(m.store, m.game.ID())
	m.overlay = true
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.overlay {
		// The board is frozen under the scoreboard; pads may still close it.
		m.pollPads()
		if m.frame.Has(core.ActionBack) || m.frame.Has(core.ActionPause) {
			m.overlay = false
		}
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result, err := m.step()
	if err != nil {
		m.logger.Error("tick failed", "game", m.game.ID(), "error", err)
		m.binder.AppendError(err)
	} else {
		m.state = result.State
		m.saveRounds(result.Finished)
	}

	quit := m.frame.Has(core.ActionQuit)
	m.frame.Clear()
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// step runs one gamepad update and one simulation tick. A panic in either is
// recovered and returned as an error so the loop keeps ticking.
func (m *Model) step() (result core.StepResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tui: tick panicked: %v", r)
		}
	}()

	m.pollPads()
	return m.game.Step(*m.frame), nil
}

func (m *Model) pollPads() {
	if m.pads != nil {
		m.pads.Update()
	}
}

func (m *Model) saveRounds(rounds []core.Round) {
	if m.store == nil {
		return
	}
	for _, r := range rounds {
		if _, err := m.store.SaveRound(r); err != nil {
			m.logger.Warn("could not save round", "game", r.GameID, "score", r.Score, "error", err)
			m.binder.AppendError(err)
			continue
		}
		m.logger.Info("round saved", "game", r.GameID, "score", r.Score, "lines", r.Lines)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.binder.AppendError(err)
		return
	}
	dir := filepath.Join(home, ".padtris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.binder.AppendError(err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.binder.AppendError(err)
		return
	}
	m.binder.SetStatus("screenshot saved to " + path)
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.binder.Status()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	base := RenderScreen(m.screen) + "\n" +
		statusStyle.Render(m.binder.Status()) + "\n" +
		m.help.View(m.keys.Keys())

	if !m.overlay {
		return base
	}
	o := overlay.New(viewModel(m.scores.View()), viewModel(base), overlay.Center, overlay.Center, 0, 0)
	return o.View()
}

// viewModel wraps pre-rendered text as a tea.Model for the overlay.
type viewModel string

func (v viewModel) Init() tea.Cmd                       { return nil }
func (v viewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v viewModel) View() string                        { return string(v) }

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
