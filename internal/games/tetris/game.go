// Package tetris implements the falling-block game: an arena, one falling
// piece, line clearing and a Fill sandbox mode without gravity.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/padtris/internal/config"
	"github.com/vovakirdan/padtris/internal/core"
	"github.com/vovakirdan/padtris/internal/registry"
)

// Mode represents the play mode.
type Mode string

const (
	ModeNormal Mode = "normal" // gravity and line clearing
	ModeFill   Mode = "fill"   // no gravity, no clearing, pause ignored
)

// GameID returns the registry and score-table ID of a mode.
func (m Mode) GameID() string {
	if m == ModeFill {
		return "tetris_fill"
	}
	return "tetris"
}

// ParseMode resolves a mode name. Empty means normal.
func ParseMode(name string) (Mode, bool) {
	switch Mode(name) {
	case "", ModeNormal:
		return ModeNormal, true
	case ModeFill:
		return ModeFill, true
	}
	return "", false
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParseDifficulty(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// Game implements the falling-block game.
type Game struct {
	startMode Mode
	mode      Mode
	cfg       config.TetrisConfig
	fixedCfg  bool // cfg was injected, skip loading on Reset

	rng  *rand.Rand
	tick uint64

	arena       Arena
	player      Player
	dropCounter float64 // ms since the last gravity step
	frameMs     float64
	paused      bool

	lines  int // rows cleared this round
	rounds int // rounds finished by overflow or restart
	held   map[core.Action]int

	finished []core.Round

	screenW int
	screenH int
}

// New creates a game starting in Normal mode.
func New() *Game {
	return &Game{startMode: ModeNormal}
}

// NewFill creates a game starting in Fill mode.
func NewFill() *Game {
	return &Game{startMode: ModeFill}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.TetrisConfig) *Game {
	return &Game{startMode: mode, cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(ModeNormal.GameID(), func() registry.Game {
		return New()
	})
	registry.Register(ModeFill.GameID(), func() registry.Game {
		return NewFill()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.startMode.GameID()
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.startMode == ModeFill {
		return "Tetris (Fill)"
	}
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadTetrisPreset(configPath, difficultyPreset)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.frameMs = rc.FrameMillis()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.mode = g.startMode
	g.paused = false
	g.dropCounter = 0
	g.lines = 0
	g.rounds = 0
	g.held = make(map[core.Action]int)
	g.finished = nil

	g.arena = NewArena(g.cfg.Arena.Width, g.cfg.Arena.Height)
	g.player = Player{}
	g.PlayerReset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.finished = nil

	if in.Has(core.ActionRestart) {
		g.restart()
	}
	if in.Has(core.ActionToggleMode) {
		g.ToggleMode()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	if g.Paused() {
		return g.result()
	}

	switch {
	case in.Has(core.ActionLeft):
		g.PlayerMove(-1)
	case in.Has(core.ActionRight):
		g.PlayerMove(1)
	}
	if in.Has(core.ActionRotateCW) {
		g.PlayerRotate(1)
	}
	if in.Has(core.ActionRotateCCW) {
		g.PlayerRotate(-1)
	}
	if in.Has(core.ActionDown) {
		g.PlayerDrop(1)
	}
	if in.Has(core.ActionDrop) {
		g.HardDrop()
	}

	g.repeatHeld(in)

	if g.mode == ModeNormal {
		g.dropCounter += g.frameMs
		if g.dropCounter > g.DropInterval() {
			g.PlayerDrop(1)
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Finished: g.finished}
}

// repeatHeld applies auto-repeat for held controls. Shifts repeat after a
// delay, soft drop repeats at its own rate from the first held tick.
func (g *Game) repeatHeld(in core.InputFrame) {
	ctl := g.cfg.Controls
	g.repeat(in, core.ActionLeft, ctl.RepeatDelayTicks, ctl.RepeatRateTicks, func() { g.PlayerMove(-1) })
	g.repeat(in, core.ActionRight, ctl.RepeatDelayTicks, ctl.RepeatRateTicks, func() { g.PlayerMove(1) })
	g.repeat(in, core.ActionDown, 0, ctl.SoftDropRateTicks, func() { g.PlayerDrop(1) })
}

func (g *Game) repeat(in core.InputFrame, a core.Action, delay, rate int, fn func()) {
	if !in.IsHeld(a) {
		delete(g.held, a)
		return
	}
	n := g.held[a] + 1
	g.held[a] = n
	if rate <= 0 || n <= delay {
		return
	}
	if (n-delay)%rate == 0 {
		fn()
	}
}

// PlayerMove shifts the piece one column; a colliding shift is undone.
func (g *Game) PlayerMove(dir int) {
	g.player.Pos.X += dir
	if g.arena.Collide(&g.player) {
		g.player.Pos.X -= dir
	}
}

// PlayerRotate rotates the piece and searches for a free column with the
// offsets 1, -2, 3, -4, ... When the offset grows past the piece width the
// rotation is undone and the original column restored.
func (g *Game) PlayerRotate(dir int) {
	x := g.player.Pos.X
	offset := 1
	Rotate(g.player.Matrix, dir)
	for g.arena.Collide(&g.player) {
		g.player.Pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if abs(offset) > g.player.Matrix.Width() {
			Rotate(g.player.Matrix, -dir)
			g.player.Pos.X = x
			return
		}
	}
}

// PlayerDrop moves the piece down offset rows, stopping at the first
// collision. A collision locks the piece: it is merged one row up, a new
// piece spawns and full rows are swept. The gravity counter always resets.
// Reports whether the piece locked.
func (g *Game) PlayerDrop(offset int) bool {
	defer func() { g.dropCounter = 0 }()
	for range offset {
		g.player.Pos.Y++
		if g.arena.Collide(&g.player) {
			g.player.Pos.Y--
			g.arena.Merge(&g.player)
			g.PlayerReset()
			g.ArenaSweep()
			return true
		}
	}
	return false
}

// HardDrop drops the piece until it locks.
func (g *Game) HardDrop() {
	g.PlayerDrop(g.arena.Height() + len(g.player.Matrix) + 1)
}

// PlayerReset spawns a random piece centered on row zero. If it collides
// straight away the board is full: the round ends, the arena is cleared and
// the score drops to zero.
func (g *Game) PlayerReset() {
	t := PieceTypes[g.rng.Intn(len(PieceTypes))]
	g.player.Type = t
	g.player.Matrix = NewMatrix(t)
	g.player.Pos = Pos{
		X: g.arena.Width()/2 - len(g.player.Matrix)/2,
		Y: 0,
	}
	if g.arena.Collide(&g.player) {
		g.endRound()
		g.arena.Clear()
	}
}

// ArenaSweep clears full rows in Normal mode and adds their points.
// Returns the points awarded.
func (g *Game) ArenaSweep() int {
	if g.mode != ModeNormal {
		return 0
	}
	rows, points := g.arena.Sweep(g.cfg.Scoring.LinePoints)
	g.lines += rows
	g.player.Score += points
	return points
}

// ToggleMode switches between Normal and Fill and respawns the piece.
func (g *Game) ToggleMode() {
	if g.mode == ModeNormal {
		g.mode = ModeFill
	} else {
		g.mode = ModeNormal
	}
	g.paused = false
	g.dropCounter = 0
	g.PlayerReset()
}

// TogglePause flips pause in Normal mode. Fill mode ignores it.
func (g *Game) TogglePause() {
	if g.mode != ModeNormal {
		return
	}
	g.paused = !g.paused
}

// Paused reports whether the simulation is suspended.
func (g *Game) Paused() bool {
	return g.mode == ModeNormal && g.paused
}

// DropInterval returns the current gravity interval in milliseconds.
func (g *Game) DropInterval() float64 {
	return g.cfg.Gravity.Interval(g.player.Score)
}

func (g *Game) restart() {
	g.endRound()
	g.arena.Clear()
	g.paused = false
	g.PlayerReset()
}

// endRound records the finished score and zeroes it.
func (g *Game) endRound() {
	if g.player.Score > 0 {
		g.finished = append(g.finished, core.Round{
			GameID: g.mode.GameID(),
			Score:  g.player.Score,
			Lines:  g.lines,
		})
	}
	g.rounds++
	g.lines = 0
	g.player.Score = 0
}

// Mode returns the current play mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Arena returns the playfield. Callers must not keep it across steps.
func (g *Game) Arena() Arena {
	return g.arena
}

// Player returns the falling piece.
func (g *Game) Player() *Player {
	return &g.player
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.player.Score,
		Paused: g.Paused(),
		Mode:   string(g.mode),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
