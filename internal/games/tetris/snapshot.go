package tetris

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Paused bool
	Score  int
	Lines  int
	Rounds int
	Piece  PieceType
	X      int
	Y      int
	Filled int // occupied arena cells
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Paused: g.Paused(),
		Score:  g.player.Score,
		Lines:  g.lines,
		Rounds: g.rounds,
		Piece:  g.player.Type,
		X:      g.player.Pos.X,
		Y:      g.player.Pos.Y,
		Filled: g.arena.Filled(),
	}
}
