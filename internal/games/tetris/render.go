package tetris

import (
	"fmt"

	"github.com/vovakirdan/padtris/internal/core"
)

const (
	cellW   = 2  // screen columns per arena cell
	hudW    = 18 // HUD column width right of the board
	hudGap  = 2
	minHUDH = 9
)

// Render draws the board, the falling piece and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.arena.Width()*cellW + 2
	boardH := g.arena.Height() + 2
	totalW := boardW + hudGap + hudW

	if dst.Width() < boardW || dst.Height() < max(boardH, minHUDH) {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH))
		return
	}

	// Center the board, drop the HUD under it when there is no room beside it.
	ox := (dst.Width() - totalW) / 2
	if ox < 0 {
		ox = (dst.Width() - boardW) / 2
	}
	oy := (dst.Height() - boardH) / 2

	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)
	g.renderArena(dst, ox+1, oy+1)
	g.renderPlayer(dst, ox+1, oy+1)

	if dst.Width() >= ox+totalW {
		g.renderHUD(dst, ox+boardW+hudGap, oy+1)
	}

	if g.Paused() {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderArena(dst *core.Screen, ox, oy int) {
	for y, row := range g.arena {
		for x, v := range row {
			sx := ox + x*cellW
			if v == 0 {
				dst.SetColored(sx, oy+y, ' ', core.ColorDefault)
				dst.SetColored(sx+1, oy+y, '·', core.ColorGray)
				continue
			}
			drawBlock(dst, sx, oy+y, core.PieceColor(v))
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, ox, oy int) {
	p := g.player
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ax, ay := p.Pos.X+x, p.Pos.Y+y
			if ay < 0 || ay >= g.arena.Height() || ax < 0 || ax >= g.arena.Width() {
				continue
			}
			drawBlock(dst, ox+ax*cellW, oy+ay, core.PieceColor(v))
		}
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// renderHUD draws score, mode and speed beside the board.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	modeColor := core.ColorCyan
	if g.mode == ModeFill {
		modeColor = core.ColorOrange
	}

	dst.DrawTextColored(x, y, "TETRIS", core.ColorPink)
	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", g.player.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", g.lines))
	dst.DrawText(x, y+4, "Mode   ")
	dst.DrawTextColored(x+7, y+4, string(g.mode), modeColor)

	if g.mode == ModeNormal {
		dst.DrawText(x, y+5, fmt.Sprintf("Speed  x%.1f", 1/g.cfg.Gravity.Ramp.Multiplier(g.player.Score)))
	} else {
		dst.DrawTextColored(x, y+5, "Speed  off", core.ColorGray)
	}
	if g.Paused() {
		dst.DrawTextColored(x, y+6, "PAUSED", core.ColorYellow)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}
