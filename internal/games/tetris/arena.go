package tetris

// Pos locates the top-left corner of a piece matrix in the arena.
type Pos struct {
	X, Y int
}

// Player is the falling piece and the running score.
type Player struct {
	Type   PieceType
	Matrix Matrix
	Pos    Pos
	Score  int
}

// Arena is the fixed-size playfield, indexed [row][column].
type Arena [][]int

// NewArena creates an empty arena.
func NewArena(w, h int) Arena {
	a := make(Arena, h)
	for y := range a {
		a[y] = make([]int, w)
	}
	return a
}

// Width returns the number of columns.
func (a Arena) Width() int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0])
}

// Height returns the number of rows.
func (a Arena) Height() int {
	return len(a)
}

// Clear empties every cell.
func (a Arena) Clear() {
	for _, row := range a {
		clear(row)
	}
}

// Collide reports whether any non-zero cell of the player's matrix lies
// outside the arena or over an occupied cell.
func (a Arena) Collide(p *Player) bool {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ax, ay := x+p.Pos.X, y+p.Pos.Y
			if ay < 0 || ay >= len(a) || ax < 0 || ax >= len(a[ay]) {
				return true
			}
			if a[ay][ax] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge commits the player's non-zero cells into the arena.
// Cells outside the arena are dropped.
func (a Arena) Merge(p *Player) {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ax, ay := x+p.Pos.X, y+p.Pos.Y
			if ay < 0 || ay >= len(a) || ax < 0 || ax >= len(a[ay]) {
				continue
			}
			a[ay][ax] = v
		}
	}
}

// Sweep removes full rows bottom-up, inserting an empty row at the top for
// each. The top row is never tested. The first cleared row is worth
// linePoints, every further row in the same sweep doubles the award.
func (a Arena) Sweep(linePoints int) (rows, points int) {
	award := linePoints
	for y := len(a) - 1; y > 0; y-- {
		if !full(a[y]) {
			continue
		}
		row := a[y]
		clear(row)
		copy(a[1:y+1], a[:y])
		a[0] = row
		y++ // the row that moved into y has not been tested yet

		rows++
		points += award
		award *= 2
	}
	return rows, points
}

func full(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// Filled counts occupied cells.
func (a Arena) Filled() int {
	n := 0
	for _, row := range a {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
