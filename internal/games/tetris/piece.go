package tetris

import "fmt"

// PieceType names one of the seven shapes.
type PieceType byte

const (
	PieceT PieceType = 'T'
	PieceJ PieceType = 'J'
	PieceL PieceType = 'L'
	PieceO PieceType = 'O'
	PieceS PieceType = 'S'
	PieceZ PieceType = 'Z'
	PieceI PieceType = 'I'
)

// PieceTypes lists every shape in spawn-table order.
var PieceTypes = []PieceType{PieceT, PieceJ, PieceL, PieceO, PieceS, PieceZ, PieceI}

func (p PieceType) String() string {
	return string(rune(p))
}

// Matrix is a square piece grid. Cells hold 0 (empty) or a piece-color
// identifier 1-7.
type Matrix [][]int

// NewMatrix returns the rotation-zero matrix of a piece.
// The piece set is closed, so an unknown type is a programming error.
func NewMatrix(p PieceType) Matrix {
	switch p {
	case PieceT:
		return Matrix{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		}
	case PieceO:
		return Matrix{
			{2, 2},
			{2, 2},
		}
	case PieceL:
		return Matrix{
			{0, 3, 0},
			{0, 3, 0},
			{0, 3, 3},
		}
	case PieceJ:
		return Matrix{
			{0, 4, 0},
			{0, 4, 0},
			{4, 4, 0},
		}
	case PieceI:
		return Matrix{
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
		}
	case PieceS:
		return Matrix{
			{0, 6, 6},
			{6, 6, 0},
			{0, 0, 0},
		}
	case PieceZ:
		return Matrix{
			{7, 7, 0},
			{0, 7, 7},
			{0, 0, 0},
		}
	}
	panic(fmt.Sprintf("tetris: unknown piece type %q", rune(p)))
}

// Rotate turns the matrix a quarter turn in place: clockwise for dir > 0,
// counter-clockwise otherwise. Transpose then reverse is only a rotation for
// square matrices, which every shape above is.
func Rotate(m Matrix, dir int) {
	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}

	if dir > 0 {
		for _, row := range m {
			reverse(row)
		}
		return
	}
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

func reverse(row []int) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Width returns the matrix width used as the wall-kick bound.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
