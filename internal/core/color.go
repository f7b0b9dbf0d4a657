package core

// Color represents a foreground color for a screen cell.
// The platform layer owns the actual terminal colors.
type Color uint8

// Palette entries. The seven piece colors follow piece-color identifiers
// 1 through 7 in order.
const (
	ColorDefault Color = iota
	ColorPink
	ColorCyan
	ColorGreen
	ColorMagenta
	ColorOrange
	ColorYellow
	ColorBlue
	ColorGray
	ColorWhite
	ColorRed
)

// PieceColor returns the palette color for a piece-color identifier (1-7).
// Zero and out-of-range identifiers map to ColorDefault.
func PieceColor(id int) Color {
	if id < 1 || id > 7 {
		return ColorDefault
	}
	return Color(id)
}
