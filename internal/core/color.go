package core

// Color is a semantic colour for a screen cell or canvas primitive.
// Front ends map it to ANSI codes (terminal) or RGBA (pixel canvas).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
