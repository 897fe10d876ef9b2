package core

// Color represents a foreground color for a screen cell.
// Hosts map these to ANSI 256-color codes or RGBA values.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorOrange
	ColorGray
	ColorDarkGray
)
