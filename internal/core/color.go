package core

// Color represents a foreground color for console output.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for match output.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
)

// Code returns the ANSI color code understood by lipgloss.Color.
func (c Color) Code() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorCyan:
		return "6"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
