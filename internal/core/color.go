package core

// Color is a terminal color understood by lipgloss: a hex string such as
// "#228b22" or an ANSI code such as "9". The empty Color means the terminal
// default.
type Color string

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = ""

// Palette of the game screen.
const (
	ColorBlack      Color = "#000000"
	ColorWhite      Color = "#ffffff"
	ColorGreen      Color = "#228b22"
	ColorLightGreen Color = "#90ee90"
	ColorRed        Color = "#dc143c"
	ColorFoodGlow   Color = "#ff6464"
	ColorGray       Color = "#a9a9a9"
	ColorDarkGray   Color = "#282828"
	ColorPurple     Color = "#9370db"
)
