package core

// Color is the foreground colour of a screen cell. Hosts map it to
// whatever their output supports (ANSI styles, CSS strings).
type Color uint8

// Palette shared by the engine and the effects.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorAccent // Site accent teal (#64ffda)
	ColorViolet // Site secondary violet (#a78bfa)
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
	ColorAccent:  "accent",
	ColorViolet:  "violet",
}

// String returns the palette name, used in snapshots and config files.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "default"
}

// ParseColor maps a palette name back to a Color. Unknown names give
// ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}
