package core

// Color represents a terminal color for a tile.
// Uses ANSI 16-color codes for terminal compatibility.
type Color uint8

// Predefined colors for tiles.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// TileStyle describes how a tile value is drawn.
type TileStyle struct {
	Fg    Color
	Bg    Color
	Bold  bool
	Faint bool
}

// TilePalette maps tile values to their style. Values missing from the
// palette are drawn with DefaultTileStyle.
var TilePalette = map[int]TileStyle{
	0:    {Faint: true},
	2:    {Fg: ColorWhite, Bold: true},
	4:    {Fg: ColorCyan, Bold: true},
	8:    {Fg: ColorGreen, Bold: true},
	16:   {Fg: ColorMagenta, Bold: true},
	32:   {Fg: ColorYellow, Bold: true},
	64:   {Fg: ColorRed, Bold: true},
	128:  {Fg: ColorWhite, Bg: ColorBlue, Bold: true},
	256:  {Fg: ColorWhite, Bg: ColorMagenta, Bold: true},
	512:  {Fg: ColorWhite, Bg: ColorGreen, Bold: true},
	1024: {Fg: ColorWhite, Bg: ColorYellow, Bold: true},
	2048: {Fg: ColorWhite, Bg: ColorRed, Bold: true},
}

// DefaultTileStyle is used for values without a palette entry.
var DefaultTileStyle = TileStyle{Bold: true}

// StyleFor returns the style for a tile value.
func StyleFor(value int) TileStyle {
	if s, ok := TilePalette[value]; ok {
		return s
	}
	return DefaultTileStyle
}
