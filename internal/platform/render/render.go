// Package render draws the board as a bordered text grid, optionally
// colorized per tile value with lipgloss.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

// CellWidth is the inner width of a board cell.
const CellWidth = 6

// Messages shared by the frontends.
const (
	WinMessage      = "🎉 YOU WON THE GAME 🎉"
	LoseMessage     = "😭 Oops! YOU LOST THE GAME"
	InvalidMessage  = "Invalid move! Please enter w, a, s, or d."
	NoChangeMessage = "Move didn't change the board, try a different move."
)

// colorCodes maps core.Color to ANSI color numbers.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
}

// Renderer formats boards and status lines. Color output is decided once
// at construction and never consults the environment afterwards.
type Renderer struct {
	colorEnabled bool
	lg           *lipgloss.Renderer
	tiles        map[int]lipgloss.Style
	win          lipgloss.Style
	lose         lipgloss.Style
	notice       lipgloss.Style
}

// New creates a renderer writing styles for w.
func New(w io.Writer, colorEnabled bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if colorEnabled {
		lg.SetColorProfile(termenv.ANSI)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}

	r := &Renderer{
		colorEnabled: colorEnabled,
		lg:           lg,
		tiles:        make(map[int]lipgloss.Style, len(core.TilePalette)),
	}

	for value := range core.TilePalette {
		r.tiles[value] = r.styleFor(core.StyleFor(value))
	}
	r.win = lg.NewStyle().Bold(true).Foreground(colorCodes[core.ColorGreen])
	r.lose = lg.NewStyle().Bold(true).Foreground(colorCodes[core.ColorRed])
	r.notice = lg.NewStyle().Foreground(colorCodes[core.ColorYellow])

	return r
}

// styleFor converts a palette entry to a lipgloss style.
func (r *Renderer) styleFor(ts core.TileStyle) lipgloss.Style {
	s := r.lg.NewStyle().Bold(ts.Bold).Faint(ts.Faint)
	if c, ok := colorCodes[ts.Fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := colorCodes[ts.Bg]; ok {
		s = s.Background(c)
	}
	return s
}

// ColorEnabled reports whether output contains ANSI styling.
func (r *Renderer) ColorEnabled() bool {
	return r.colorEnabled
}

// paint applies style only when color is enabled.
func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.colorEnabled {
		return text
	}
	return s.Render(text)
}

// Tile returns a single cell, value centered in CellWidth columns.
// Empty cells are blank.
func (r *Renderer) Tile(value int) string {
	text := ""
	if value != 0 {
		text = strconv.Itoa(value)
	}

	style, ok := r.tiles[value]
	if !ok {
		style = r.styleFor(core.StyleFor(value))
	}
	return r.paint(style, center(text, CellWidth))
}

// Board returns the bordered grid, one line per border and row, with a
// trailing newline.
func (r *Renderer) Board(b game.Board) string {
	sep := "+" + strings.Repeat(strings.Repeat("-", CellWidth)+"+", game.BoardSize)

	var sb strings.Builder
	sb.WriteString(sep)
	sb.WriteByte('\n')

	for y := range game.BoardSize {
		sb.WriteByte('|')
		for x := range game.BoardSize {
			sb.WriteString(r.Tile(b[y][x]))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(sep)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Score returns the score line.
func (r *Renderer) Score(score int) string {
	return fmt.Sprintf("  SCORE: %d  ", score)
}

// Outcome returns the banner for a terminal status, or "" while playing.
func (r *Renderer) Outcome(status game.Status) string {
	switch status {
	case game.StatusWon:
		return r.paint(r.win, WinMessage)
	case game.StatusLost:
		return r.paint(r.lose, LoseMessage)
	default:
		return ""
	}
}

// Notice styles a hint such as an invalid-move message.
func (r *Renderer) Notice(msg string) string {
	return r.paint(r.notice, msg)
}

// center pads text to width, putting the odd space on the right.
func center(text string, width int) string {
	pad := width - len(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
