package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"snake-term/config"
	"snake-term/game/types"
)

const (
	glyphEmpty = "."
	glyphSnake = "0"
	glyphFood  = "*"

	clearScreen = "\x1b[2J\x1b[H"

	// Widest status line expected in practice: "Score: 9999  Time: 59m59s".
	statusWidth = 25

	// Raw mode turns off output post-processing, so lines need an explicit CR.
	lineBreak = "\r\n"
)

// Theme styles the frame glyphs. The zero Theme renders plain text.
type Theme struct {
	enabled bool
	Empty   lipgloss.Style
	Snake   lipgloss.Style
	Head    lipgloss.Style
	Food    lipgloss.Style
	Text    lipgloss.Style
}

// PlainTheme renders without any escape sequences.
func PlainTheme() Theme {
	return Theme{}
}

// ColorTheme builds styles for the color profile detected on r.
func ColorTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		enabled: true,
		Empty:   r.NewStyle().Foreground(ColorMuted),
		Snake:   r.NewStyle().Foreground(ColorSnake),
		Head:    r.NewStyle().Foreground(ColorHead).Bold(true),
		Food:    r.NewStyle().Foreground(ColorFood).Bold(true),
		Text:    r.NewStyle().Foreground(ColorText),
	}
}

func (t Theme) paint(style lipgloss.Style, s string) string {
	if !t.enabled {
		return s
	}
	return style.Render(s)
}

// Frame renders a snapshot as text: a status line with score and play
// time, the grid and the key legend. It does not touch any state.
func Frame(s types.Snapshot, theme Theme, legend string) string {
	cells := make([][]string, s.GridSize)
	for y := range cells {
		cells[y] = make([]string, s.GridSize)
		for x := range cells[y] {
			cells[y][x] = theme.paint(theme.Empty, glyphEmpty)
		}
	}
	cells[s.Food.Y][s.Food.X] = theme.paint(theme.Food, glyphFood)
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		style := theme.Snake
		if i == 0 {
			style = theme.Head
		}
		cells[p.Y][p.X] = theme.paint(style, glyphSnake)
	}

	var b strings.Builder
	b.WriteString(theme.paint(theme.Text, statusLine(s)))
	b.WriteString(lineBreak)
	for _, row := range cells {
		for _, c := range row {
			b.WriteString(c)
		}
		b.WriteString(lineBreak)
	}
	b.WriteString(theme.paint(theme.Text, strings.ReplaceAll(legend, "\n", lineBreak)))
	return b.String()
}

func statusLine(s types.Snapshot) string {
	return fmt.Sprintf("Score: %d  Time: %s", s.Score, s.Elapsed.Truncate(time.Second))
}

// FrameSize is the number of terminal cells a frame needs.
func FrameSize(gridSize int, legend string) (width, height int) {
	lines := strings.Split(strings.TrimRight(legend, "\n"), "\n")
	width = max(gridSize, statusWidth)
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	return width, gridSize + 1 + len(lines)
}

// Renderer writes full frames to a terminal. It implements the engine
// Presenter.
type Renderer struct {
	w      io.Writer
	theme  Theme
	legend string
	buf    bytes.Buffer
}

func NewRenderer(w io.Writer, layout config.Layout, color bool) *Renderer {
	theme := PlainTheme()
	if color {
		theme = ColorTheme(lipgloss.NewRenderer(w))
	}
	return &Renderer{
		w:      w,
		theme:  theme,
		legend: Legend(layout),
	}
}

// Render clears the screen and draws s in a single write.
func (r *Renderer) Render(s types.Snapshot) error {
	r.buf.Reset()
	r.buf.WriteString(clearScreen)
	r.buf.WriteString(Frame(s, r.theme, r.legend))
	if _, err := r.w.Write(r.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Size is the terminal area needed for a grid of gridSize.
func (r *Renderer) Size(gridSize int) (width, height int) {
	return FrameSize(gridSize, r.legend)
}
