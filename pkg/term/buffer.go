package term

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/ui"
)

// Cell is an indivisible unit on the screen. It is not necessarily 1 column
// wide: a cell holding a wide rune is followed by one continuation cell with
// an empty Text for each extra column it occupies.
type Cell struct {
	Text  string
	Style ui.Style
}

// Buffer reflects the full terminal screen as a Width x Height grid of cells.
//
// The Unix terminal API provides only awkward ways of querying the terminal
// content, so we keep an internal reflection and do one-way synchronizations
// (Buffer -> terminal, and not the other way around). This requires us to
// exactly match the terminal's idea of the width of characters, so there
// could be bugs.
type Buffer struct {
	Width, Height int
	// Lines hold the content of the buffer, row-major. Each line has exactly
	// Width cells.
	Lines [][]Cell
}

// NewBuffer builds a new buffer of the given size, filled with spaces in the
// zero style.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{Width: width, Height: height, Lines: make([][]Cell, height)}
	for y := range b.Lines {
		b.Lines[y] = makeSpacing(width, ui.Style{})
	}
	return b
}

func makeSpacing(n int, st ui.Style) []Cell {
	row := make([]Cell, n)
	for i := range row {
		row[i] = Cell{Text: " ", Style: st}
	}
	return row
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(st ui.Style) {
	for y := range b.Lines {
		for x := range b.Lines[y] {
			b.Lines[y][x] = Cell{Text: " ", Style: st}
		}
	}
}

// SetCell writes a single cell at (x, y). Out-of-bounds writes are silently
// ignored.
func (b *Buffer) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Lines[y][x] = cell
}

// WriteText writes a string starting at (x, y) with the given style,
// advancing x by the display width of each rune. Wide runes occupy extra
// continuation cells. Text never wraps; anything that falls outside the
// buffer is dropped. It returns the x position after the last written rune.
func (b *Buffer) WriteText(x, y int, text string, st ui.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w <= b.Width {
			b.SetCell(x, y, Cell{Text: string(r), Style: st})
			for i := 1; i < w; i++ {
				b.SetCell(x+i, y, Cell{Style: st})
			}
		}
		x += w
	}
	return x
}

// Returns whether two cell rows are equal, and when they are not, the first
// index at which they differ.
func compareRows(r1, r2 []Cell) (bool, int) {
	for i, c := range r1 {
		if i >= len(r2) || c != r2[i] {
			return false, i
		}
	}
	if len(r1) < len(r2) {
		return false, len(r1)
	}
	return true, 0
}

// TTYString returns a text representation of the buffer. It uses box drawing
// characters to represent the border of the buffer, and embeds SGR sequences
// to represent the style of the text. Mainly useful in tests.
func (b *Buffer) TTYString() string {
	if b == nil {
		return "nil"
	}
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "Width = %d, Height = %d\n", b.Width, b.Height)
	sb.WriteString("┌" + strings.Repeat("─", b.Width) + "┐\n")
	for _, line := range b.Lines {
		sb.WriteRune('│')
		lastSGR := ""
		for _, cell := range line {
			if sgr := cell.Style.SGR(); sgr != lastSGR {
				if sgr == "" {
					sb.WriteString("\033[m")
				} else {
					sb.WriteString("\033[;" + sgr + "m")
				}
				lastSGR = sgr
			}
			sb.WriteString(cell.Text)
		}
		if lastSGR != "" {
			sb.WriteString("\033[m")
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", b.Width) + "┘\n")
	return sb.String()
}
