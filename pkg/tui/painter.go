package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/term"
	"github.com/weftui/weft/pkg/theme"
	"github.com/weftui/weft/pkg/ui"
)

// Painter is a clipped window onto a shared screen buffer. It carries an
// offset, a size, a focused flag and a theme snapshot; sub-painters derive
// smaller windows without copying the underlying grid.
type Painter struct {
	buf *term.Buffer
	// Clip rectangle, in buffer coordinates.
	x, y          int
	width, height int
	focused       bool
	theme         theme.Theme
}

// NewPainter returns a painter covering the whole buffer, marked focused.
func NewPainter(buf *term.Buffer, th theme.Theme) *Painter {
	return &Painter{
		buf: buf, width: buf.Width, height: buf.Height,
		focused: true, theme: th,
	}
}

// Size returns the size of the painter's window.
func (p *Painter) Size() (width, height int) { return p.width, p.height }

// Focused returns whether the view being painted has input focus. Views use
// it to choose focused-vs-unfocused styling.
func (p *Painter) Focused() bool { return p.focused }

// Theme returns the theme snapshot for this draw pass.
func (p *Painter) Theme() theme.Theme { return p.theme }

// HighlightStyle returns the style for the selected element, resolving the
// focused flag.
func (p *Painter) HighlightStyle() ui.Style {
	if p.focused {
		return p.theme.Highlight
	}
	return p.theme.HighlightInactive
}

// Sub derives a painter clipped to the rectangle at (x, y) of size
// (width, height) within p's window, with the given focused flag. The
// rectangle is intersected with p's window, so a sub-painter can never
// paint outside its parent.
func (p *Painter) Sub(x, y, width, height int, focused bool) *Painter {
	if x < 0 {
		width += x
		x = 0
	}
	if y < 0 {
		height += y
		y = 0
	}
	if x > p.width {
		x = p.width
	}
	if y > p.height {
		y = p.height
	}
	if width > p.width-x {
		width = p.width - x
	}
	if height > p.height-y {
		height = p.height - y
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Painter{
		buf: p.buf, x: p.x + x, y: p.y + y,
		width: width, height: height,
		focused: focused, theme: p.theme,
	}
}

// Fill paints every cell of the window with a space in the given style.
func (p *Painter) Fill(st ui.Style) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.buf.SetCell(p.x+x, p.y+y, term.Cell{Text: " ", Style: st})
		}
	}
}

// SetCell writes a single cell at (x, y) in window coordinates. Writes
// outside the window are dropped.
func (p *Painter) SetCell(x, y int, cell term.Cell) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.buf.SetCell(p.x+x, p.y+y, cell)
}

// WriteText writes a string at (x, y) in window coordinates, clipped to the
// window. Wide runes that would cross the right edge are dropped whole. It
// returns the x position after the last rune.
func (p *Painter) WriteText(x, y int, text string, st ui.Style) int {
	if y < 0 || y >= p.height {
		return x + runewidth.StringWidth(text)
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= p.width {
			p.SetCell(x, y, term.Cell{Text: string(r), Style: st})
			for i := 1; i < w; i++ {
				p.SetCell(x+i, y, term.Cell{Style: st})
			}
		}
		x += w
	}
	return x
}
