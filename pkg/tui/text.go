package tui

import "strings"

// TextView displays static lines of text. It never consumes events.
type TextView struct {
	Empty
	lines []string
}

// NewTextView returns a TextView showing the given text, split on newlines.
func NewTextView(text string) *TextView {
	v := &TextView{}
	v.SetText(text)
	return v
}

// SetText replaces the displayed text. The change is visible on the next
// draw.
func (v *TextView) SetText(text string) {
	v.lines = strings.Split(text, "\n")
}

// Text returns the displayed text.
func (v *TextView) Text() string {
	return strings.Join(v.lines, "\n")
}

func (v *TextView) Draw(p *Painter) {
	p.Fill(p.Theme().View)
	for i, line := range v.lines {
		p.WriteText(0, i, line, p.Theme().Primary)
	}
}
