package tui

import (
	"github.com/weftui/weft/pkg/term"
	"github.com/weftui/weft/pkg/ui"
)

// Menubar is the focus-stealing overlay drawn on the top row. It is
// inactive most of the time; TakeFocus makes it active, which captures all
// input until it is dismissed with Esc or by activating a leaf.
//
// With autohide on (the default) the bar only occupies the top row while
// active; with autohide off it always reserves the row, drawn passively
// when inactive.
type Menubar struct {
	Empty
	root     *MenuTree
	autohide bool
	active   bool
	// Path of open trees while active, starting at root, and the selected
	// index at each level.
	path []*MenuTree
	sel  []int
}

// NewMenubar returns an empty menubar with autohide on.
func NewMenubar() *Menubar {
	return &Menubar{root: NewMenuTree(), autohide: true}
}

// AddMenu appends a named tree to the bar.
func (m *Menubar) AddMenu(title string, tree *MenuTree) *Menubar {
	m.root.Subtree(title, tree)
	return m
}

// SetAutohide sets whether the bar is hidden while inactive. The change
// takes effect on the next layout pass.
func (m *Menubar) SetAutohide(autohide bool) { m.autohide = autohide }

// Autohide returns whether the bar is hidden while inactive.
func (m *Menubar) Autohide() bool { return m.autohide }

// Active returns whether the bar has captured focus.
func (m *Menubar) Active() bool { return m.active }

// Visible returns whether the bar is drawn at all.
func (m *Menubar) Visible() bool { return m.active || !m.autohide }

// ReceiveEvents returns whether the bar is offered events before the
// active screen.
func (m *Menubar) ReceiveEvents() bool { return m.active }

// TakeFocus makes the bar active, capturing all input until dismissal. It
// is a no-op on an empty bar.
func (m *Menubar) TakeFocus() {
	if m.root.IsEmpty() {
		return
	}
	m.active = true
	m.path = []*MenuTree{m.root}
	m.sel = []int{m.root.selectableFrom(0, 1)}
}

func (m *Menubar) dismiss() {
	m.active = false
	m.path = nil
	m.sel = nil
}

// Handle navigates the open menu. Left and Right move the selection, Enter
// descends into a subtree or fires a leaf callback (dismissing the bar),
// and Esc ascends one level or dismisses the bar. An inactive bar ignores
// all events.
func (m *Menubar) Handle(ev term.Event) Result {
	if !m.active {
		return Ignored
	}
	k, ok := ev.(term.KeyEvent)
	if !ok {
		return Ignored
	}
	level := len(m.path) - 1
	tree := m.path[level]
	switch ui.Key(k) {
	case ui.K(ui.Left):
		m.sel[level] = tree.selectableFrom(m.sel[level]-1, -1)
		return Consumed()
	case ui.K(ui.Right):
		m.sel[level] = tree.selectableFrom(m.sel[level]+1, 1)
		return Consumed()
	case ui.K(ui.Enter):
		if m.sel[level] < 0 {
			return Consumed()
		}
		item := tree.items[m.sel[level]]
		switch item.kind {
		case menuLeaf:
			m.dismiss()
			return ConsumedWith(item.callback)
		case menuSubtree:
			if !item.subtree.IsEmpty() {
				m.path = append(m.path, item.subtree)
				m.sel = append(m.sel, item.subtree.selectableFrom(0, 1))
			}
		}
		return Consumed()
	case ui.K(ui.Esc):
		if level > 0 {
			m.path = m.path[:level]
			m.sel = m.sel[:level]
		} else {
			m.dismiss()
		}
		return Consumed()
	}
	return Ignored
}

// Draw paints the current menu level into the top row: the root titles
// when inactive, the open tree with its selection highlighted when active.
func (m *Menubar) Draw(p *Painter) {
	th := p.Theme()
	p.Fill(th.Primary)
	tree, selected := m.root, -1
	if m.active {
		level := len(m.path) - 1
		tree, selected = m.path[level], m.sel[level]
	}
	x := 0
	for i, item := range tree.items {
		if item.kind == menuDelimiter {
			x = p.WriteText(x, 0, " | ", th.Secondary)
			continue
		}
		st := th.Primary
		if i == selected {
			st = p.HighlightStyle()
		}
		x = p.WriteText(x, 0, " "+item.title+" ", st)
	}
}
