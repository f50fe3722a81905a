package term

import "github.com/weftui/weft/pkg/ui"

// Event represents an event that can be read from the terminal.
//
// Concrete event types are all comparable, so that they can be used as map
// keys in binding tables.
type Event interface {
	isEvent()
}

// KeyEvent represents a key press.
type KeyEvent ui.Key

// K constructs a new KeyEvent.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}

func (ev KeyEvent) String() string {
	return ui.Key(ev).String()
}

// MouseEvent represents a mouse event (either pressing or releasing).
type MouseEvent struct {
	// Coordinates of the mouse cursor, 0-based from the top left corner of
	// the screen.
	X, Y int
	// Whether the button was pressed (as opposed to released).
	Down bool
	// The number of the button, or -1 for a release event where the button
	// cannot be determined.
	Button int
	Mod    ui.Mod
}

// ResizeEvent is returned after the terminal has changed its size.
type ResizeEvent struct{}

// TickEvent is a synthetic event returned when a refresh rate has been
// configured and the frame interval has elapsed without any input.
type TickEvent struct{}

// PasteSetting indicates the start or finish of pasted text.
type PasteSetting bool

// CursorPosition is a report of the cursor position from the terminal, in
// response to a cursor position request.
type CursorPosition struct {
	Row, Col int
}

func (KeyEvent) isEvent()       {}
func (MouseEvent) isEvent()     {}
func (ResizeEvent) isEvent()    {}
func (TickEvent) isEvent()      {}
func (PasteSetting) isEvent()   {}
func (CursorPosition) isEvent() {}
