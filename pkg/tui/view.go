// Package tui implements the application core of the toolkit: the view
// contract, the clipped painter, the screen stack, the menubar and the App
// event loop that ties them together.
//
// The model is single-threaded and cooperative. The App owns the whole view
// tree; event callbacks run to completion with exclusive access to the App
// before the loop reads the next event.
package tui

import "github.com/weftui/weft/pkg/term"

// View is the contract every displayable node satisfies.
type View interface {
	// Layout recomputes internal geometry for the given size. It is called
	// before Draw whenever the size may have changed, and is idempotent for
	// a stable size.
	Layout(width, height int)

	// Draw paints the view into the painter. The painter is already clipped
	// to the view's area; drawing outside it has no effect.
	Draw(p *Painter)

	// Handle reacts to a terminal event. An unhandled result makes the
	// dispatcher try the next candidate.
	Handle(ev term.Event) Result

	// Find returns the first descendant (or self) matched by the selector,
	// or nil when nothing matches. Containers search children in event
	// priority order.
	Find(sel Selector) View
}

// Callback is a deferred mutation of the application, produced by event
// handling and invoked by the event loop with exclusive access to the App.
type Callback func(app *App)

// Result is the outcome of offering an event to a view.
type Result struct {
	// Whether the view consumed the event. An unconsumed event propagates
	// to the next candidate in dispatch order.
	Handled bool
	// An optional deferred callback, run by the event loop right after
	// dispatch.
	Callback Callback
}

// Ignored is the result of a view that did not consume the event.
var Ignored = Result{}

// Consumed returns a result that consumes the event with no side effect.
func Consumed() Result { return Result{Handled: true} }

// ConsumedWith returns a result that consumes the event and defers cb to
// the event loop.
func ConsumedWith(cb Callback) Result { return Result{Handled: true, Callback: cb} }

// Selector is a predicate used to locate a view in the tree. It receives
// each candidate view along with the name it was registered under, the
// empty string for unnamed views.
type Selector func(v View, name string) bool

// ByID returns a selector matching the view registered under id with
// Named.
func ByID(id string) Selector {
	return func(_ View, name string) bool { return name == id }
}

// Empty provides no-op implementations of all View methods. Embed it to
// implement only the methods a view cares about.
type Empty struct{}

func (Empty) Layout(width, height int) {}
func (Empty) Draw(*Painter)            {}
func (Empty) Handle(term.Event) Result { return Ignored }
func (Empty) Find(Selector) View       { return nil }
