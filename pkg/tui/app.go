package tui

import (
	"errors"
	"fmt"

	"github.com/weftui/weft/pkg/logutil"
	"github.com/weftui/weft/pkg/term"
	"github.com/weftui/weft/pkg/theme"
)

var logger = logutil.GetLogger("[tui] ")

// App is the application root: it owns the theme, the screens, the global
// key bindings and the menubar, and drives the layout/draw/read/dispatch
// loop. All methods must be called from the goroutine running the loop;
// event callbacks receive the App with exclusive access.
type App struct {
	driver  term.Driver
	theme   theme.Theme
	screens []*StackView
	active  int
	global  map[term.Event]Callback
	menubar *Menubar
	running bool
}

// NewApp returns an App with one empty screen, the default theme and an
// empty menubar. A nil driver selects the real terminal driver on the
// process's stdin and stderr.
func NewApp(driver term.Driver) *App {
	if driver == nil {
		driver = term.StdDriver()
	}
	return &App{
		driver:  driver,
		theme:   theme.Default(),
		screens: []*StackView{NewStackView()},
		global:  make(map[term.Event]Callback),
		menubar: NewMenubar(),
	}
}

// Screen returns the currently active screen.
func (app *App) Screen() *StackView {
	return app.screens[app.active]
}

// AddScreen creates a new empty screen and returns its id. Screens are
// never removed; ids stay valid for the whole run.
func (app *App) AddScreen() int {
	app.screens = append(app.screens, NewStackView())
	return len(app.screens) - 1
}

// AddActiveScreen creates a new empty screen, makes it active and returns
// its id.
func (app *App) AddActiveScreen() int {
	id := app.AddScreen()
	app.active = id
	return id
}

// SetScreen switches the active screen. An out-of-range id is an error and
// leaves the active screen unchanged.
func (app *App) SetScreen(id int) error {
	if id < 0 || id >= len(app.screens) {
		return fmt.Errorf("set screen: no screen with id %d", id)
	}
	app.active = id
	return nil
}

// AddLayer pushes a layer onto the active screen.
func (app *App) AddLayer(v View) {
	app.Screen().AddLayer(v)
}

// PopLayer removes the top layer of the active screen. It is a no-op when
// the screen has no layers.
func (app *App) PopLayer() {
	app.Screen().PopLayer()
}

// AddGlobalCallback binds cb to ev in the global binding table. The global
// table is consulted only for events no view consumed. Rebinding an event
// replaces the previous callback.
func (app *App) AddGlobalCallback(ev term.Event, cb Callback) {
	app.global[ev] = cb
}

// Menubar returns the menubar, for building its menus.
func (app *App) Menubar() *Menubar {
	return app.menubar
}

// SelectMenubar gives the menubar focus, so that it captures all input
// until dismissed.
func (app *App) SelectMenubar() {
	app.menubar.TakeFocus()
}

// SetAutohideMenu sets whether the menubar is hidden while inactive.
func (app *App) SetAutohideMenu(autohide bool) {
	app.menubar.SetAutohide(autohide)
}

// Theme returns the current theme.
func (app *App) Theme() theme.Theme {
	return app.theme
}

// SetTheme replaces the theme wholesale. It takes effect on the next draw.
func (app *App) SetTheme(th theme.Theme) {
	app.theme = th
}

// LoadTheme replaces the theme from YAML text. On error the current theme
// is left unchanged.
func (app *App) LoadTheme(text string) error {
	th, err := theme.FromString(text)
	if err != nil {
		return err
	}
	app.theme = th
	return nil
}

// LoadThemeFile replaces the theme from a YAML file. On error the current
// theme is left unchanged.
func (app *App) LoadThemeFile(name string) error {
	th, err := theme.FromFile(name)
	if err != nil {
		return err
	}
	app.theme = th
	return nil
}

// SetRefreshRate sets the driver's refresh rate in frames per second.
// With a nonzero rate the loop redraws on synthetic ticks even without
// input; 0 restores pure blocking reads.
func (app *App) SetRefreshRate(fps int) {
	app.driver.SetRefreshRate(fps)
}

// FindView looks up a view in the active screen. Most callers want the
// typed wrappers Find or FindID instead.
func (app *App) FindView(sel Selector) View {
	return app.Screen().Find(sel)
}

// Find looks up a view in the active screen and checks it against the
// concrete type V. No match, or a match of a different type, returns the
// zero value and false.
func Find[V View](app *App, sel Selector) (V, bool) {
	v, ok := app.FindView(sel).(V)
	return v, ok
}

// FindID looks up the view registered under id, checked against the
// concrete type V.
func FindID[V View](app *App, id string) (V, bool) {
	return Find[V](app, ByID(id))
}

// Quit makes the event loop stop. It only flips a flag: the current
// callback and the event being dispatched complete normally, and the loop
// exits at the iteration boundary without reading another event.
func (app *App) Quit() {
	app.running = false
}

// Run drives the event loop until Quit: lay out and draw the active screen
// and the menubar, read one event, dispatch it, repeat. It sets up the
// driver on entry; the terminal is restored exactly once on return,
// including on panic.
func (app *App) Run() error {
	restore, err := app.driver.Setup()
	if err != nil {
		return err
	}
	defer restore()

	app.running = true
	for app.running {
		if err := app.layoutAndDraw(); err != nil {
			return err
		}
		ev, err := app.driver.ReadEvent()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				logger.Println("ignored input error:", err)
				continue
			}
			if errors.Is(err, term.ErrStopped) {
				return nil
			}
			return err
		}
		if _, ok := ev.(term.ResizeEvent); ok {
			// The terminal may hold stale content after a resize; force a
			// full repaint.
			app.driver.ClearScreen()
		}
		app.dispatch(ev)
	}
	return nil
}

// One layout and draw pass. The menubar occupies the top row when visible;
// the screen is offset below it exactly when the row is permanently
// reserved (autohide off).
func (app *App) layoutAndDraw() error {
	width, height := app.driver.Size()
	reserved := 0
	if !app.menubar.Autohide() {
		reserved = 1
	}

	screen := app.Screen()
	screen.Layout(width, height-reserved)
	app.menubar.Layout(width, 1)

	buf := term.NewBuffer(width, height)
	p := NewPainter(buf, app.theme)
	p.Fill(app.theme.View)
	screen.Draw(p.Sub(0, reserved, width, height-reserved, !app.menubar.Active()))
	if app.menubar.Visible() {
		// Drawn after the screen: with autohide on, an active menubar
		// overlays the screen's top row.
		app.menubar.Draw(p.Sub(0, 0, width, 1, app.menubar.Active()))
	}
	return app.driver.WriteBuffer(buf)
}

// dispatch routes one event. An active menubar is offered the event first
// and suppresses all fallthrough; otherwise the active screen is offered
// the event, and the global binding table is the last resort.
func (app *App) dispatch(ev term.Event) {
	var result Result
	if app.menubar.ReceiveEvents() {
		result = app.menubar.Handle(ev)
	} else {
		result = app.Screen().Handle(ev)
		if !result.Handled {
			if cb, ok := app.global[ev]; ok {
				result = ConsumedWith(cb)
			}
		}
	}
	if result.Callback != nil {
		result.Callback(app)
	}
}
