package tui

import (
	"testing"

	"github.com/weftui/weft/pkg/term"
	"github.com/weftui/weft/pkg/term/termtest"
	"github.com/weftui/weft/pkg/theme"
	"github.com/weftui/weft/pkg/ui"
)

func setupApp() (*App, termtest.DriverCtrl) {
	d, ctrl := termtest.NewFakeDriver()
	return NewApp(d), ctrl
}

func TestApp_ActiveScreenInvariant(t *testing.T) {
	app, _ := setupApp()
	if app.Screen() == nil {
		t.Fatalf("new app has no active screen")
	}

	id := app.AddScreen()
	if id != 1 {
		t.Errorf("AddScreen returned id %d, want 1", id)
	}
	if err := app.SetScreen(id); err != nil {
		t.Errorf("SetScreen(%d) -> %v, want nil", id, err)
	}

	// An out-of-range id is an error and never mutates the active screen.
	before := app.Screen()
	for _, bad := range []int{-1, 2, 100} {
		if err := app.SetScreen(bad); err == nil {
			t.Errorf("SetScreen(%d) -> nil error, want non-nil", bad)
		}
	}
	if app.Screen() != before {
		t.Errorf("failed SetScreen changed the active screen")
	}

	id = app.AddActiveScreen()
	if id != 2 || app.Screen() != app.screens[2] {
		t.Errorf("AddActiveScreen did not activate the new screen")
	}
}

func TestApp_EventPriority_ActiveMenubarSuppressesGlobal(t *testing.T) {
	app, _ := setupApp()
	app.Menubar().AddMenu("File", NewMenuTree().Leaf("Quit", nil))

	fired := 0
	app.AddGlobalCallback(term.K('x'), func(*App) { fired++ })
	app.AddGlobalCallback(term.K(ui.Esc), func(*App) { fired++ })
	app.SelectMenubar()

	// An event the menubar ignores still never falls through.
	app.dispatch(term.K('x'))
	// An event the menubar consumes (dismissal) never reaches the table.
	app.dispatch(term.K(ui.Esc))
	if fired != 0 {
		t.Errorf("global callbacks fired %d times with the menubar active, want 0", fired)
	}
	if app.Menubar().Active() {
		t.Errorf("menubar still active after Esc")
	}
}

func TestApp_EventPriority_GlobalFiresWhenScreenIgnores(t *testing.T) {
	app, _ := setupApp()
	app.AddLayer(NewTextView("hi")) // ignores all events

	fired := 0
	app.AddGlobalCallback(term.K('x'), func(*App) { fired++ })
	app.dispatch(term.K('x'))
	if fired != 1 {
		t.Errorf("global callback fired %d times, want 1", fired)
	}

	// A consumed event never reaches the global table.
	app.AddGlobalCallback(term.K('c'), func(*App) { fired++ })
	app.AddLayer(&recordingView{}) // consumes 'c'
	app.dispatch(term.K('c'))
	if fired != 1 {
		t.Errorf("global callback fired %d times, want still 1", fired)
	}
}

func TestApp_DuplicateBinding(t *testing.T) {
	app, _ := setupApp()
	var got string
	app.AddGlobalCallback(term.K('x'), func(*App) { got = "first" })
	app.AddGlobalCallback(term.K('x'), func(*App) { got = "second" })
	app.dispatch(term.K('x'))
	if got != "second" {
		t.Errorf("got %q, want the last registered callback", got)
	}
}

func TestApp_TypedLookup(t *testing.T) {
	app, ctrl := setupApp()
	text := NewTextView("before")
	app.AddLayer(Named("status", text))

	// A name bound to a *TextView is not found as another type.
	if _, ok := FindID[*StackView](app, "status"); ok {
		t.Errorf("lookup with the wrong type succeeded")
	}
	if _, ok := FindID[*TextView](app, "missing"); ok {
		t.Errorf("lookup of a missing name succeeded")
	}

	found, ok := FindID[*TextView](app, "status")
	if !ok || found != text {
		t.Fatalf("lookup = (%v, %v), want the named view", found, ok)
	}

	// Mutation through the looked-up reference is visible on the next draw.
	found.SetText("after")
	if err := app.layoutAndDraw(); err != nil {
		t.Fatal(err)
	}
	if got := bufferRow(ctrl.LastBuffer(), 0); got != "after" {
		t.Errorf("top row = %q, want %q", got, "after")
	}
}

func TestApp_AutohideRowReservation(t *testing.T) {
	app, ctrl := setupApp()
	app.AddLayer(NewTextView("hello"))

	// Autohide on, menubar inactive: content starts on the top row.
	if err := app.layoutAndDraw(); err != nil {
		t.Fatal(err)
	}
	if got := bufferRow(ctrl.LastBuffer(), 0); got != "hello" {
		t.Errorf("top row = %q, want %q", got, "hello")
	}

	// Autohide off: the bar reserves the top row and content shifts down.
	app.SetAutohideMenu(false)
	if err := app.layoutAndDraw(); err != nil {
		t.Fatal(err)
	}
	buf := ctrl.LastBuffer()
	if got := bufferRow(buf, 1); got != "hello" {
		t.Errorf("second row = %q, want %q", got, "hello")
	}
	if got := bufferRow(buf, 0); got == "hello" {
		t.Errorf("content drawn into the reserved menubar row")
	}

	// Toggling back takes effect on the next pass.
	app.SetAutohideMenu(true)
	if err := app.layoutAndDraw(); err != nil {
		t.Fatal(err)
	}
	if got := bufferRow(ctrl.LastBuffer(), 0); got != "hello" {
		t.Errorf("top row = %q after re-enabling autohide, want %q", got, "hello")
	}
}

func TestApp_ResizeClearsAndRelayouts(t *testing.T) {
	app, ctrl := setupApp()
	app.AddLayer(NewTextView("hi"))
	app.AddGlobalCallback(term.ResizeEvent{}, func(*App) { ctrl.SetSize(30, 10) })
	app.AddGlobalCallback(term.K('q'), func(a *App) { a.Quit() })

	ctrl.Inject(term.ResizeEvent{}, term.K('q'))
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if got := ctrl.ScreenCleared(); got != 1 {
		t.Errorf("screen cleared %d times, want 1", got)
	}
	// The draw after the resize used the new size.
	buf := ctrl.LastBuffer()
	if buf.Width != 30 || buf.Height != 10 {
		t.Errorf("last buffer is %dx%d, want 30x10", buf.Width, buf.Height)
	}
}

func TestApp_QuitSemantics(t *testing.T) {
	app, ctrl := setupApp()
	app.AddGlobalCallback(term.K('q'), func(a *App) { a.Quit() })
	after := 0
	app.AddGlobalCallback(term.K('z'), func(*App) { after++ })

	ctrl.Inject(term.K('q'), term.K('z'))
	if err := app.Run(); err != nil {
		t.Fatal(err)
	}
	// No event is read after the one whose callback quit.
	if after != 0 {
		t.Errorf("an event was dispatched after Quit")
	}
	if got := ctrl.RestoreCalls(); got != 1 {
		t.Errorf("restore ran %d times, want exactly 1", got)
	}
}

func TestApp_RestoreRunsOnPanic(t *testing.T) {
	app, ctrl := setupApp()
	app.AddGlobalCallback(term.K('p'), func(*App) { panic("callback exploded") })
	ctrl.Inject(term.K('p'))

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("panic did not propagate out of Run")
			}
		}()
		app.Run()
	}()
	if got := ctrl.RestoreCalls(); got != 1 {
		t.Errorf("restore ran %d times, want exactly 1", got)
	}
}

func TestApp_RunStopsWhenDriverStops(t *testing.T) {
	app, ctrl := setupApp()
	ctrl.StopRead()
	if err := app.Run(); err != nil {
		t.Errorf("Run -> %v, want nil on a stopped driver", err)
	}
}

func TestApp_LoadTheme(t *testing.T) {
	app, _ := setupApp()
	if err := app.LoadTheme("view:\n  bg: red"); err != nil {
		t.Fatalf("LoadTheme -> %v, want nil", err)
	}
	want := app.Theme()

	// A malformed theme is an error and leaves the current theme unchanged.
	if err := app.LoadTheme("view: ["); err == nil {
		t.Errorf("LoadTheme on bad input -> nil error, want non-nil")
	}
	if app.Theme() != want {
		t.Errorf("failed LoadTheme changed the current theme")
	}

	if err := app.LoadThemeFile("no-such-theme.yaml"); err == nil {
		t.Errorf("LoadThemeFile on a missing file -> nil error, want non-nil")
	}
	if app.Theme() != want {
		t.Errorf("failed LoadThemeFile changed the current theme")
	}
}

func TestApp_SetRefreshRate(t *testing.T) {
	app, ctrl := setupApp()
	app.SetRefreshRate(2000)
	if got := ctrl.RefreshRate(); got != term.MaxRefreshRate {
		t.Errorf("refresh rate = %d, want clamped to %d", got, term.MaxRefreshRate)
	}
}

func TestApp_DefaultThemeApplied(t *testing.T) {
	app, ctrl := setupApp()
	if err := app.layoutAndDraw(); err != nil {
		t.Fatal(err)
	}
	want := theme.Default().View
	if got := ctrl.LastBuffer().Lines[0][0].Style; got != want {
		t.Errorf("background style = %v, want %v", got, want)
	}
}
