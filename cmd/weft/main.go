// Command weft runs a small demonstration of the toolkit: a text layer, a
// menubar and a few global key bindings.
package main

import (
	"fmt"
	"os"

	"github.com/weftui/weft/pkg/term"
	"github.com/weftui/weft/pkg/tui"
	"github.com/weftui/weft/pkg/ui"
)

var messages = []string{
	"Hello from weft!\n\nPress Esc for the menu, q to quit.",
	"The File menu can change this text.",
	"Layers stack on top of each other; Backspace pops the top one.",
}

var nextMessage int

func cycleText(a *tui.App) {
	v, ok := tui.FindID[*tui.TextView](a, "status")
	if !ok {
		return
	}
	nextMessage = (nextMessage + 1) % len(messages)
	v.SetText(messages[nextMessage])
}

func main() {
	app := tui.NewApp(nil)

	app.AddLayer(tui.Named("status", tui.NewTextView(messages[0])))

	app.Menubar().
		AddMenu("File", tui.NewMenuTree().
			Leaf("Cycle text", cycleText).
			Delimiter().
			Leaf("Quit", func(a *tui.App) { a.Quit() })).
		AddMenu("Help", tui.NewMenuTree().
			Leaf("About", func(a *tui.App) {
				a.AddLayer(tui.NewTextView(
					"weft demo\n\nPress Backspace to close this layer."))
			}))
	app.SetAutohideMenu(false)

	app.AddGlobalCallback(term.K('q'), func(a *tui.App) { a.Quit() })
	app.AddGlobalCallback(term.K(ui.Esc), func(a *tui.App) { a.SelectMenubar() })
	app.AddGlobalCallback(term.K(ui.Backspace), func(a *tui.App) { a.PopLayer() })

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "weft:", err)
		os.Exit(2)
	}
}
