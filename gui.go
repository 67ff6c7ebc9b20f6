package main

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// createMainWindow builds the shell window. The web frontend talks to the
// engine directly once it has fetched the port and token over the bridge;
// the window itself only hosts a status page. Closing the window hides it —
// quitting is the tray's job.
func createMainWindow(app *gtk.Application, state *ConnectionState) *gtk.ApplicationWindow {
	window := gtk.NewApplicationWindow(app)
	window.SetTitle(appDisplayName)
	window.SetDefaultSize(960, 640)

	box := gtk.NewBox(gtk.OrientationVertical, 10)
	box.SetMarginTop(20)
	box.SetMarginBottom(20)
	box.SetMarginStart(20)
	box.SetMarginEnd(20)
	window.SetChild(box)

	title := gtk.NewLabel(appDisplayName)
	box.Append(title)

	statusLabel := gtk.NewLabel("エンジン起動中...")
	box.Append(statusLabel)

	// Poll the store on the main loop until the engine has reported.
	glib.TimeoutAdd(500, func() bool {
		port, ok := state.Port()
		if !ok {
			return true
		}
		statusLabel.SetText(fmt.Sprintf("エンジン稼働中 (port %d)", port))
		return false
	})

	window.ConnectCloseRequest(func() bool {
		window.SetVisible(false)
		// Return true to stop other handlers (like destruction)
		return true
	})

	return window
}

// gtkWindow adapts the GTK window to hostWindow. All methods must run on
// the GTK main loop; tray events arrive here through runOnMain.
type gtkWindow struct {
	win *gtk.ApplicationWindow
}

func (g *gtkWindow) Visible() bool { return g.win.Visible() }
func (g *gtkWindow) Show()         { g.win.SetVisible(true) }
func (g *gtkWindow) Unminimize()   { g.win.Unminimize() }
func (g *gtkWindow) Focus()        { g.win.Present() }
func (g *gtkWindow) Hide()         { g.win.SetVisible(false) }

// runOnMain schedules f on the GTK main loop.
func runOnMain(f func()) {
	glib.IdleAdd(func() bool {
		f()
		return false
	})
}
