package main

import (
	"github.com/energye/systray"
)

// trayEvent identifies a host-dispatched tray interaction.
type trayEvent string

const (
	trayEventShow   trayEvent = "show"
	trayEventHide   trayEvent = "hide"
	trayEventQuit   trayEvent = "quit"
	trayEventToggle trayEvent = "toggle"
)

// hostWindow is the slice of the windowing subsystem the tray needs.
// Visibility is ambient host state: always queried live, never cached, so
// the toggle stays correct when the window is hidden or shown by means
// outside the tray (shortcuts, the close button, the window manager).
type hostWindow interface {
	Visible() bool
	Show()
	Unminimize()
	Focus()
	Hide()
}

// trayController routes tray events to window operations. The window is
// looked up per event; a nil result means there is nothing to act on and
// the event is swallowed.
type trayController struct {
	window   func() hostWindow
	exit     func(code int)
	handlers map[trayEvent]func(hostWindow)
}

func newTrayController(window func() hostWindow, exit func(int)) *trayController {
	c := &trayController{window: window, exit: exit}
	c.handlers = map[trayEvent]func(hostWindow){
		trayEventShow: presentWindow,
		trayEventHide: func(w hostWindow) { w.Hide() },
		trayEventToggle: func(w hostWindow) {
			if w.Visible() {
				w.Hide()
			} else {
				presentWindow(w)
			}
		},
	}
	return c
}

// presentWindow forces the window into the foreground: visible,
// un-minimized and focused.
func presentWindow(w hostWindow) {
	w.Show()
	w.Unminimize()
	w.Focus()
}

// dispatch runs the handler for a tray event. Quit terminates the process
// unconditionally; quit is always user-initiated, so no in-flight dialog or
// request is awaited.
func (c *trayController) dispatch(ev trayEvent) {
	if ev == trayEventQuit {
		c.exit(0)
		return
	}

	handler, ok := c.handlers[ev]
	if !ok {
		return
	}
	w := c.window()
	if w == nil {
		return
	}
	handler(w)
}

// setupTray configures the systray icon and menu. Called from systray's
// onReady callback. Window-touching events are marshalled onto the GTK main
// loop through runOnMain; quit bypasses it so it works even while the loop
// is busy.
func setupTray(ctrl *trayController, icon []byte, runOnMain func(func())) {
	systray.SetIcon(icon)
	systray.SetTooltip(appDisplayName)

	mShow := systray.AddMenuItem("表示", "ウィンドウを表示")
	mHide := systray.AddMenuItem("非表示", "ウィンドウを隠す")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("終了", "アプリケーションを終了")

	mShow.Click(func() {
		runOnMain(func() { ctrl.dispatch(trayEventShow) })
	})
	mHide.Click(func() {
		runOnMain(func() { ctrl.dispatch(trayEventHide) })
	})
	mQuit.Click(func() {
		ctrl.dispatch(trayEventQuit)
	})

	// Left click on the icon toggles the window.
	systray.SetOnClick(func(_ systray.IMenu) {
		runOnMain(func() { ctrl.dispatch(trayEventToggle) })
	})
}
