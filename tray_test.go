package main

import (
	"reflect"
	"testing"
)

// fakeWindow records the operations the controller invokes and lets tests
// flip visibility out from under it, like a window manager would.
type fakeWindow struct {
	visible bool
	calls   []string
}

func (w *fakeWindow) Visible() bool { return w.visible }

func (w *fakeWindow) Show() {
	w.visible = true
	w.calls = append(w.calls, "show")
}

func (w *fakeWindow) Unminimize() { w.calls = append(w.calls, "unminimize") }
func (w *fakeWindow) Focus()      { w.calls = append(w.calls, "focus") }

func (w *fakeWindow) Hide() {
	w.visible = false
	w.calls = append(w.calls, "hide")
}

func newTestController(win *fakeWindow) (*trayController, *int) {
	exitCode := -1
	ctrl := newTrayController(func() hostWindow {
		if win == nil {
			return nil
		}
		return win
	}, func(code int) { exitCode = code })
	return ctrl, &exitCode
}

func TestTrayDispatch(t *testing.T) {
	tests := []struct {
		name        string
		visible     bool
		event       trayEvent
		wantCalls   []string
		wantVisible bool
	}{
		{"show presents the window", false, trayEventShow, []string{"show", "unminimize", "focus"}, true},
		{"show when already visible still presents", true, trayEventShow, []string{"show", "unminimize", "focus"}, true},
		{"hide hides", true, trayEventHide, []string{"hide"}, false},
		{"toggle presents a hidden window", false, trayEventToggle, []string{"show", "unminimize", "focus"}, true},
		{"toggle hides a visible window", true, trayEventToggle, []string{"hide"}, false},
		{"unknown event is ignored", true, trayEvent("bogus"), nil, true},
	}

	for _, tt := range tests {
		win := &fakeWindow{visible: tt.visible}
		ctrl, exitCode := newTestController(win)

		ctrl.dispatch(tt.event)

		if !reflect.DeepEqual(win.calls, tt.wantCalls) {
			t.Fatalf("%s: calls = %v, want %v", tt.name, win.calls, tt.wantCalls)
		}
		if win.visible != tt.wantVisible {
			t.Fatalf("%s: visible = %t, want %t", tt.name, win.visible, tt.wantVisible)
		}
		if *exitCode != -1 {
			t.Fatalf("%s: unexpected exit with code %d", tt.name, *exitCode)
		}
	}
}

// The toggle must consult the window at event time. Flipping visibility
// behind the controller's back between events changes what the next toggle
// does; a cached flag would get this wrong.
func TestTrayToggleQueriesLiveVisibility(t *testing.T) {
	win := &fakeWindow{visible: false}
	ctrl, _ := newTestController(win)

	ctrl.dispatch(trayEventToggle)
	if !win.visible {
		t.Fatalf("first toggle should have presented the window")
	}

	// The user hides the window with an OS shortcut.
	win.visible = false
	win.calls = nil

	ctrl.dispatch(trayEventToggle)
	if !reflect.DeepEqual(win.calls, []string{"show", "unminimize", "focus"}) {
		t.Fatalf("toggle after external hide: calls = %v, want present sequence", win.calls)
	}

	// The user shows it by other means.
	win.calls = nil

	ctrl.dispatch(trayEventToggle)
	if !reflect.DeepEqual(win.calls, []string{"hide"}) {
		t.Fatalf("toggle after external show: calls = %v, want [hide]", win.calls)
	}
}

func TestTrayDispatchWithoutWindow(t *testing.T) {
	ctrl, exitCode := newTestController(nil)

	// Nothing to act on; all window events are swallowed.
	ctrl.dispatch(trayEventShow)
	ctrl.dispatch(trayEventHide)
	ctrl.dispatch(trayEventToggle)

	if *exitCode != -1 {
		t.Fatalf("window events must not exit, got code %d", *exitCode)
	}
}

func TestTrayQuitExitsImmediately(t *testing.T) {
	win := &fakeWindow{visible: true}
	ctrl, exitCode := newTestController(win)

	ctrl.dispatch(trayEventQuit)

	if *exitCode != 0 {
		t.Fatalf("quit exit code = %d, want 0", *exitCode)
	}
	if len(win.calls) != 0 {
		t.Fatalf("quit must not touch the window, got calls %v", win.calls)
	}
}

func TestTrayQuitWithoutWindow(t *testing.T) {
	ctrl, exitCode := newTestController(nil)

	ctrl.dispatch(trayEventQuit)

	if *exitCode != 0 {
		t.Fatalf("quit exit code = %d, want 0", *exitCode)
	}
}
