package main

import (
	"net/http"
	"os"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/energye/systray"
	"github.com/skratchdot/open-golang/open"
)

const AppID = "jp.kotoba.transcriber-shell"
const appDisplayName = "KotobaTranscriber"

func main() {
	cfg, err := LoadConfig()
	logger := NewLogger(cfg)
	if err != nil {
		logger.Warnf("could not load config: %v", err)
	}

	state := NewConnectionState()
	dialogs := &DialogService{}

	bridge := newBridge(state, dialogs, logger, open.Run)
	go func() {
		logger.Infof("bridge listening on %s", cfg.BridgeAddr)
		if err := http.ListenAndServe(cfg.BridgeAddr, bridge.handler()); err != nil {
			logger.Errorf("bridge server: %v", err)
			os.Exit(1)
		}
	}()

	if cfg.EngineCommand != "" {
		monitor := newEngineMonitor(cfg, state, logger)
		go func() {
			if err := monitor.Run(); err != nil {
				logger.Errorf("engine monitor: %v", err)
			}
		}()
	} else {
		logger.Infof("no engine command configured; waiting for an external engine")
	}

	// The tray is essential chrome: failing to build its icon aborts start.
	iconPNG, err := trayIconPNG()
	if err != nil {
		logger.Errorf("tray icon: %v", err)
		os.Exit(1)
	}

	app := gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	app.Hold()

	var windowMu sync.RWMutex
	var mainWindow *gtk.ApplicationWindow

	ctrl := newTrayController(func() hostWindow {
		windowMu.RLock()
		defer windowMu.RUnlock()
		if mainWindow == nil {
			return nil
		}
		return &gtkWindow{win: mainWindow}
	}, os.Exit)

	var systrayStarted bool
	app.ConnectActivate(func() {
		if mainWindow == nil {
			w := createMainWindow(app, state)
			windowMu.Lock()
			mainWindow = w
			windowMu.Unlock()
			dialogs.Attach(w)
		}

		if !systrayStarted {
			systrayStarted = true
			go systray.Run(func() {
				setupTray(ctrl, iconPNG, runOnMain)
			}, func() {
				os.Exit(0)
			})
		}

		if !cfg.StartHidden {
			mainWindow.SetVisible(true)
			mainWindow.Present()
		}
	})

	if code := app.Run(os.Args); code > 0 {
		os.Exit(code)
	}
}
