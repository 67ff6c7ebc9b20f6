package main

import (
	"context"
	"errors"
	"sync"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Extensions offered by the primary "Audio/Video Files" filter. Everything
// the engine can transcribe.
var audioVideoExtensions = []string{
	"mp3", "wav", "m4a", "flac", "ogg", "aac", "wma", "opus", "amr",
	"mp4", "avi", "mov", "mkv", "3gp", "webm",
}

var errNoWindow = errors.New("dialog subsystem unavailable: main window not created")

// DialogService brokers native file choosers for the bridge. Calls block
// the calling goroutine for the full user interaction; each bridge request
// runs on its own goroutine, so the GTK loop is never stalled. The GTK work
// itself is marshalled onto the main loop.
type DialogService struct {
	mu  sync.RWMutex
	win *gtk.ApplicationWindow
}

// Attach hands the service its parent window once GTK has built it.
func (d *DialogService) Attach(win *gtk.ApplicationWindow) {
	d.mu.Lock()
	d.win = win
	d.mu.Unlock()
}

func (d *DialogService) parent() (*gtk.Window, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.win == nil {
		return nil, errNoWindow
	}
	return &d.win.Window, nil
}

type pickResult struct {
	path string
	ok   bool
}

// SelectFile opens a single-file picker with the audio/video filter plus a
// catch-all. ok is false when the user dismissed the dialog; dismissal is
// not an error.
func (d *DialogService) SelectFile() (string, bool, error) {
	parent, err := d.parent()
	if err != nil {
		return "", false, err
	}

	ch := make(chan pickResult, 1)
	runOnMain(func() {
		dialog := gtk.NewFileDialog()
		dialog.SetTitle("ファイルを選択")
		dialog.SetFilters(mediaFilters())
		dialog.Open(context.Background(), parent, func(res gio.AsyncResulter) {
			file, err := dialog.OpenFinish(res)
			if err != nil || file == nil {
				// GTK reports dismissal as an error from Finish.
				ch <- pickResult{}
				return
			}
			ch <- pickResult{path: file.Path(), ok: true}
		})
	})

	r := <-ch
	return r.path, r.ok, nil
}

// SelectFiles opens a multi-file picker with the same filters. Returns the
// chosen paths in the order the chooser reports them, empty on dismissal.
func (d *DialogService) SelectFiles() ([]string, error) {
	parent, err := d.parent()
	if err != nil {
		return nil, err
	}

	ch := make(chan []string, 1)
	runOnMain(func() {
		dialog := gtk.NewFileDialog()
		dialog.SetTitle("ファイルを選択（複数可）")
		dialog.SetFilters(mediaFilters())
		dialog.OpenMultiple(context.Background(), parent, func(res gio.AsyncResulter) {
			files, err := dialog.OpenMultipleFinish(res)
			if err != nil || files == nil {
				ch <- nil
				return
			}

			n := files.NItems()
			paths := make([]string, 0, n)
			for i := uint(0); i < n; i++ {
				file, ok := files.Item(i).Cast().(gio.Filer)
				if !ok {
					continue
				}
				paths = append(paths, file.Path())
			}
			ch <- paths
		})
	})

	return <-ch, nil
}

// SelectFolder opens a single-folder picker without extension filters.
func (d *DialogService) SelectFolder() (string, bool, error) {
	parent, err := d.parent()
	if err != nil {
		return "", false, err
	}

	ch := make(chan pickResult, 1)
	runOnMain(func() {
		dialog := gtk.NewFileDialog()
		dialog.SetTitle("フォルダを選択")
		dialog.SelectFolder(context.Background(), parent, func(res gio.AsyncResulter) {
			file, err := dialog.SelectFolderFinish(res)
			if err != nil || file == nil {
				ch <- pickResult{}
				return
			}
			ch <- pickResult{path: file.Path(), ok: true}
		})
	})

	r := <-ch
	return r.path, r.ok, nil
}

func mediaFilters() *gio.ListStore {
	media := gtk.NewFileFilter()
	media.SetName("Audio/Video Files")
	for _, ext := range audioVideoExtensions {
		media.AddPattern("*." + ext)
	}

	all := gtk.NewFileFilter()
	all.SetName("All Files")
	all.AddPattern("*")

	filters := gio.NewListStore(coreglib.TypeObject)
	filters.Append(media.Object)
	filters.Append(all.Object)
	return filters
}
