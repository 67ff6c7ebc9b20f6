package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// filePicker is the dialog capability the bridge depends on.
type filePicker interface {
	SelectFile() (string, bool, error)
	SelectFiles() ([]string, error)
	SelectFolder() (string, bool, error)
}

// bridge is the loopback HTTP API the web frontend invokes shell commands
// through. It reads the connection store on demand and brokers native
// dialogs; dialog handlers block their own request goroutine until the user
// picks or cancels.
type bridge struct {
	state  *ConnectionState
	picker filePicker
	log    *Logger
	open   func(path string) error
}

func newBridge(state *ConnectionState, picker filePicker, log *Logger, open func(string) error) *bridge {
	return &bridge{state: state, picker: picker, log: log, open: open}
}

func (b *bridge) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", b.handleHealth)
	mux.HandleFunc("/api/port", b.handlePort)
	mux.HandleFunc("/api/token", b.handleToken)
	mux.HandleFunc("/api/select-file", b.handleSelectFile)
	mux.HandleFunc("/api/select-files", b.handleSelectFiles)
	mux.HandleFunc("/api/select-folder", b.handleSelectFolder)
	mux.HandleFunc("/api/open-folder", b.handleOpenFolder)
	return b.logRequests(mux)
}

type portResponse struct {
	Port *uint16 `json:"port"`
}

type tokenResponse struct {
	Token *string `json:"token"`
}

type pathResponse struct {
	Path *string `json:"path"`
}

type pathsResponse struct {
	Paths []string `json:"paths"`
}

func (b *bridge) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePort returns the engine port, or null while the engine has not
// reported. "Not ready" is a normal response, never an error.
func (b *bridge) handlePort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var resp portResponse
	if port, ok := b.state.Port(); ok {
		resp.Port = &port
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *bridge) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var resp tokenResponse
	if token, ok := b.state.Token(); ok {
		resp.Token = &token
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *bridge) handleSelectFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := uuid.NewString()
	b.log.Debugf("dialog %s: select-file opened", id)

	path, ok, err := b.picker.SelectFile()
	if err != nil {
		b.log.Errorf("dialog %s: select-file failed: %v", id, err)
		writeError(w, err)
		return
	}

	var resp pathResponse
	if ok {
		resp.Path = &path
	}
	b.log.Debugf("dialog %s: select-file done (picked=%t)", id, ok)
	writeJSON(w, http.StatusOK, resp)
}

func (b *bridge) handleSelectFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := uuid.NewString()
	b.log.Debugf("dialog %s: select-files opened", id)

	paths, err := b.picker.SelectFiles()
	if err != nil {
		b.log.Errorf("dialog %s: select-files failed: %v", id, err)
		writeError(w, err)
		return
	}
	if paths == nil {
		// Cancellation yields an empty sequence, not null.
		paths = []string{}
	}

	b.log.Debugf("dialog %s: select-files done (%d picked)", id, len(paths))
	writeJSON(w, http.StatusOK, pathsResponse{Paths: paths})
}

func (b *bridge) handleSelectFolder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := uuid.NewString()
	b.log.Debugf("dialog %s: select-folder opened", id)

	path, ok, err := b.picker.SelectFolder()
	if err != nil {
		b.log.Errorf("dialog %s: select-folder failed: %v", id, err)
		writeError(w, err)
		return
	}

	var resp pathResponse
	if ok {
		resp.Path = &path
	}
	b.log.Debugf("dialog %s: select-folder done (picked=%t)", id, ok)
	writeJSON(w, http.StatusOK, resp)
}

type openFolderRequest struct {
	Path string `json:"path"`
}

// handleOpenFolder reveals a produced file's directory in the OS file
// manager. Directories are opened as-is.
func (b *bridge) handleOpenFolder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req openFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.Path = strings.TrimSpace(req.Path)
	if req.Path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}

	target := req.Path
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		target = filepath.Dir(target)
	}

	if err := b.open(target); err != nil {
		b.log.Errorf("open folder %q failed: %v", target, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError surfaces a boundary failure as an opaque string. These are
// unrecoverable (dialog or shell subsystem unreachable) and never retried.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (b *bridge) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		b.log.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Truncate(time.Millisecond))
	})
}
