package main

import "sync"

// ConnectionState holds the engine's connection parameters. The sidecar
// monitor is the only writer; the bridge reads it on every frontend request.
// Both fields start unset and are written once when the engine reports ready.
type ConnectionState struct {
	mu       sync.RWMutex
	port     uint16
	token    string
	hasPort  bool
	hasToken bool
}

func NewConnectionState() *ConnectionState {
	return &ConnectionState{}
}

// SetPort records the port the engine bound to.
func (s *ConnectionState) SetPort(port uint16) {
	s.mu.Lock()
	s.port = port
	s.hasPort = true
	s.mu.Unlock()
}

// SetToken records the engine's API bearer token.
func (s *ConnectionState) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.hasToken = true
	s.mu.Unlock()
}

// Port returns the engine port, with false while the engine has not
// reported yet. "Not ready" is a normal value, not an error.
func (s *ConnectionState) Port() (uint16, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.port, s.hasPort
}

// Token returns the engine API token, with false while unset.
func (s *ConnectionState) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.hasToken
}
