package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// engineReport is the single readiness line the engine prints to stdout
// once its API server is listening: {"port": n, "host": "...", "token": "..."}.
type engineReport struct {
	Port  int    `json:"port"`
	Host  string `json:"host"`
	Token string `json:"token"`
}

// parseEngineReport tries to read a stdout line as the readiness report.
// Lines that do not parse, or parse with an invalid port or empty token,
// are ordinary engine output.
func parseEngineReport(line string) (*engineReport, bool) {
	var rep engineReport
	if err := json.Unmarshal([]byte(line), &rep); err != nil {
		return nil, false
	}
	if rep.Port < 1 || rep.Port > 65535 {
		return nil, false
	}
	if rep.Token == "" {
		return nil, false
	}
	return &rep, true
}

// engineMonitor spawns the transcription engine and is the connection
// store's only writer.
type engineMonitor struct {
	cfg   *AppConfig
	state *ConnectionState
	log   *Logger
}

func newEngineMonitor(cfg *AppConfig, state *ConnectionState, log *Logger) *engineMonitor {
	return &engineMonitor{cfg: cfg, state: state, log: log}
}

// Run starts the engine with KOTOBA_PORT=0 (OS-assigned port) and scans its
// stdout until the readiness report arrives, writing the store exactly
// once. Remaining output is relayed to the shell log. There is no restart
// and no timeout: if the engine never reports, reads stay "not ready".
// Run blocks until the engine exits.
func (m *engineMonitor) Run() error {
	cmd := exec.Command(m.cfg.EngineCommand, m.cfg.EngineArgs...)
	cmd.Env = append(os.Environ(), "KOTOBA_PORT=0")

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("engine stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("engine stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start engine %q: %w", m.cfg.EngineCommand, err)
	}
	m.log.Infof("engine started (pid %d)", cmd.Process.Pid)

	go m.relay(stderr)
	m.watchStdout(stdout)

	if err := cmd.Wait(); err != nil {
		m.log.Warnf("engine exited: %v", err)
		return fmt.Errorf("engine exited: %w", err)
	}
	m.log.Infof("engine exited")
	return nil
}

// watchStdout scans for the first readiness report, then keeps draining so
// the engine never blocks on a full pipe.
func (m *engineMonitor) watchStdout(r io.Reader) {
	reported := false
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !reported {
			if rep, ok := parseEngineReport(line); ok {
				reported = true
				m.state.SetPort(uint16(rep.Port))
				m.state.SetToken(rep.Token)
				m.log.Infof("engine ready on port %d (token %s)", rep.Port, maskToken(rep.Token))
				continue
			}
		}
		m.log.Debugf("engine: %s", line)
	}
	if !reported {
		m.log.Warnf("engine stdout closed before a readiness report")
	}
}

func (m *engineMonitor) relay(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m.log.Debugf("engine[stderr]: %s", scanner.Text())
	}
}
