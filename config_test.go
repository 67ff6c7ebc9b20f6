package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(configEnvOverride, filepath.Join(t.TempDir(), "config.json"))

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.EngineCommand != "kotoba-engine" {
		t.Fatalf("EngineCommand = %q", cfg.EngineCommand)
	}
	if cfg.BridgeAddr != "127.0.0.1:43110" {
		t.Fatalf("BridgeAddr = %q", cfg.BridgeAddr)
	}
	if cfg.LogMaxSizeMB != 10 || cfg.LogMaxBackups != 3 {
		t.Fatalf("log rotation defaults = (%d, %d)", cfg.LogMaxSizeMB, cfg.LogMaxBackups)
	}
	if cfg.StartHidden || cfg.Debug {
		t.Fatalf("StartHidden/Debug should default to false")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv(configEnvOverride, filepath.Join(t.TempDir(), "config.json"))

	want := &AppConfig{
		EngineCommand: "/opt/kotoba/engine",
		EngineArgs:    []string{"--model", "small"},
		BridgeAddr:    "127.0.0.1:9000",
		StartHidden:   true,
		Debug:         true,
		LogFile:       "/tmp/kotoba-shell.log",
		LogMaxSizeMB:  25,
		LogMaxBackups: 5,
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.EngineCommand != want.EngineCommand {
		t.Fatalf("EngineCommand = %q, want %q", got.EngineCommand, want.EngineCommand)
	}
	if len(got.EngineArgs) != 2 || got.EngineArgs[0] != "--model" || got.EngineArgs[1] != "small" {
		t.Fatalf("EngineArgs = %v", got.EngineArgs)
	}
	if got.BridgeAddr != want.BridgeAddr {
		t.Fatalf("BridgeAddr = %q, want %q", got.BridgeAddr, want.BridgeAddr)
	}
	if !got.StartHidden || !got.Debug {
		t.Fatalf("StartHidden/Debug lost in round trip")
	}
	if got.LogFile != want.LogFile || got.LogMaxSizeMB != 25 || got.LogMaxBackups != 5 {
		t.Fatalf("log settings = (%q, %d, %d)", got.LogFile, got.LogMaxSizeMB, got.LogMaxBackups)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv(configEnvOverride, path)

	if err := os.WriteFile(path, []byte(`{"Debug": true}`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Debug {
		t.Fatalf("Debug should be taken from the file")
	}
	if cfg.EngineCommand != "kotoba-engine" || cfg.BridgeAddr != "127.0.0.1:43110" {
		t.Fatalf("unset fields should fall back to defaults, got %q / %q", cfg.EngineCommand, cfg.BridgeAddr)
	}
}
