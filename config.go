package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// KOTOBA_SHELL_CONFIG points at an alternate config file (tests, portable
// installs).
const configEnvOverride = "KOTOBA_SHELL_CONFIG"

type AppConfig struct {
	EngineCommand string   `json:"EngineCommand"`
	EngineArgs    []string `json:"EngineArgs,omitempty"`
	BridgeAddr    string   `json:"BridgeAddr"`
	StartHidden   bool     `json:"StartHidden"`
	Debug         bool     `json:"Debug"`
	LogFile       string   `json:"LogFile,omitempty"`
	LogMaxSizeMB  int      `json:"LogMaxSizeMB,omitempty"`
	LogMaxBackups int      `json:"LogMaxBackups,omitempty"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		EngineCommand: "kotoba-engine",
		BridgeAddr:    "127.0.0.1:43110",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

func getConfigPath() (string, error) {
	if custom := os.Getenv(configEnvOverride); custom != "" {
		return custom, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, "kotoba-shell")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(appDir, "config.json"), nil
}

// LoadConfig reads the shell configuration, falling back to defaults for a
// missing file or unset fields.
func LoadConfig() (*AppConfig, error) {
	cfg := defaultConfig()

	path, err := getConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	var loaded AppConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg, err
	}

	if loaded.EngineCommand != "" {
		cfg.EngineCommand = loaded.EngineCommand
	}
	cfg.EngineArgs = loaded.EngineArgs
	if loaded.BridgeAddr != "" {
		cfg.BridgeAddr = loaded.BridgeAddr
	}
	cfg.StartHidden = loaded.StartHidden
	cfg.Debug = loaded.Debug
	cfg.LogFile = loaded.LogFile
	if loaded.LogMaxSizeMB > 0 {
		cfg.LogMaxSizeMB = loaded.LogMaxSizeMB
	}
	if loaded.LogMaxBackups > 0 {
		cfg.LogMaxBackups = loaded.LogMaxBackups
	}

	return cfg, nil
}

func SaveConfig(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
