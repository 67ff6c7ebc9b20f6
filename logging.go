package main

import (
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled shell logs to stdout and, when configured, a
// rotated log file.
type Logger struct {
	logger *log.Logger
	debug  bool
	file   io.Closer
}

func NewLogger(cfg *AppConfig) *Logger {
	l := &Logger{debug: cfg.Debug}

	var w io.Writer = os.Stdout
	if cfg.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
		}
		l.file = rotated
		w = io.MultiWriter(os.Stdout, rotated)
	}

	l.logger = log.New(w, "", log.LstdFlags)
	return l
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.logger.Printf("[DEBUG] "+format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.logger.Printf("[INFO] "+format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logger.Printf("[WARN] "+format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logger.Printf("[ERROR] "+format, v...)
}

// maskToken obscures a secret leaving only the last four characters
// visible, so tokens never land in the log in full.
func maskToken(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}
