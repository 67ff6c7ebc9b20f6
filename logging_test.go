package main

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"ab", "****"},
		{"abcd", "****"},
		{"abc123", "**c123"},
		{"secret-bearer-token", "***************oken"},
		{"  abc123  ", "**c123"},
	}

	for _, tt := range tests {
		if got := maskToken(tt.in); got != tt.want {
			t.Fatalf("maskToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoggerDebugGate(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{logger: log.New(&buf, "", 0)}

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written with debug disabled: %s", out)
	}
	if !strings.Contains(out, "[INFO] shown 2") {
		t.Fatalf("info line missing: %s", out)
	}

	l.debug = true
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Fatalf("debug line missing after enabling debug: %s", buf.String())
	}
}
