package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tomz197/goalpong/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    logrus.Level
		wantErr bool
	}{
		{"trace", logrus.TraceLevel, false},
		{"Debug", logrus.DebugLevel, false},
		{"", logrus.InfoLevel, false},
		{"info", logrus.InfoLevel, false},
		{"warning", logrus.WarnLevel, false},
		{" error ", logrus.ErrorLevel, false},
		{"fatal", logrus.FatalLevel, false},
		{"PANIC", logrus.PanicLevel, false},
		{"loud", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogSettings{Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.WithField("player_score", 3).Debug("goal")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "goal" || entry["level"] != "debug" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["player_score"] != float64(3) {
		t.Errorf("player_score = %v, want 3", entry["player_score"])
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogSettings{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info entry written at warn level: %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	log, err := New(config.LogSettings{File: path, Level: "info", MaxSize: 1}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Info("session started")
	if err := Close(log); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"session started"`) {
		t.Errorf("log file content %q", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.LogSettings{Level: "chatty"}, nil); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
