package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	s, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if s.TickRate != 60 || s.FrameRate != 60 {
		t.Errorf("rates = %d/%d, want 60/60", s.TickRate, s.FrameRate)
	}
	if s.HoldDuration != 60*time.Millisecond {
		t.Errorf("HoldDuration = %v, want 60ms", s.HoldDuration)
	}
	if s.EnemySeed != 0 {
		t.Errorf("EnemySeed = %d, want 0", s.EnemySeed)
	}
	if s.Log.Level != "info" || s.Log.File != "pong.log" {
		t.Errorf("log settings = %+v", s.Log)
	}
	if s.SSH.Port != "2222" || s.SSH.IdleTimeout != 2*time.Minute {
		t.Errorf("ssh settings = %+v", s.SSH)
	}
	if s.Web.Port != "8080" {
		t.Errorf("web port = %q, want 8080", s.Web.Port)
	}
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "toml",
			file: "pong.toml",
			body: "tick_rate = 30\n\n[log]\nlevel = \"debug\"\n\n[ssh]\nidle_timeout = \"30s\"\n",
		},
		{
			name: "yaml",
			file: "pong.yaml",
			body: "tick_rate: 30\nlog:\n  level: debug\nssh:\n  idle_timeout: 30s\n",
		},
		{
			name: "properties",
			file: "pong.properties",
			body: "tick_rate=30\nlog.level=debug\nssh.idle_timeout=30s\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadFile(writeConfig(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if s.TickRate != 30 {
				t.Errorf("TickRate = %d, want 30", s.TickRate)
			}
			if s.FrameRate != 60 {
				t.Errorf("FrameRate = %d, want the default 60", s.FrameRate)
			}
			if s.Log.Level != "debug" {
				t.Errorf("Log.Level = %q, want debug", s.Log.Level)
			}
			if s.SSH.IdleTimeout != 30*time.Second {
				t.Errorf("SSH.IdleTimeout = %v, want 30s", s.SSH.IdleTimeout)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "pong.toml", "tick_rate = 30\n")
	t.Setenv("PONG_CONFIG", path)
	t.Setenv("PONG_TICK_RATE", "120")
	t.Setenv("PONG_LOG_COMPRESS", "true")
	t.Setenv("PONG_ENEMY_SEED", "42")
	t.Setenv("SSH_PORT", "2200")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.TickRate != 120 {
		t.Errorf("TickRate = %d, want the env value 120", s.TickRate)
	}
	if !s.Log.Compress {
		t.Error("Log.Compress = false, want true")
	}
	if s.EnemySeed != 42 {
		t.Errorf("EnemySeed = %d, want 42", s.EnemySeed)
	}
	if s.SSH.Port != "2200" {
		t.Errorf("SSH.Port = %q, want the legacy env value 2200", s.SSH.Port)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero tick rate", "PONG_TICK_RATE", "0"},
		{"negative frame rate", "PONG_FRAME_RATE", "-5"},
		{"non-numeric tick rate", "PONG_TICK_RATE", "fast"},
		{"zero hold", "PONG_INPUT_HOLD_MS", "0"},
		{"bad idle timeout", "PONG_SSH_IDLE_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := LoadFile(""); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PONG_TEST_SET", "value")

	if got := GetEnv("PONG_TEST_SET", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("PONG_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}
