package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings are the runtime options shared by the front ends.
type Settings struct {
	TickRate     int           // simulation ticks per second
	FrameRate    int           // frames drawn per second
	HoldDuration time.Duration // how long a key press counts as held
	EnemySeed    int64         // seed for the enemy's initial direction; 0 picks a time seed

	Log LogSettings
	SSH SSHSettings
	Web WebSettings
}

// LogSettings configure the rotating log file.
type LogSettings struct {
	File       string // empty logs to the console writer instead
	Level      string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// SSHSettings configure the SSH server.
type SSHSettings struct {
	Host        string
	Port        string
	HostKey     string
	IdleTimeout time.Duration
}

// WebSettings configure the landing page server.
type WebSettings struct {
	Host           string
	Port           string
	SSHDisplayHost string
}

// defaults holds every key with its default value.
var defaults = map[string]any{
	"tick_rate":     60,
	"frame_rate":    60,
	"input.hold_ms": 60,
	"enemy.seed":    0,

	"log.file":        "pong.log",
	"log.level":       "info",
	"log.max_size":    10,
	"log.max_backups": 3,
	"log.max_age":     28,
	"log.compress":    false,

	"ssh.host":         "::",
	"ssh.port":         "2222",
	"ssh.host_key":     "/app/keys/host_key",
	"ssh.idle_timeout": "2m",

	"web.host":             "0.0.0.0",
	"web.port":             "8080",
	"web.ssh_display_host": "your-server.com",
}

// legacyEnv maps keys to the unprefixed variables older deployments set.
var legacyEnv = map[string]string{
	"ssh.host":             "SSH_HOST",
	"ssh.port":             "SSH_PORT",
	"ssh.host_key":         "SSH_HOST_KEY",
	"web.host":             "WEB_HOST",
	"web.port":             "WEB_PORT",
	"web.ssh_display_host": "SSH_DISPLAY_HOST",
}

// Load reads settings from the file named by PONG_CONFIG, or from
// pong.{toml,yaml,properties} in the working directory or /etc/pong, then
// applies PONG_* environment overrides.
func Load() (Settings, error) {
	return LoadFile(GetEnv("PONG_CONFIG", ""))
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations and tolerates a missing file.
func LoadFile(path string) (Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("PONG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		prefixed := "PONG_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return Settings{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("pong")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/pong")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (Settings, error) {
	var s Settings
	var errs []error

	toInt := func(key string) int {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}
	toBool := func(key string) bool {
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return b
	}

	s.TickRate = toInt("tick_rate")
	s.FrameRate = toInt("frame_rate")
	s.HoldDuration = time.Duration(toInt("input.hold_ms")) * time.Millisecond

	seed, err := cast.ToInt64E(v.Get("enemy.seed"))
	if err != nil {
		errs = append(errs, fmt.Errorf("enemy.seed: %w", err))
	}
	s.EnemySeed = seed

	s.Log = LogSettings{
		File:       cast.ToString(v.Get("log.file")),
		Level:      cast.ToString(v.Get("log.level")),
		MaxSize:    toInt("log.max_size"),
		MaxBackups: toInt("log.max_backups"),
		MaxAge:     toInt("log.max_age"),
		Compress:   toBool("log.compress"),
	}

	idle, err := cast.ToDurationE(v.Get("ssh.idle_timeout"))
	if err != nil {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout: %w", err))
	}
	s.SSH = SSHSettings{
		Host:        cast.ToString(v.Get("ssh.host")),
		Port:        cast.ToString(v.Get("ssh.port")),
		HostKey:     cast.ToString(v.Get("ssh.host_key")),
		IdleTimeout: idle,
	}

	s.Web = WebSettings{
		Host:           cast.ToString(v.Get("web.host")),
		Port:           cast.ToString(v.Get("web.port")),
		SSHDisplayHost: cast.ToString(v.Get("web.ssh_display_host")),
	}

	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the game loop cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", s.TickRate)
	case s.FrameRate <= 0:
		return fmt.Errorf("frame_rate must be positive, got %d", s.FrameRate)
	case s.HoldDuration <= 0:
		return fmt.Errorf("input.hold_ms must be positive, got %v", s.HoldDuration)
	case s.SSH.IdleTimeout < 0:
		return fmt.Errorf("ssh.idle_timeout must not be negative, got %v", s.SSH.IdleTimeout)
	}
	return nil
}
