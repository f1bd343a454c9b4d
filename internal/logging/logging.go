// Package logging builds the logrus logger used by the front ends.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tomz197/goalpong/internal/config"
)

// ParseLevel maps a level name onto a logrus level. Empty means info.
func ParseLevel(name string) (logrus.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// New returns a JSON logger writing to the rotating file in s. When s.File is
// empty it writes to console instead, or nowhere if console is nil.
func New(s config.LogSettings, console io.Writer) (*logrus.Logger, error) {
	level, err := ParseLevel(s.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(level)

	switch {
	case s.File != "":
		log.SetOutput(&lumberjack.Logger{
			Filename:   s.File,
			MaxSize:    s.MaxSize,
			MaxBackups: s.MaxBackups,
			MaxAge:     s.MaxAge,
			Compress:   s.Compress,
		})
	case console != nil:
		log.SetOutput(console)
	default:
		log.SetOutput(io.Discard)
	}
	return log, nil
}

// Close releases the log file, if the logger owns one.
func Close(log *logrus.Logger) error {
	if c, ok := log.Out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
