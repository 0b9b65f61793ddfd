// Package logger provides the logrus logger shared by whitebox sessions.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/anoideaopen/whitebox/internal/config"
	"github.com/anoideaopen/whitebox/version"
	"github.com/sirupsen/logrus"
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the logger configured from the environment. A broken
// environment setting falls back to the defaults and is reported once as a
// warning.
func Logger() *logrus.Logger {
	once.Do(func() {
		cfg, err := config.FromEnv()
		if err != nil {
			lg = New(config.Default(), os.Stderr)
			lg.WithError(err).Warn("invalid logging configuration, using defaults")
			return
		}

		lg = New(cfg, os.Stderr)
		lg.WithField("version", version.Version()).Debug("whitebox logger initialized")
	})

	return lg
}

// New builds a logger writing to out with the level and format of cfg.
func New(cfg config.Config, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(cfg.LogLevel)

	if cfg.LogFormat == config.FormatText {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return l
}
