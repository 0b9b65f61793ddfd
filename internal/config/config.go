package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anoideaopen/whitebox/core/stringsx"
	"github.com/sirupsen/logrus"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel     = "WHITEBOX_LOG_LEVEL"
	EnvLogLevelTest = "LOG"
	EnvLogFormat    = "WHITEBOX_LOG_FORMAT"
	EnvOTLPEndpoint = "WHITEBOX_OTLP_ENDPOINT"
	EnvOTLPCACerts  = "WHITEBOX_OTLP_CA_CERTS"
	EnvServiceName  = "WHITEBOX_SERVICE_NAME"
)

// Log formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

const defaultServiceName = "whitebox"

var ErrUnknownLogFormat = errors.New("unknown log format")

// Config holds the harness settings shared by all sessions.
type Config struct {
	LogLevel     logrus.Level
	LogFormat    string
	OTLPEndpoint string
	OTLPCACerts  string // base64 encoded PEM bundle, plain HTTP when empty
	ServiceName  string
}

// Default returns the configuration used when nothing is set:
// errors only, JSON output, tracing disabled.
func Default() Config {
	return Config{
		LogLevel:    logrus.ErrorLevel,
		LogFormat:   FormatJSON,
		ServiceName: defaultServiceName,
	}
}

// FromEnv reads the configuration from the environment. WHITEBOX_LOG_LEVEL
// takes precedence over LOG, which test runs commonly set.
func FromEnv() (Config, error) {
	cfg := Default()

	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = os.Getenv(EnvLogLevelTest)
	}
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	if format := strings.ToLower(os.Getenv(EnvLogFormat)); format != "" {
		if !stringsx.OneOf(format, FormatJSON, FormatText) {
			return Config{}, fmt.Errorf("%w: '%s'", ErrUnknownLogFormat, format)
		}
		cfg.LogFormat = format
	}

	cfg.OTLPEndpoint = os.Getenv(EnvOTLPEndpoint)
	cfg.OTLPCACerts = os.Getenv(EnvOTLPCACerts)

	if name := os.Getenv(EnvServiceName); name != "" {
		cfg.ServiceName = name
	}

	return cfg, nil
}
