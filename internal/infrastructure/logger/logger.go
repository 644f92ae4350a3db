package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"jan-server/services/imagegen-api/internal/config"
)

// New constructs the service logger from configuration and installs it as the global logger.
func New(cfg *config.Config) (zerolog.Logger, error) {
	log, err := NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return zerolog.Logger{}, err
	}
	log = log.With().Str("service", cfg.ServiceName).Logger()
	zlog.Logger = log
	return log, nil
}

// NewWithWriter constructs a zerolog logger based on level and format configuration.
func NewWithWriter(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var writer zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		writer = zerolog.New(out).With().Timestamp().Logger()
	case "console":
		consoleWriter := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
		writer = zerolog.New(consoleWriter).With().Timestamp().Logger()
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}

	return writer.Level(lvl), nil
}
