package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration. Output is not a flag; it defaults to
// stderr so that stdout carries only command output.
type Logger struct {
	Level  string
	Format string
	Output io.Writer
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("DESKDIGEST_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("DESKDIGEST_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure sets up the logger based on configuration
func (l *Logger) Configure() (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	w := l.Output
	if w == nil {
		w = os.Stderr
	}

	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), w, l.format()), nil
}

func (l *Logger) format() logging.Format {
	switch l.Format {
	case "console":
		return logging.FormatConsole
	case "json":
		return logging.FormatJSON
	default:
		return logging.FormatAuto
	}
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return goerr.New("invalid log level", goerr.V("level", l.Level))
	}

	switch l.Format {
	case "console", "json", "auto", "":
	default:
		return goerr.New("invalid log format", goerr.V("format", l.Format))
	}

	return nil
}
