package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds the location of the optional report settings file
type Report struct {
	Path string
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "YAML file with recipients, subject, and closed_statuses",
			Category:    "Report",
			Sources:     cli.EnvVars("DESKDIGEST_CONFIG"),
			Destination: &r.Path,
		},
	}
}

// Load reads the report settings. Without a path, defaults are returned.
func (r *Report) Load() (*model.ReportConfig, error) {
	return LoadReportFromFile(r.Path)
}

// LoadReportFromFile loads report settings from a YAML file
func LoadReportFromFile(path string) (*model.ReportConfig, error) {
	var cfg model.ReportConfig
	if path == "" {
		cfg.Normalize()
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	cfg.Normalize()
	return &cfg, nil
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.Path),
	)
}
