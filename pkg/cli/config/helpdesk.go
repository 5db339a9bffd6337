package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/secmon-lab/deskdigest/pkg/service/helpdesk"
	"github.com/urfave/cli/v3"
)

// Helpdesk holds helpdesk API configuration
type Helpdesk struct {
	Domain  string
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Flags returns CLI flags for Helpdesk configuration
func (h *Helpdesk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "helpdesk-domain",
			Usage:       "Helpdesk domain, e.g. yourcompany.helpdesk.com",
			Category:    "Helpdesk",
			Sources:     cli.EnvVars("DESKDIGEST_HELPDESK_DOMAIN"),
			Destination: &h.Domain,
		},
		&cli.StringFlag{
			Name:        "helpdesk-url",
			Usage:       "Override the API base URL (default https://{helpdesk-domain})",
			Category:    "Helpdesk",
			Sources:     cli.EnvVars("DESKDIGEST_HELPDESK_URL"),
			Destination: &h.BaseURL,
		},
		&cli.StringFlag{
			Name:        "helpdesk-api-key",
			Usage:       "Helpdesk API key",
			Category:    "Helpdesk",
			Sources:     cli.EnvVars("DESKDIGEST_HELPDESK_API_KEY"),
			Destination: &h.APIKey,
		},
		&cli.DurationFlag{
			Name:        "helpdesk-timeout",
			Usage:       "Timeout of each helpdesk API request",
			Category:    "Helpdesk",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("DESKDIGEST_HELPDESK_TIMEOUT"),
			Destination: &h.Timeout,
		},
	}
}

// Validate checks that the required settings are present
func (h *Helpdesk) Validate() error {
	if h.Domain == "" && h.BaseURL == "" {
		return goerr.Wrap(model.ErrMissingSetting, "helpdesk domain is not set",
			goerr.V("flag", "helpdesk-domain"))
	}
	if h.APIKey == "" {
		return goerr.Wrap(model.ErrMissingSetting, "helpdesk API key is not set",
			goerr.V("flag", "helpdesk-api-key"))
	}
	return nil
}

// Configure creates a helpdesk client
func (h *Helpdesk) Configure(closedStatuses []string) (*helpdesk.Client, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	opts := []helpdesk.Option{helpdesk.WithClosedStatuses(closedStatuses)}
	if h.Timeout > 0 {
		opts = append(opts, helpdesk.WithTimeout(h.Timeout))
	}
	if h.BaseURL != "" {
		opts = append(opts, helpdesk.WithBaseURL(h.BaseURL))
	}

	return helpdesk.New(h.Domain, h.APIKey, opts...), nil
}

// LogValue returns structured log value
func (h Helpdesk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("domain", h.Domain),
		slog.String("base_url", h.BaseURL),
		slog.Bool("has_api_key", h.APIKey != ""),
		slog.Duration("timeout", h.Timeout),
	)
}
