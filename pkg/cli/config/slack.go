package config

import (
	"log/slog"

	slackSvc "github.com/secmon-lab/deskdigest/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token; the summary is also posted when set with --slack-channel",
			Category:    "Slack",
			Sources:     cli.EnvVars("DESKDIGEST_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post the summary to",
			Category:    "Slack",
			Sources:     cli.EnvVars("DESKDIGEST_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack delivery is enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// Configure creates the Slack notifier, or nil if not configured
func (s *Slack) Configure() *slackSvc.Service {
	if !s.IsConfigured() {
		return nil
	}
	return slackSvc.New(s.OAuthToken, s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
