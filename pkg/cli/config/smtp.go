package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/secmon-lab/deskdigest/pkg/service/mail"
	"github.com/urfave/cli/v3"
)

// SMTP holds email delivery configuration
type SMTP struct {
	Host       string
	Port       int
	Sender     string
	Password   string
	Recipients []string
	Subject    string
	Timeout    time.Duration
}

// Flags returns CLI flags for SMTP configuration
func (s *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server host",
			Category:    "Email",
			Value:       "smtp.gmail.com",
			Sources:     cli.EnvVars("DESKDIGEST_SMTP_HOST"),
			Destination: &s.Host,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port (STARTTLS)",
			Category:    "Email",
			Value:       587,
			Sources:     cli.EnvVars("DESKDIGEST_SMTP_PORT"),
			Destination: &s.Port,
		},
		&cli.DurationFlag{
			Name:        "smtp-timeout",
			Usage:       "SMTP connection timeout",
			Category:    "Email",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("DESKDIGEST_SMTP_TIMEOUT"),
			Destination: &s.Timeout,
		},
		&cli.StringFlag{
			Name:        "email-sender",
			Usage:       "Sender address, also used as SMTP username",
			Category:    "Email",
			Sources:     cli.EnvVars("DESKDIGEST_EMAIL_SENDER"),
			Destination: &s.Sender,
		},
		&cli.StringFlag{
			Name:        "email-password",
			Usage:       "SMTP password of the sender",
			Category:    "Email",
			Sources:     cli.EnvVars("DESKDIGEST_EMAIL_PASSWORD"),
			Destination: &s.Password,
		},
		&cli.StringSliceFlag{
			Name:        "email-recipients",
			Usage:       "Recipient addresses (comma separated or repeated)",
			Category:    "Email",
			Sources:     cli.EnvVars("DESKDIGEST_EMAIL_RECIPIENTS"),
			Destination: &s.Recipients,
		},
		&cli.StringFlag{
			Name:        "email-subject",
			Usage:       "Email subject (default \"" + model.DefaultSubject + "\")",
			Category:    "Email",
			Sources:     cli.EnvVars("DESKDIGEST_EMAIL_SUBJECT"),
			Destination: &s.Subject,
		},
	}
}

// Merge fills recipients and subject from the report file when not given as flags
func (s *SMTP) Merge(report *model.ReportConfig) {
	if len(s.Recipients) == 0 {
		s.Recipients = report.Recipients
	}
	if s.Subject == "" {
		s.Subject = report.Subject
	}
}

// Validate checks that the required settings are present
func (s *SMTP) Validate() error {
	if s.Host == "" {
		return goerr.Wrap(model.ErrMissingSetting, "SMTP host is not set", goerr.V("flag", "smtp-host"))
	}
	if s.Sender == "" {
		return goerr.Wrap(model.ErrMissingSetting, "email sender is not set", goerr.V("flag", "email-sender"))
	}
	if s.Password == "" {
		return goerr.Wrap(model.ErrMissingSetting, "email password is not set", goerr.V("flag", "email-password"))
	}
	if len(s.Recipients) == 0 {
		return goerr.Wrap(model.ErrMissingSetting, "no email recipients", goerr.V("flag", "email-recipients"))
	}
	return nil
}

// Configure creates the email notifier
func (s *SMTP) Configure() (*mail.Service, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return mail.New(mail.Config{
		Host:       s.Host,
		Port:       s.Port,
		Username:   s.Sender,
		Password:   s.Password,
		From:       s.Sender,
		Recipients: s.Recipients,
		Timeout:    s.Timeout,
	})
}

// LogValue returns structured log value
func (s SMTP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", s.Host),
		slog.Int("port", s.Port),
		slog.String("sender", s.Sender),
		slog.Bool("has_password", s.Password != ""),
		slog.Int("recipients", len(s.Recipients)),
	)
}
