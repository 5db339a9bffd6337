package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/cli/config"
	"github.com/secmon-lab/deskdigest/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := newApp(os.Stdout, os.Stderr).Run(ctx, args); err != nil {
		apperr.Handle(ctxlog.With(ctx, slog.Default()), err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// settings is shared by the root action and the subcommands
type settings struct {
	helpdesk config.Helpdesk
	smtp     config.SMTP
	slack    config.Slack
	report   config.Report
}

// newApp builds the root command. Command output goes to stdout; logs and
// usage errors go to stderr.
func newApp(stdout, stderr io.Writer) *cli.Command {
	var (
		loggerCfg = config.Logger{Output: stderr}
		s         settings
	)

	return &cli.Command{
		Name:      "deskdigest",
		Usage:     "Email a daily summary of open helpdesk tickets",
		Version:   "0.1.0",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: joinFlags(
			loggerCfg.Flags(),
			s.helpdesk.Flags(),
			s.smtp.Flags(),
			s.slack.Flags(),
			s.report.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSend(ctx, &s)
		},
		Commands: []*cli.Command{
			cmdSend(&s),
			cmdPreview(&s),
		},
	}
}
