package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/interfaces"
	"github.com/secmon-lab/deskdigest/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSend(s *settings) *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "Build the summary and deliver it (default action)",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSend(ctx, s)
		},
	}
}

func runSend(ctx context.Context, s *settings) error {
	logger := ctxlog.From(ctx)

	report, err := s.report.Load()
	if err != nil {
		return err
	}
	s.smtp.Merge(report)

	logger.Info("Starting deskdigest",
		slog.Any("helpdesk", s.helpdesk),
		slog.Any("smtp", s.smtp),
		slog.Any("slack", s.slack),
		slog.Any("report", s.report),
	)

	client, err := s.helpdesk.Configure(report.ClosedStatuses)
	if err != nil {
		return err
	}

	mailSvc, err := s.smtp.Configure()
	if err != nil {
		return err
	}
	notifiers := []interfaces.Notifier{mailSvc}
	if slackSvc := s.slack.Configure(); slackSvc != nil {
		notifiers = append(notifiers, slackSvc)
	}

	digest := usecase.NewDigest(client,
		usecase.WithNotifiers(notifiers...),
		usecase.WithSubject(s.smtp.Subject),
	)
	if err := digest.Run(ctx); err != nil {
		return goerr.Wrap(err, "failed to run digest")
	}

	return nil
}

func cmdPreview(s *settings) *cli.Command {
	var format string

	return &cli.Command{
		Name:  "preview",
		Usage: "Build the summary and print it without sending",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (html, text)",
				Value:       "html",
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != "html" && format != "text" {
				return goerr.New("invalid preview format", goerr.V("format", format))
			}

			report, err := s.report.Load()
			if err != nil {
				return err
			}
			s.smtp.Merge(report)

			client, err := s.helpdesk.Configure(report.ClosedStatuses)
			if err != nil {
				return err
			}

			result, err := usecase.NewDigest(client, usecase.WithSubject(s.smtp.Subject)).Preview(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to build preview")
			}

			body := result.HTML
			if format == "text" {
				body = result.Text
			}
			if _, err := fmt.Fprintln(c.Root().Writer, body); err != nil {
				return goerr.Wrap(err, "failed to write preview")
			}
			return nil
		},
	}
}
