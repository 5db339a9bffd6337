package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/deskdigest/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/secmon-lab/deskdigest/pkg/usecase"
)

// scenarioHelpdesk returns a helpdesk whose open ticket filter applies the catalog
func scenarioHelpdesk() *mocks.HelpdeskMock {
	all := []*model.Ticket{
		{ID: 1, Status: 2, Priority: 3, ResponderID: agentID(7)},
		{ID: 2, Status: 4, Priority: 1},
	}

	return &mocks.HelpdeskMock{
		FetchStatusCatalogFunc: func(ctx context.Context) (model.StatusCatalog, error) {
			return model.StatusCatalog{2: "Open", 3: "Pending", 4: "Resolved"}, nil
		},
		FetchOpenTicketsFunc: func(ctx context.Context, statuses model.StatusCatalog) ([]*model.Ticket, error) {
			open := statuses.OpenCodes(nil)
			var result []*model.Ticket
			for _, t := range all {
				if _, ok := open[t.Status]; ok {
					result = append(result, t)
				}
			}
			return result, nil
		},
		FetchAgentsFunc: func(ctx context.Context) (model.AgentCatalog, error) {
			return model.AgentCatalog{7: "Alice"}, nil
		},
	}
}

func recordingNotifier(name string, err error) *mocks.NotifierMock {
	return &mocks.NotifierMock{
		NameFunc: func() string { return name },
		NotifyFunc: func(ctx context.Context, report *model.Report) error {
			return err
		},
	}
}

func TestDigestRun(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return reportDate }

	t.Run("end to end scenario", func(t *testing.T) {
		hd := scenarioHelpdesk()
		email := recordingNotifier("email", nil)
		digest := usecase.NewDigest(hd, usecase.WithNotifiers(email), usecase.WithClock(clock))

		gt.NoError(t, digest.Run(ctx)).Required()

		gt.Equal(t, len(hd.FetchStatusCatalogCalls()), 1)
		gt.Equal(t, len(hd.FetchOpenTicketsCalls()), 1)
		gt.Equal(t, len(hd.FetchAgentsCalls()), 1)
		gt.Equal(t, len(email.NotifyCalls()), 1)

		report := email.NotifyCalls()[0].Report
		gt.Equal(t, report.Summary.Total, 1)
		gt.Equal(t, report.Subject, "Daily Helpdesk Ticket Summary")
		gt.S(t, report.HTML).Contains("High: 1<br>")
		gt.S(t, report.HTML).Contains("Open: 1<br>")
		gt.S(t, report.HTML).Contains("<u>Alice:</u>")
		gt.Equal(t, strings.Count(report.HTML, "<u>"), 1)
		gt.False(t, strings.Contains(report.HTML, "Resolved"))
	})

	t.Run("delivers through every notifier in order", func(t *testing.T) {
		var order []string
		notifier := func(name string) *mocks.NotifierMock {
			return &mocks.NotifierMock{
				NameFunc: func() string { return name },
				NotifyFunc: func(ctx context.Context, report *model.Report) error {
					order = append(order, name)
					return nil
				},
			}
		}

		digest := usecase.NewDigest(scenarioHelpdesk(),
			usecase.WithNotifiers(notifier("email"), notifier("slack")),
			usecase.WithClock(clock),
		)
		gt.NoError(t, digest.Run(ctx)).Required()
		gt.Equal(t, order, []string{"email", "slack"})
	})

	t.Run("stops at the first failing fetch", func(t *testing.T) {
		hd := scenarioHelpdesk()
		hd.FetchOpenTicketsFunc = func(ctx context.Context, statuses model.StatusCatalog) ([]*model.Ticket, error) {
			return nil, errors.New("503 service unavailable")
		}
		email := recordingNotifier("email", nil)
		digest := usecase.NewDigest(hd, usecase.WithNotifiers(email))

		err := digest.Run(ctx)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to get open tickets")
		gt.Equal(t, len(hd.FetchAgentsCalls()), 0)
		gt.Equal(t, len(email.NotifyCalls()), 0)
	})

	t.Run("propagates notifier failure", func(t *testing.T) {
		email := recordingNotifier("email", errors.New("smtp rejected"))
		slack := recordingNotifier("slack", nil)
		digest := usecase.NewDigest(scenarioHelpdesk(), usecase.WithNotifiers(email, slack))

		err := digest.Run(ctx)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("smtp rejected")
		gt.Equal(t, len(slack.NotifyCalls()), 0)
	})

	t.Run("requires a notifier", func(t *testing.T) {
		hd := scenarioHelpdesk()
		gt.Error(t, usecase.NewDigest(hd).Run(ctx))
		gt.Equal(t, len(hd.FetchStatusCatalogCalls()), 0)
	})
}

func TestDigestPreview(t *testing.T) {
	digest := usecase.NewDigest(scenarioHelpdesk(),
		usecase.WithSubject("Weekly"),
		usecase.WithClock(func() time.Time { return reportDate }),
	)

	report, err := digest.Preview(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, report.Subject, "Weekly")
	gt.S(t, report.HTML).Contains("2026-10-19")
}
