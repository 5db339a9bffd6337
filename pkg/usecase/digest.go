package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/interfaces"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
)

// Digest fetches helpdesk state, summarizes open tickets, and delivers the report
type Digest struct {
	helpdesk  interfaces.Helpdesk
	notifiers []interfaces.Notifier
	subject   string
	now       func() time.Time
}

// DigestOption configures a Digest
type DigestOption func(*Digest)

// WithNotifiers sets where the report is delivered, in order
func WithNotifiers(notifiers ...interfaces.Notifier) DigestOption {
	return func(d *Digest) {
		d.notifiers = append(d.notifiers, notifiers...)
	}
}

// WithSubject overrides the report subject
func WithSubject(subject string) DigestOption {
	return func(d *Digest) {
		d.subject = subject
	}
}

// WithClock replaces time.Now for the report date
func WithClock(now func() time.Time) DigestOption {
	return func(d *Digest) {
		d.now = now
	}
}

// NewDigest creates a new Digest instance
func NewDigest(helpdesk interfaces.Helpdesk, opts ...DigestOption) *Digest {
	d := &Digest{
		helpdesk: helpdesk,
		subject:  model.DefaultSubject,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Preview builds the report without delivering it
func (d *Digest) Preview(ctx context.Context) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	logger.Debug("Fetching status catalog")
	statuses, err := d.helpdesk.FetchStatusCatalog(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get status catalog")
	}

	logger.Debug("Fetching open tickets", slog.Int("statuses", len(statuses)))
	tickets, err := d.helpdesk.FetchOpenTickets(ctx, statuses)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get open tickets")
	}

	logger.Debug("Fetching agents")
	agents, err := d.helpdesk.FetchAgents(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get agents")
	}

	summary := model.Summarize(tickets, agents, statuses, d.now())
	report, err := RenderReport(summary, d.subject)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render report")
	}

	return report, nil
}

// Run builds the report and delivers it through every notifier. The first
// failure aborts the run.
func (d *Digest) Run(ctx context.Context) error {
	if len(d.notifiers) == 0 {
		return goerr.New("no notifier configured")
	}

	report, err := d.Preview(ctx)
	if err != nil {
		return err
	}

	logger := ctxlog.From(ctx)
	for _, n := range d.notifiers {
		if err := n.Notify(ctx, report); err != nil {
			return goerr.Wrap(err, "failed to deliver report", goerr.V("notifier", n.Name()))
		}
		logger.Info("Report delivered",
			slog.String("notifier", n.Name()),
			slog.Int("tickets", report.Summary.Total),
		)
	}

	return nil
}
