package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/interfaces"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	gomail "github.com/wneessen/go-mail"
)

// ErrTagDelivery marks failures to hand the message to the SMTP server
var ErrTagDelivery = goerr.NewTag("delivery")

// Config holds SMTP settings
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
	Timeout    time.Duration
}

// sender is the subset of *gomail.Client used by Service
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// Service sends reports as HTML email
type Service struct {
	client     sender
	from       string
	recipients []string
}

var _ interfaces.Notifier = (*Service)(nil)

// New creates a Service that connects with STARTTLS and PLAIN auth
func New(cfg Config) (*Service, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create SMTP client",
			goerr.V("host", cfg.Host),
			goerr.V("port", cfg.Port))
	}

	return newService(client, cfg.From, cfg.Recipients), nil
}

func newService(client sender, from string, recipients []string) *Service {
	return &Service{
		client:     client,
		from:       from,
		recipients: recipients,
	}
}

// Name implements interfaces.Notifier
func (s *Service) Name() string {
	return "email"
}

// BuildMessage creates a multipart/alternative message with a plain text
// part and an HTML part
func (s *Service) BuildMessage(report *model.Report) (*gomail.Msg, error) {
	if len(s.recipients) == 0 {
		return nil, goerr.New("no email recipients configured")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, goerr.Wrap(err, "invalid sender address", goerr.V("from", s.from))
	}
	if err := msg.To(s.recipients...); err != nil {
		return nil, goerr.Wrap(err, "invalid recipient address", goerr.V("recipients", s.recipients))
	}
	msg.Subject(report.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextPlain, report.Text)
	msg.AddAlternativeString(gomail.TypeTextHTML, report.HTML)

	return msg, nil
}

// Notify sends the report to every recipient in a single SMTP session
func (s *Service) Notify(ctx context.Context, report *model.Report) error {
	msg, err := s.BuildMessage(report)
	if err != nil {
		return err
	}

	ctxlog.From(ctx).Debug("Sending summary email",
		slog.String("from", s.from),
		slog.Any("recipients", s.recipients),
	)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to send summary email",
			goerr.V("recipients", s.recipients),
			goerr.T(ErrTagDelivery))
	}
	return nil
}
