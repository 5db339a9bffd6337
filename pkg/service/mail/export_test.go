package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"
)

type SenderFunc func(ctx context.Context, messages ...*gomail.Msg) error

func (f SenderFunc) DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error {
	return f(ctx, messages...)
}

func NewServiceWithSender(s SenderFunc, from string, recipients []string) *Service {
	return newService(s, from, recipients)
}
