package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/secmon-lab/deskdigest/pkg/domain/model"
)

// Notifier delivers a rendered report
type Notifier interface {
	// Name identifies the delivery channel in logs
	Name() string

	// Notify delivers the report
	Notify(ctx context.Context, report *model.Report) error
}
