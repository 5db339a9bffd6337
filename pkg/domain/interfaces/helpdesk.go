package interfaces

//go:generate moq -out mocks/helpdesk_mock.go -pkg mocks . Helpdesk

import (
	"context"

	"github.com/secmon-lab/deskdigest/pkg/domain/model"
)

// Helpdesk reads ticket state from the helpdesk API
type Helpdesk interface {
	// FetchStatusCatalog returns the valid status codes and their labels
	FetchStatusCatalog(ctx context.Context) (model.StatusCatalog, error)

	// FetchOpenTickets returns every ticket whose status is not closed
	FetchOpenTickets(ctx context.Context, statuses model.StatusCatalog) ([]*model.Ticket, error)

	// FetchAgents returns the agent display names
	FetchAgents(ctx context.Context) (model.AgentCatalog, error)
}
