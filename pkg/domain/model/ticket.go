package model

import "github.com/secmon-lab/deskdigest/pkg/domain/types"

// Ticket is the subset of a helpdesk ticket used for the summary
type Ticket struct {
	ID          types.TicketID
	Status      types.StatusCode
	Priority    types.Priority
	ResponderID *types.AgentID
}

// Assignee returns who the ticket is tallied under.
// A missing or zero responder means the ticket is unassigned.
func (t *Ticket) Assignee() Assignee {
	if t.ResponderID == nil || *t.ResponderID == 0 {
		return Assignee{}
	}
	return Assignee{ID: *t.ResponderID, Assigned: true}
}

// Assignee identifies the owner of a ticket for per-agent tallies
type Assignee struct {
	ID       types.AgentID
	Assigned bool
}
