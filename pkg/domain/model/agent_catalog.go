package model

import "github.com/secmon-lab/deskdigest/pkg/domain/types"

// UnassignedName is shown for tickets without a responder and for unknown agents
const UnassignedName = "Unassigned"

// AgentCatalog maps agent identifiers to display names
type AgentCatalog map[types.AgentID]string

// Name returns the display name for the assignee
func (c AgentCatalog) Name(a Assignee) string {
	if !a.Assigned {
		return UnassignedName
	}
	if name, ok := c[a.ID]; ok {
		return name
	}
	return UnassignedName
}
