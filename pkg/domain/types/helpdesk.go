package types

import (
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// TicketID represents a helpdesk ticket identifier
type TicketID int64

// String returns the string representation
func (id TicketID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// AgentID represents a helpdesk agent identifier
type AgentID int64

// String returns the string representation
func (id AgentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// StatusCode represents a ticket lifecycle state as reported by the helpdesk
type StatusCode int

// String returns the string representation
func (c StatusCode) String() string {
	return strconv.Itoa(int(c))
}

// ParseStatusCode parses the string key used by the ticket field choices
func ParseStatusCode(s string) (StatusCode, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid status code", goerr.V("code", s))
	}
	return StatusCode(v), nil
}

// Priority represents a ticket priority code
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4

	// DefaultPriority is applied to tickets that carry no priority
	DefaultPriority = PriorityMedium
)

// Label returns the display label of the priority
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}

// String returns the string representation
func (p Priority) String() string {
	return fmt.Sprintf("%s(%d)", p.Label(), int(p))
}
