package model

import (
	"fmt"
	"slices"

	"github.com/secmon-lab/deskdigest/pkg/domain/types"
)

// DefaultClosedStatuses lists the labels of statuses that no longer need attention
var DefaultClosedStatuses = []string{"Closed", "Resolved"}

// StatusCatalog maps status codes to their normalized display labels
type StatusCatalog map[types.StatusCode]string

// Label returns the display label for the code, or "Status {code}" if unknown
func (c StatusCatalog) Label(code types.StatusCode) string {
	if label, ok := c[code]; ok {
		return label
	}
	return fmt.Sprintf("Status %d", code)
}

// OpenCodes returns the set of codes whose label is not one of closed.
// An empty closed list falls back to DefaultClosedStatuses.
func (c StatusCatalog) OpenCodes(closed []string) map[types.StatusCode]struct{} {
	if len(closed) == 0 {
		closed = DefaultClosedStatuses
	}

	open := make(map[types.StatusCode]struct{}, len(c))
	for code, label := range c {
		if slices.Contains(closed, label) {
			continue
		}
		open[code] = struct{}{}
	}
	return open
}
