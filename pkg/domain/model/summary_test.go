package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/secmon-lab/deskdigest/pkg/domain/types"
)

var now = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func responder(id int64) *types.AgentID {
	a := types.AgentID(id)
	return &a
}

func TestSummarize(t *testing.T) {
	statuses := model.StatusCatalog{2: "Open", 3: "Pending", 6: "Waiting on Customer"}
	agents := model.AgentCatalog{7: "Alice", 8: "Bob"}

	tickets := []*model.Ticket{
		{ID: 1, Status: 3, Priority: types.PriorityHigh, ResponderID: responder(8)},
		{ID: 2, Status: 2, Priority: types.PriorityLow, ResponderID: responder(7)},
		{ID: 3, Status: 6, Priority: types.PriorityUrgent},
		{ID: 4, Status: 2, Priority: types.PriorityHigh, ResponderID: responder(8)},
		{ID: 5, Status: 9, Priority: types.PriorityMedium, ResponderID: responder(0)},
		{ID: 6, Status: 2, Priority: 42, ResponderID: responder(99)},
	}

	summary := model.Summarize(tickets, agents, statuses, now)

	t.Run("tallies sum to the ticket count", func(t *testing.T) {
		gt.Equal(t, summary.Total, len(tickets))

		sum := 0
		for _, p := range summary.Priorities {
			sum += p.Count
		}
		gt.Equal(t, sum, len(tickets))

		sum = 0
		for _, s := range summary.Statuses {
			sum += s.Count
		}
		gt.Equal(t, sum, len(tickets))

		sum = 0
		for _, a := range summary.Agents {
			sum += a.Total()
		}
		gt.Equal(t, sum, len(tickets))
	})

	t.Run("priorities in descending order", func(t *testing.T) {
		gt.Equal(t, summary.Priorities, []model.PriorityCount{
			{Priority: 42, Label: "Unknown", Count: 1},
			{Priority: types.PriorityUrgent, Label: "Urgent", Count: 1},
			{Priority: types.PriorityHigh, Label: "High", Count: 2},
			{Priority: types.PriorityMedium, Label: "Medium", Count: 1},
			{Priority: types.PriorityLow, Label: "Low", Count: 1},
		})
	})

	t.Run("statuses in ascending order", func(t *testing.T) {
		gt.Equal(t, summary.Statuses, []model.StatusCount{
			{Status: 2, Label: "Open", Count: 3},
			{Status: 3, Label: "Pending", Count: 1},
			{Status: 6, Label: "Waiting on Customer", Count: 1},
			{Status: 9, Label: "Status 9", Count: 1},
		})
	})

	t.Run("agents in first-seen order", func(t *testing.T) {
		gt.Equal(t, len(summary.Agents), 4)

		bob := summary.Agents[0]
		gt.Equal(t, bob.Name, "Bob")
		gt.Equal(t, bob.Statuses, []model.StatusCount{
			{Status: 3, Label: "Pending", Count: 1},
			{Status: 2, Label: "Open", Count: 1},
		})

		gt.Equal(t, summary.Agents[1].Name, "Alice")

		unassigned := summary.Agents[2]
		gt.Equal(t, unassigned.Name, "Unassigned")
		gt.False(t, unassigned.Assignee.Assigned)
		gt.Equal(t, unassigned.Total(), 2)

		// agent missing from the catalog keeps its own section
		unknown := summary.Agents[3]
		gt.Equal(t, unknown.Name, "Unassigned")
		gt.True(t, unknown.Assignee.Assigned)
		gt.Equal(t, unknown.Assignee.ID, types.AgentID(99))
	})

	t.Run("priority zero is tallied as unknown", func(t *testing.T) {
		s := model.Summarize([]*model.Ticket{
			{ID: 1, Status: 2, Priority: 0},
			{ID: 2, Status: 2, Priority: types.PriorityMedium},
		}, nil, statuses, now)
		gt.Equal(t, s.Priorities, []model.PriorityCount{
			{Priority: types.PriorityMedium, Label: "Medium", Count: 1},
			{Priority: 0, Label: "Unknown", Count: 1},
		})
	})

	t.Run("skips nil tickets", func(t *testing.T) {
		s := model.Summarize([]*model.Ticket{nil}, nil, nil, now)
		gt.Equal(t, s.Total, 0)
		gt.Equal(t, len(s.Agents), 0)
	})

	t.Run("date is kept", func(t *testing.T) {
		gt.True(t, summary.Date.Equal(now))
	})
}
