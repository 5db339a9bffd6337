package model

import (
	"cmp"
	"slices"
	"time"

	"github.com/secmon-lab/deskdigest/pkg/domain/types"
)

// PriorityCount is the number of open tickets with a priority
type PriorityCount struct {
	Priority types.Priority
	Label    string
	Count    int
}

// StatusCount is the number of open tickets in a status
type StatusCount struct {
	Status types.StatusCode
	Label  string
	Count  int
}

// AgentSummary is the status breakdown of tickets owned by one assignee
type AgentSummary struct {
	Assignee Assignee
	Name     string
	Statuses []StatusCount
}

// Total returns the number of tickets owned by the assignee
func (a AgentSummary) Total() int {
	total := 0
	for _, s := range a.Statuses {
		total += s.Count
	}
	return total
}

// Summary is the aggregated view of open tickets for one run
type Summary struct {
	Date       time.Time
	Total      int
	Priorities []PriorityCount // descending priority
	Statuses   []StatusCount   // ascending status code
	Agents     []AgentSummary  // first-seen assignee order
}

// Summarize tallies tickets by priority, by status, and by assignee and status.
// It performs no I/O and tolerates tickets with missing optional fields.
func Summarize(tickets []*Ticket, agents AgentCatalog, statuses StatusCatalog, now time.Time) *Summary {
	priorityCount := make(map[types.Priority]int)
	statusCount := make(map[types.StatusCode]int)
	assignees := newOrderedCounter[Assignee]()
	perAgent := make(map[Assignee]*orderedCounter[types.StatusCode])

	for _, t := range tickets {
		if t == nil {
			continue
		}
		// Absent priorities are defaulted at the API boundary; a zero here is
		// a real code and is tallied as Unknown.
		priorityCount[t.Priority]++
		statusCount[t.Status]++

		a := t.Assignee()
		assignees.add(a)
		counter, ok := perAgent[a]
		if !ok {
			counter = newOrderedCounter[types.StatusCode]()
			perAgent[a] = counter
		}
		counter.add(t.Status)
	}

	summary := &Summary{
		Date:       now,
		Priorities: make([]PriorityCount, 0, len(priorityCount)),
		Statuses:   make([]StatusCount, 0, len(statusCount)),
	}

	for p, n := range priorityCount {
		summary.Priorities = append(summary.Priorities, PriorityCount{Priority: p, Label: p.Label(), Count: n})
		summary.Total += n
	}
	slices.SortFunc(summary.Priorities, func(a, b PriorityCount) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	for s, n := range statusCount {
		summary.Statuses = append(summary.Statuses, StatusCount{Status: s, Label: statuses.Label(s), Count: n})
	}
	slices.SortFunc(summary.Statuses, func(a, b StatusCount) int {
		return cmp.Compare(a.Status, b.Status)
	})

	assignees.each(func(a Assignee, _ int) {
		agent := AgentSummary{Assignee: a, Name: agents.Name(a)}
		perAgent[a].each(func(s types.StatusCode, n int) {
			agent.Statuses = append(agent.Statuses, StatusCount{Status: s, Label: statuses.Label(s), Count: n})
		})
		summary.Agents = append(summary.Agents, agent)
	})

	return summary
}
