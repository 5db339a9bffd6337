package model

import (
	"slices"
	"strings"
)

// ReportConfig holds report settings that can be kept in a YAML file
type ReportConfig struct {
	Recipients     []string `yaml:"recipients"`
	Subject        string   `yaml:"subject,omitempty"`
	ClosedStatuses []string `yaml:"closed_statuses,omitempty"`
}

// Normalize trims entries, drops empty recipients, and applies defaults
func (c *ReportConfig) Normalize() {
	recipients := make([]string, 0, len(c.Recipients))
	for _, r := range c.Recipients {
		if r = strings.TrimSpace(r); r != "" && !slices.Contains(recipients, r) {
			recipients = append(recipients, r)
		}
	}
	c.Recipients = recipients

	c.Subject = strings.TrimSpace(c.Subject)
	if c.Subject == "" {
		c.Subject = DefaultSubject
	}

	if len(c.ClosedStatuses) == 0 {
		c.ClosedStatuses = slices.Clone(DefaultClosedStatuses)
	}
}
