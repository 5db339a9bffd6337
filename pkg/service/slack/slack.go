package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/interfaces"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxAgentBlocks keeps a message under Slack's 50 block limit
const maxAgentBlocks = 40

// poster is the subset of *slack.Client used by Service
type poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Service posts reports to a Slack channel
type Service struct {
	client    poster
	channelID string
}

var _ interfaces.Notifier = (*Service)(nil)

// New creates a new Slack service
func New(token, channelID string, options ...slack.Option) *Service {
	return &Service{
		client:    slack.New(token, options...),
		channelID: channelID,
	}
}

// Name implements interfaces.Notifier
func (s *Service) Name() string {
	return "slack"
}

// Notify posts the summary as Block Kit blocks with the plain text report as fallback
func (s *Service) Notify(ctx context.Context, report *model.Report) error {
	if s.channelID == "" {
		return goerr.New("slack channel is required")
	}

	blocks := BuildSummaryBlocks(report.Summary)
	_, _, err := s.client.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(report.Text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post summary to Slack", goerr.V("channel", s.channelID))
	}
	return nil
}

// BuildSummaryBlocks renders the summary as Slack blocks
func BuildSummaryBlocks(summary *model.Summary) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType,
			"Helpdesk Summary – "+summary.Date.Format("2006-01-02"), false, false)),
		slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*%d* open tickets", summary.Total), false, false)),
	}

	var priorities strings.Builder
	priorities.WriteString("*Ticket Priorities*")
	for _, p := range summary.Priorities {
		fmt.Fprintf(&priorities, "\n%s: %d", escape(p.Label), p.Count)
	}
	blocks = append(blocks, markdownSection(priorities.String()))

	var statuses strings.Builder
	statuses.WriteString("*Ticket Statuses*")
	for _, st := range summary.Statuses {
		fmt.Fprintf(&statuses, "\n%s: %d", escape(st.Label), st.Count)
	}
	blocks = append(blocks, markdownSection(statuses.String()), slack.NewDividerBlock())

	for i, agent := range summary.Agents {
		if i == maxAgentBlocks {
			blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("…and %d more assignees", len(summary.Agents)-maxAgentBlocks), false, false)))
			break
		}

		var b strings.Builder
		fmt.Fprintf(&b, "*%s*", escape(agent.Name))
		for _, st := range agent.Statuses {
			fmt.Fprintf(&b, "\n• %s: %d", escape(st.Label), st.Count)
		}
		blocks = append(blocks, markdownSection(b.String()))
	}

	return blocks
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return mrkdwnEscaper.Replace(s)
}
