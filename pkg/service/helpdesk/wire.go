package helpdesk

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/secmon-lab/deskdigest/pkg/domain/types"
)

const statusFieldType = "default_status"

// ticketField is a ticket field descriptor from /api/v2/ticket_fields.
// Choices differ in shape between fields, so they are decoded lazily.
type ticketField struct {
	Type    string          `json:"type"`
	Label   string          `json:"label"`
	Choices json.RawMessage `json:"choices"`
}

func (f *ticketField) isStatus() bool {
	return f.Type == statusFieldType || f.Label == "Status"
}

// choiceLabel is a status label as sent by the API: either a plain string or
// a list whose first element is the display text.
type choiceLabel struct {
	plain   string
	choices []string
}

// UnmarshalJSON accepts a string or a non-empty list of strings
func (l *choiceLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return goerr.New("empty status label", goerr.T(ErrTagMalformed))
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return goerr.Wrap(err, "failed to decode status label", goerr.T(ErrTagMalformed))
		}
		*l = choiceLabel{plain: s}
		return nil

	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return goerr.Wrap(err, "failed to decode status label list", goerr.T(ErrTagMalformed))
		}
		if len(list) == 0 {
			return goerr.New("status label list is empty", goerr.T(ErrTagMalformed))
		}
		*l = choiceLabel{choices: list}
		return nil

	default:
		return goerr.New("unsupported status label shape",
			goerr.V("label", string(data)),
			goerr.T(ErrTagMalformed))
	}
}

// Text returns the normalized display label
func (l choiceLabel) Text() string {
	if len(l.choices) > 0 {
		return strings.TrimSpace(l.choices[0])
	}
	return l.plain
}

func (f *ticketField) statusCatalog() (model.StatusCatalog, error) {
	catalog := model.StatusCatalog{}
	if len(f.Choices) == 0 || string(f.Choices) == "null" {
		return catalog, nil
	}

	var choices map[string]choiceLabel
	if err := json.Unmarshal(f.Choices, &choices); err != nil {
		return nil, goerr.Wrap(err, "failed to decode status choices", goerr.T(ErrTagMalformed))
	}

	for key, label := range choices {
		code, err := types.ParseStatusCode(key)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid status choice key", goerr.T(ErrTagMalformed))
		}
		catalog[code] = label.Text()
	}
	return catalog, nil
}

type ticketPayload struct {
	ID          int64  `json:"id"`
	Status      *int   `json:"status"`
	Priority    *int   `json:"priority"`
	ResponderID *int64 `json:"responder_id"`
}

func (p *ticketPayload) toModel() (*model.Ticket, error) {
	if p.Status == nil {
		return nil, goerr.New("ticket has no status",
			goerr.V("ticket_id", p.ID),
			goerr.T(ErrTagMalformed))
	}

	ticket := &model.Ticket{
		ID:       types.TicketID(p.ID),
		Status:   types.StatusCode(*p.Status),
		Priority: types.DefaultPriority,
	}
	if p.Priority != nil {
		ticket.Priority = types.Priority(*p.Priority)
	}
	if p.ResponderID != nil {
		id := types.AgentID(*p.ResponderID)
		ticket.ResponderID = &id
	}
	return ticket, nil
}

type agentPayload struct {
	ID      int64 `json:"id"`
	Contact *struct {
		Name string `json:"name"`
	} `json:"contact"`
}
