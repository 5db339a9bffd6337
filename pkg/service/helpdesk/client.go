package helpdesk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/interfaces"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
	"github.com/secmon-lab/deskdigest/pkg/domain/types"
)

// Error tags for categorization
var (
	ErrTagHTTPStatus = goerr.NewTag("http_status")
	ErrTagMalformed  = goerr.NewTag("malformed_response")
)

const (
	// PageSize is the number of tickets requested per page. A shorter page
	// is taken as the last one.
	PageSize = 100

	// updatedSince requests every ticket regardless of age
	updatedSince = "1970-01-01T00:00:00Z"

	// apiPassword is sent with the API key; the helpdesk ignores it
	apiPassword = "X"

	defaultTimeout = 30 * time.Second
)

// Client reads tickets, statuses, and agents from the helpdesk REST API
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	closedStatuses []string
}

var _ interfaces.Helpdesk = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the https://{domain} base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithClosedStatuses sets the labels of statuses excluded from open tickets
func WithClosedStatuses(labels []string) Option {
	return func(c *Client) {
		c.closedStatuses = labels
	}
}

// New creates a client for the helpdesk hosted at domain
func New(domain, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:        "https://" + domain,
		apiKey:         apiKey,
		httpClient:     &http.Client{Timeout: defaultTimeout},
		closedStatuses: model.DefaultClosedStatuses,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchStatusCatalog returns the choices of the ticket status field, or an
// empty catalog if the helpdesk reports no status field
func (c *Client) FetchStatusCatalog(ctx context.Context) (model.StatusCatalog, error) {
	var fields []ticketField
	if err := c.get(ctx, "/api/v2/ticket_fields", nil, &fields); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch ticket fields")
	}

	for i := range fields {
		if !fields[i].isStatus() {
			continue
		}
		catalog, err := fields[i].statusCatalog()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read status field",
				goerr.V("label", fields[i].Label))
		}
		return catalog, nil
	}

	return model.StatusCatalog{}, nil
}

// FetchOpenTickets pages through all tickets and keeps those whose status is
// not closed according to statuses
func (c *Client) FetchOpenTickets(ctx context.Context, statuses model.StatusCatalog) ([]*model.Ticket, error) {
	open := statuses.OpenCodes(c.closedStatuses)

	var tickets []*model.Ticket
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("updated_since", updatedSince)
		query.Set("per_page", strconv.Itoa(PageSize))
		query.Set("page", strconv.Itoa(page))

		var payloads []ticketPayload
		if err := c.get(ctx, "/api/v2/tickets", query, &payloads); err != nil {
			return nil, goerr.Wrap(err, "failed to fetch tickets", goerr.V("page", page))
		}

		for i := range payloads {
			ticket, err := payloads[i].toModel()
			if err != nil {
				return nil, goerr.Wrap(err, "invalid ticket", goerr.V("page", page))
			}
			if _, ok := open[ticket.Status]; ok {
				tickets = append(tickets, ticket)
			}
		}

		if len(payloads) < PageSize {
			break
		}
	}

	ctxlog.From(ctx).Info("Total active tickets", "count", len(tickets))
	return tickets, nil
}

// FetchAgents returns the display name of every agent
func (c *Client) FetchAgents(ctx context.Context) (model.AgentCatalog, error) {
	var payloads []agentPayload
	if err := c.get(ctx, "/api/v2/agents", nil, &payloads); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch agents")
	}

	agents := make(model.AgentCatalog, len(payloads))
	for _, a := range payloads {
		if a.Contact == nil {
			return nil, goerr.New("agent has no contact",
				goerr.V("agent_id", a.ID),
				goerr.T(ErrTagMalformed))
		}
		agents[types.AgentID(a.ID)] = a.Contact.Name
	}
	return agents, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", endpoint))
	}
	req.SetBasicAuth(c.apiKey, apiPassword)
	req.Header.Set("Content-Type", "application/json")

	ctxlog.From(ctx).Debug("Requesting helpdesk API", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "helpdesk request failed", goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("unexpected status from helpdesk API",
			goerr.V("url", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.T(ErrTagHTTPStatus))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode helpdesk response",
			goerr.V("url", endpoint),
			goerr.T(ErrTagMalformed))
	}
	return nil
}
