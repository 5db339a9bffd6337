package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/deskdigest/pkg/cli"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
)

func newHelpdeskServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/ticket_fields", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"type":"default_status","label":"Status","choices":{"2":["Open"],"3":["Pending"],"4":["Resolved"]}}]`)
	})
	mux.HandleFunc("/api/v2/tickets", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id":1,"status":2,"priority":3,"responder_id":7},
			{"id":2,"status":4,"priority":1,"responder_id":null},
			{"id":3,"status":3,"priority":2,"responder_id":null}
		]`)
	})
	mux.HandleFunc("/api/v2/agents", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":7,"contact":{"name":"Alice"}}]`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPreview(t *testing.T) {
	srv := newHelpdeskServer(t)
	ctx := context.Background()

	t.Run("prints HTML", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunWithWriters(ctx, &buf, io.Discard, []string{
			"deskdigest", "--log-format", "json",
			"--helpdesk-url", srv.URL, "--helpdesk-api-key", "key",
			"preview",
		})
		gt.NoError(t, err).Required()

		out := buf.String()
		gt.S(t, out).Contains("High: 1<br>")
		gt.S(t, out).Contains("Open: 1<br>")
		gt.S(t, out).Contains("Pending: 1<br>")
		gt.S(t, out).Contains("<u>Alice:</u>")
		gt.S(t, out).Contains("<u>Unassigned:</u>")
	})

	t.Run("prints text with closed statuses from the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deskdigest.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("closed_statuses:\n  - Resolved\n  - Pending\n"), 0o600)).Required()

		var buf bytes.Buffer
		err := cli.RunWithWriters(ctx, &buf, io.Discard, []string{
			"deskdigest", "--log-format", "json",
			"--helpdesk-url", srv.URL, "--helpdesk-api-key", "key",
			"--config", path,
			"preview", "--format", "text",
		})
		gt.NoError(t, err).Required()

		out := buf.String()
		gt.S(t, out).Contains("Open tickets: 1")
		gt.S(t, out).Contains("Alice:\n- Open: 1")
		gt.False(t, bytes.Contains(buf.Bytes(), []byte("Pending")))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunWithWriters(ctx, &buf, io.Discard, []string{
			"deskdigest", "--log-format", "json",
			"--helpdesk-url", srv.URL, "--helpdesk-api-key", "key",
			"preview", "--format", "pdf",
		})
		gt.Error(t, err)
	})
}

func TestPreviewKeepsLogsOffStdout(t *testing.T) {
	srv := newHelpdeskServer(t)

	var stdout, stderr bytes.Buffer
	err := cli.RunWithWriters(context.Background(), &stdout, &stderr, []string{
		"deskdigest", "--log-format", "json",
		"--helpdesk-url", srv.URL, "--helpdesk-api-key", "key",
		"preview",
	})
	gt.NoError(t, err).Required()

	out := stdout.String()
	gt.True(t, strings.HasPrefix(out, "<b>Helpdesk Summary – "))
	gt.True(t, strings.HasSuffix(out, "- Pending: 1<br>\n"))
	gt.False(t, strings.Contains(out, "Total active tickets"))
	gt.False(t, strings.Contains(out, `"level"`))

	gt.S(t, stderr.String()).Contains(`"msg":"Total active tickets"`)
}

func TestSendRequiresSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("missing API key", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunWithWriters(ctx, &buf, io.Discard, []string{
			"deskdigest", "--log-format", "json",
			"--helpdesk-domain", "example.helpdesk.test",
			"--email-sender", "sender@example.com",
			"--email-password", "secret",
			"--email-recipients", "a@example.com",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrMissingSetting))
	})

	t.Run("missing recipients", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunWithWriters(ctx, &buf, io.Discard, []string{
			"deskdigest", "--log-format", "json",
			"--helpdesk-domain", "example.helpdesk.test",
			"--helpdesk-api-key", "key",
			"--email-sender", "sender@example.com",
			"--email-password", "secret",
			"send",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrMissingSetting))
		gt.S(t, err.Error()).Contains("no email recipients")
	})

	t.Run("missing config file", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunWithWriters(ctx, &buf, io.Discard, []string{
			"deskdigest", "--log-format", "json",
			"--config", filepath.Join(t.TempDir(), "absent.yaml"),
			"send",
		})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("configuration file not found")
	})
}
