package usecase

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/deskdigest/pkg/domain/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/summary.html.tmpl"))
	textTemplate = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/summary.txt.tmpl"))
)

// RenderReport renders the summary as HTML and as plain text
func RenderReport(summary *model.Summary, subject string) (*model.Report, error) {
	if summary == nil {
		return nil, goerr.New("summary is required")
	}
	if subject == "" {
		subject = model.DefaultSubject
	}

	var html bytes.Buffer
	if err := htmlTemplate.Execute(&html, summary); err != nil {
		return nil, goerr.Wrap(err, "failed to render HTML summary")
	}

	var text bytes.Buffer
	if err := textTemplate.Execute(&text, summary); err != nil {
		return nil, goerr.Wrap(err, "failed to render text summary")
	}

	return &model.Report{
		Subject: subject,
		HTML:    strings.TrimSpace(html.String()),
		Text:    strings.TrimSpace(text.String()),
		Summary: summary,
	}, nil
}
