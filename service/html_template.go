package service

import (
	"strings"

	"github.com/ludo-technologies/cmreport/internal/config"
)

// ContentPlaceholder marks where the generated sections go in the document shell
const ContentPlaceholder = "{{CONTENT}}"

// Defaults for the document shell
const (
	DefaultHTMLTitle      = config.DefaultHTMLTitle
	DefaultHTMLStylesheet = config.DefaultHTMLStylesheet
)

const htmlShell = `<!doctype html>
<html lang='en'>
  <head>
    <meta charset='utf-8'>
    <meta name='viewport' content='width=device-width, initial-scale=1'>
    <link rel='stylesheet' href='{{STYLESHEET}}'>
    <title>{{TITLE}}</title>
  </head>
  <body>
    <main class='container'>
      {{CONTENT}}
    </main>
  </body>
</html>`

// HTMLTemplate is the fixed document shell wrapped around the report sections
type HTMLTemplate struct {
	Title      string
	Stylesheet string
}

// NewHTMLTemplate creates a template, falling back to the defaults for empty values.
func NewHTMLTemplate(title, stylesheet string) *HTMLTemplate {
	if strings.TrimSpace(title) == "" {
		title = DefaultHTMLTitle
	}
	if strings.TrimSpace(stylesheet) == "" {
		stylesheet = DefaultHTMLStylesheet
	}
	return &HTMLTemplate{Title: title, Stylesheet: stylesheet}
}

// Render substitutes content into the single placeholder of the shell.
// Neither the content nor the title is scanned for placeholders.
func (t *HTMLTemplate) Render(content string) string {
	head, tail, _ := strings.Cut(htmlShell, ContentPlaceholder)
	head = strings.NewReplacer(
		"{{TITLE}}", EscapeHTML(t.Title),
		"{{STYLESHEET}}", strings.ReplaceAll(EscapeHTML(t.Stylesheet), "'", "&#39;"),
	).Replace(head)
	return head + content + tail
}
