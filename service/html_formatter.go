package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ludo-technologies/cmreport/domain"
)

// HTMLFormatterImpl renders a report as a single HTML document with colour-coded tables
type HTMLFormatterImpl struct {
	template *HTMLTemplate
}

// NewHTMLFormatter creates an HTML formatter using the given document shell.
// A nil template uses the default title and stylesheet.
func NewHTMLFormatter(template *HTMLTemplate) *HTMLFormatterImpl {
	if template == nil {
		template = NewHTMLTemplate("", "")
	}
	return &HTMLFormatterImpl{template: template}
}

// Format renders the full document
func (f *HTMLFormatterImpl) Format(report *domain.Report) (string, error) {
	if report == nil {
		return "", domain.NewOutputError("nothing to format", nil)
	}
	return f.template.Render(f.FormatSections(report)), nil
}

// FormatSections renders only the section markup that goes inside the shell.
func (f *HTMLFormatterImpl) FormatSections(report *domain.Report) string {
	var b strings.Builder

	f.writeAssemblySection(&b, report)
	f.writeRecordTable(&b, "Metrics by Type", []string{"Type"}, report.Types, func(r domain.MetricRecord) []string {
		return []string{codeCell(r.FullName())}
	})
	f.writeRecordTable(&b, "Metrics by Member", []string{"Member", "Kind"}, report.Members, func(r domain.MetricRecord) []string {
		return []string{codeCell(r.FullName()), fmt.Sprintf("<td>%s</td>", EscapeHTML(string(r.Kind)))}
	})

	return b.String()
}

func (f *HTMLFormatterImpl) writeAssemblySection(b *strings.Builder, report *domain.Report) {
	writeHeading(b, "Assembly Metrics", 3)
	writeParagraph(b, fmt.Sprintf("Assembly: <code>%s %s</code>",
		EscapeHTML(report.Assembly.Name), EscapeHTML(report.Assembly.Version)))
	for _, m := range report.AssemblyMetrics {
		writeParagraph(b, fmt.Sprintf("%s: <code>%s</code>", EscapeHTML(m.Name), FormatNumber(m.Value)))
	}
}

func (f *HTMLFormatterImpl) writeRecordTable(b *strings.Builder, title string, leading []string, records []domain.MetricRecord, leadingCells func(domain.MetricRecord) []string) {
	writeHeading(b, title, 3)

	b.WriteString("<table>\n")
	b.WriteString("<tr>\n")
	for _, col := range append(append([]string{}, leading...), metricColumnTitles...) {
		fmt.Fprintf(b, "<th><b>%s</b></th>\n", col)
	}
	b.WriteString("</tr>\n")

	for _, r := range records {
		b.WriteString("<tr>\n")
		for _, cell := range leadingCells(r) {
			b.WriteString(cell + "\n")
		}
		for _, kind := range domain.MetricKinds {
			b.WriteString(metricCell(kind, r.Metrics.Value(kind)) + "\n")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>\n")
}

// metricCell renders one metric value with its severity colour as background.
func metricCell(kind domain.MetricKind, value int) string {
	color := domain.Classify(kind, value).Color()
	return "<td style='background-color: " + color + ";'>" + strconv.Itoa(value) + "</td>"
}

func codeCell(text string) string {
	return "<td><code>" + EscapeHTML(text) + "</code></td>"
}

func writeHeading(b *strings.Builder, title string, level int) {
	fmt.Fprintf(b, "<h%d>%s</h%d>\n", level, EscapeHTML(title), level)
}

func writeParagraph(b *strings.Builder, content string) {
	b.WriteString("<p>" + content + "</p>\n")
}
