// Package renderer turns tournament reports into markdown.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/tourney"
)

//go:embed templates/*.md
var templates embed.FS

// parsed holds every template, each named after its file.
var parsed = template.Must(template.New("").Funcs(funcs).ParseFS(templates, "templates/*.md"))

// SummaryMarkdown renders a report: overall stats, the breakdown by format,
// the non-empty buy-in brackets and, when the report has one, the breakdown by period.
func SummaryMarkdown(r *tourney.Report) string {
	return renderTemplate("summary.md", newSummary(r))
}

// DetailsMarkdown renders one table row per record, in the given order.
func DetailsMarkdown(records []tourney.Record) string {
	return renderTemplate("details.md", records)
}

// RecordMarkdown renders the card shown after a tournament is added to the ledger.
func RecordMarkdown(r tourney.Record) string {
	return renderTemplate("record.md", r)
}

// SeriesMarkdown renders a cumulative series as a table.
func SeriesMarkdown(metric tourney.Metric, points []tourney.Point) string {
	return renderTemplate("series.md", struct {
		Title  string
		Points []tourney.Point
	}{seriesTitle(metric), points})
}

// renderTemplate executes a template by name. Errors are rendered in place of
// the document, a broken template being a programming error.
func renderTemplate(name string, data any) string {
	var b strings.Builder
	if err := parsed.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
