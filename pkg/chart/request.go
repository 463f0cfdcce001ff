// Package chart provides functionality for fetching static chart images for
// NRQL queries. It builds the NerdGraph GraphQL document, executes the query,
// and extracts the result rows and the rendered chart URL.
package chart

import (
	"fmt"
	"strings"
)

// Chart types accepted by the staticChartUrl field.
const (
	ChartTypeArea                 = "AREA"
	ChartTypeBar                  = "BAR"
	ChartTypeBaseline             = "BASELINE"
	ChartTypeBillboard            = "BILLBOARD"
	ChartTypeBullet               = "BULLET"
	ChartTypeEventFeed            = "EVENT_FEED"
	ChartTypeFunnel               = "FUNNEL"
	ChartTypeHeatmap              = "HEATMAP"
	ChartTypeHistogram            = "HISTOGRAM"
	ChartTypeJSON                 = "JSON"
	ChartTypeLine                 = "LINE"
	ChartTypeMarkdown             = "MARKDOWN"
	ChartTypePie                  = "PIE"
	ChartTypeScatter              = "SCATTER"
	ChartTypeStackedHorizontalBar = "STACKED_HORIZONTAL_BAR"
	ChartTypeTable                = "TABLE"
	ChartTypeVerticalBar          = "VERTICAL_BAR"
)

// Image formats accepted by the staticChartUrl field.
const (
	FormatPNG = "PNG"
	FormatPDF = "PDF"
)

// Default rendering options.
const (
	DefaultChartType = ChartTypeLine
	DefaultFormat    = FormatPNG
	DefaultWidth     = 400
	DefaultHeight    = 200
)

// ValidChartTypes lists the chart types the API accepts.
var ValidChartTypes = map[string]bool{
	ChartTypeArea:                 true,
	ChartTypeBar:                  true,
	ChartTypeBaseline:             true,
	ChartTypeBillboard:            true,
	ChartTypeBullet:               true,
	ChartTypeEventFeed:            true,
	ChartTypeFunnel:               true,
	ChartTypeHeatmap:              true,
	ChartTypeHistogram:            true,
	ChartTypeJSON:                 true,
	ChartTypeLine:                 true,
	ChartTypeMarkdown:             true,
	ChartTypePie:                  true,
	ChartTypeScatter:              true,
	ChartTypeStackedHorizontalBar: true,
	ChartTypeTable:                true,
	ChartTypeVerticalBar:          true,
}

// ValidFormats lists the image formats the API accepts.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatPDF: true,
}

// Options holds the chart rendering parameters. Chart type and format are
// interpolated into the GraphQL document as enum values, so both are checked
// against the closed sets above before a document is built.
type Options struct {
	ChartType string
	Format    string
	Width     int
	Height    int
}

// DefaultOptions returns the rendering defaults: a 400x200 LINE chart as PNG.
func DefaultOptions() Options {
	return Options{
		ChartType: DefaultChartType,
		Format:    DefaultFormat,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}
}

// Request describes one chart fetch: the NRQL query to run and how to render it.
type Request struct {
	Query   string
	Options Options
}

// NewRequest builds a Request for query with default rendering options.
func NewRequest(query string) *Request {
	return &Request{Query: query, Options: DefaultOptions()}
}

// nrqlEscaper rewrites an NRQL query into a valid GraphQL string literal.
// All escapes are applied in a single pass, so escaping is never doubled.
var nrqlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeQuery returns query as a GraphQL string literal body.
func EscapeQuery(query string) string {
	return nrqlEscaper.Replace(query)
}

// documentTemplate is the NerdGraph document shape for a static chart fetch.
const documentTemplate = `{
  actor {
    account(id: %d) {
      id
      nrql(query: "%s") {
        results
        staticChartUrl(chartType: %s, format: %s, width: %d, height: %d)
      }
    }
  }
}`

// Document renders the GraphQL document for this request against accountID.
// The NRQL query is escaped; chart type and format must already be validated
// enum values.
func (r *Request) Document(accountID int) string {
	return fmt.Sprintf(documentTemplate,
		accountID,
		EscapeQuery(r.Query),
		r.Options.ChartType,
		r.Options.Format,
		r.Options.Width,
		r.Options.Height,
	)
}
