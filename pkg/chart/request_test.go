package chart_test

import (
	"fmt"
	"strings"
	"testing"

	"nrql-chart-fetcher/pkg/chart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := chart.DefaultOptions()
	assert.Equal(t, "LINE", opts.ChartType)
	assert.Equal(t, "PNG", opts.Format)
	assert.Equal(t, 400, opts.Width)
	assert.Equal(t, 200, opts.Height)
}

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "plain query unchanged",
			in:       "SELECT count(*) FROM Transaction",
			expected: "SELECT count(*) FROM Transaction",
		},
		{
			name:     "double quotes escaped exactly once",
			in:       `SELECT count(*) FROM Transaction WHERE name = "web"`,
			expected: `SELECT count(*) FROM Transaction WHERE name = \"web\"`,
		},
		{
			name:     "backslash escaped before quote handling",
			in:       `WHERE path LIKE '%\temp%'`,
			expected: `WHERE path LIKE '%\\temp%'`,
		},
		{
			name:     "newline becomes literal escape",
			in:       "SELECT count(*)\nFROM Transaction",
			expected: `SELECT count(*)\nFROM Transaction`,
		},
		{
			name:     "tab and carriage return",
			in:       "a\tb\rc",
			expected: `a\tb\rc`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chart.EscapeQuery(tt.in))
		})
	}
}

func TestEscapeQueryNotDoubled(t *testing.T) {
	// A backslash-quote sequence in the input is two characters; each is
	// escaped independently, never collapsed or double-escaped.
	in := `already \" escaped`
	assert.Equal(t, `already \\\" escaped`, chart.EscapeQuery(in))
}

func TestRequestDocument(t *testing.T) {
	req := chart.NewRequest(`SELECT count(*) FROM Transaction WHERE appName = "todo-service"`)
	doc := req.Document(123456)

	expected := `{
  actor {
    account(id: 123456) {
      id
      nrql(query: "SELECT count(*) FROM Transaction WHERE appName = \"todo-service\"") {
        results
        staticChartUrl(chartType: LINE, format: PNG, width: 400, height: 200)
      }
    }
  }
}`
	assert.Equal(t, expected, doc)
}

func TestRequestDocumentOptions(t *testing.T) {
	req := &chart.Request{
		Query: "SELECT count(*) FROM Transaction FACET name",
		Options: chart.Options{
			ChartType: chart.ChartTypePie,
			Format:    chart.FormatPDF,
			Width:     800,
			Height:    600,
		},
	}
	doc := req.Document(42)

	require.Contains(t, doc, "account(id: 42)")
	assert.Contains(t, doc, "staticChartUrl(chartType: PIE, format: PDF, width: 800, height: 600)")
	assert.Equal(t, 1, strings.Count(doc, "staticChartUrl"))
}

func TestValidChartTypesAndFormats(t *testing.T) {
	for _, ct := range []string{"LINE", "BAR", "PIE", "AREA", "TABLE"} {
		assert.True(t, chart.ValidChartTypes[ct], fmt.Sprintf("chart type %s should be valid", ct))
	}
	assert.False(t, chart.ValidChartTypes["SPARKLINE"])

	assert.True(t, chart.ValidFormats["PNG"])
	assert.True(t, chart.ValidFormats["PDF"])
	assert.False(t, chart.ValidFormats["SVG"])
}
