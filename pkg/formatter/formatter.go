// Package formatter renders NRQL result rows for the console, either as
// pretty-printed JSON or as an aligned table.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Output formats supported by the CLI.
const (
	OutputJSON  = "json"
	OutputTable = "table"
)

// WriteJSON pretty-prints rows as JSON with 2-space indentation. HTML escaping
// is disabled so non-ASCII and markup characters come through unaltered.
func WriteJSON(w io.Writer, rows []interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// FormatJSON returns the pretty-printed JSON for rows as a string.
func FormatJSON(rows []interface{}) (string, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTable renders rows as an aligned table. Column headers are the sorted
// union of the row keys, so faceted and multi-attribute results line up even
// when rows are sparse. Rows that are not JSON objects fall back to a single
// "value" column.
func WriteTable(w io.Writer, rows []interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	headers := collectColumns(rows)
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	for _, row := range rows {
		obj, ok := row.(map[string]interface{})
		if !ok {
			cells := make([]string, len(headers))
			cells[0] = formatCell(row)
			table.Append(cells)
			continue
		}
		cells := make([]string, 0, len(headers))
		for _, h := range headers {
			cells = append(cells, formatCell(obj[h]))
		}
		table.Append(cells)
	}

	table.Render()
	return nil
}

// collectColumns returns the sorted union of keys across all object rows.
func collectColumns(rows []interface{}) []string {
	seen := map[string]bool{}
	for _, row := range rows {
		obj, ok := row.(map[string]interface{})
		if !ok {
			seen["value"] = true
			continue
		}
		for k := range obj {
			seen[k] = true
		}
	}

	headers := make([]string, 0, len(seen))
	for k := range seen {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	return headers
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		// Nested objects and arrays stay recognizable as JSON.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
