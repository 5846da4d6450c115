// Output formatting and record field conventions shared by the commands.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

// displayName renders a collection name for notifications, e.g. "ansatte"
// becomes "Ansatte".
func displayName(resource string) string {
	if resource == "" {
		return resource
	}
	return strings.ToUpper(resource[:1]) + resource[1:]
}

// recordID reads the conventional id field. JSON decoding delivers numbers
// as float64.
func recordID(record map[string]any) int64 {
	switch id := record["id"].(type) {
	case float64:
		return int64(id)
	case int64:
		return id
	case json.Number:
		n, _ := id.Int64()
		return n
	}
	return 0
}

// recordLabel reads the conventional display fields: "navn" first, then the
// employee name pair.
func recordLabel(record map[string]any) string {
	if navn, ok := record["navn"].(string); ok && navn != "" {
		return navn
	}
	fornavn, _ := record["fornavn"].(string)
	etternavn, _ := record["etternavn"].(string)
	return strings.TrimSpace(fornavn + " " + etternavn)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecords renders a table with the id column first and the remaining
// columns sorted by name.
func printRecords(records []map[string]any) {
	if len(records) == 0 {
		fmt.Println("ingen treff")
		return
	}

	columns := recordColumns(records)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, record := range records {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = renderCell(record[col])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

func printRecord(record map[string]any) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, col := range recordColumns([]map[string]any{record}) {
		fmt.Fprintf(w, "%s\t%s\n", col, renderCell(record[col]))
	}
	w.Flush()
}

func recordColumns(records []map[string]any) []string {
	seen := make(map[string]bool)
	for _, record := range records {
		for key := range record {
			seen[key] = true
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		if key != "id" {
			columns = append(columns, key)
		}
	}
	sort.Strings(columns)
	if seen["id"] {
		columns = append([]string{"id"}, columns...)
	}
	return columns
}

func renderCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case float64:
		if value == math.Trunc(value) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%g", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
