package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

// missingCell fills a column the record has no field for.
const missingCell = "-"

// TableFormatter renders results as aligned columns.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders data as a table.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		return v.RenderWithOptions(w, f.NoHeaders)
	case RecordSet:
		if len(v.Records) == 0 {
			return writeEmpty(w, v.Collection)
		}
		return RecordTable(v.Records).RenderWithOptions(w, f.NoHeaders)
	case CollectionList:
		if len(v) == 0 {
			_, err := fmt.Fprintln(w, "No collections.")
			return err
		}
		t := &Table{Headers: []string{"COLLECTION", "RECORDS"}}
		for _, c := range v {
			t.AddRow(c.Name, strconv.Itoa(c.Records))
		}
		return t.RenderWithOptions(w, f.NoHeaders)
	case domain.Record:
		return RecordTable([]domain.Record{v}).RenderWithOptions(w, f.NoHeaders)
	default:
		return fmt.Errorf("output: table cannot render %T", data)
	}
}

// RecordTable builds a table whose columns are the union of the records'
// field names in first-seen order, preceded by a 1-based row number.
func RecordTable(records []domain.Record) *Table {
	var names []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, name := range r.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	t := &Table{Headers: append([]string{"#"}, names...)}
	for i, r := range records {
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, name := range names {
			v, ok := r.Get(name)
			if !ok {
				v = missingCell
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func writeEmpty(w io.Writer, collection string) error {
	_, err := fmt.Fprintf(w, "No records found in '%s'.\n", collection)
	return err
}

// Table is tabular text.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table with headers.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table, optionally without the header row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, cell)
	}
	io.WriteString(w, "\n")
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
