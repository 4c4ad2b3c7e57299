package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

var rule = strings.Repeat("-", 50)

// ListFormatter renders records as numbered {name: value} lines between
// two rules, headed by the collection name and count.
type ListFormatter struct{}

// Format renders data as a list.
func (f *ListFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case RecordSet:
		if len(v.Records) == 0 {
			return writeEmpty(w, v.Collection)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Records in '%s' (%d total):\n", v.Collection, len(v.Records))
		b.WriteString(rule + "\n")
		for i, r := range v.Records {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r)
		}
		b.WriteString(rule + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	case CollectionList:
		if len(v) == 0 {
			_, err := fmt.Fprintln(w, "No collections.")
			return err
		}
		var b strings.Builder
		for _, c := range v {
			fmt.Fprintf(&b, "%s (%d)\n", c.Name, c.Records)
		}
		_, err := io.WriteString(w, b.String())
		return err
	case domain.Record:
		_, err := fmt.Fprintln(w, v)
		return err
	case *Table:
		return v.RenderWithOptions(w, false)
	default:
		return fmt.Errorf("output: list cannot render %T", data)
	}
}
