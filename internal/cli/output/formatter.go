package output

import (
	"io"
	"slices"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatList  Format = "list"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatTable, FormatList, FormatJSON, FormatYAML}

// Formats returns the supported format names.
func Formats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// ValidFormat reports whether name is a supported format.
func ValidFormat(name string) bool {
	return slices.Contains(formats, Format(name))
}

// Formatter writes data to w.
//
// Every formatter accepts RecordSet, CollectionList, domain.Record and
// *Table. JSON and YAML formatters also accept any value their encoder
// can handle.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format. Unknown names fall back
// to the table formatter.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatList:
		return &ListFormatter{}
	default:
		return &TableFormatter{}
	}
}

// RecordSet is the result of selecting one collection.
type RecordSet struct {
	Collection string
	Records    []domain.Record
}

// CollectionInfo summarizes one collection.
type CollectionInfo struct {
	Name    string `json:"name" yaml:"name"`
	Records int    `json:"records" yaml:"records"`
}

// CollectionList is the result of listing collections.
type CollectionList []CollectionInfo

// encodable maps result types to the value JSON and YAML encode.
func encodable(data any) any {
	switch v := data.(type) {
	case RecordSet:
		if v.Records == nil {
			return []domain.Record{}
		}
		return v.Records
	case *RecordSet:
		return encodable(*v)
	case CollectionList:
		if v == nil {
			return CollectionList{}
		}
		return v
	}
	return data
}
