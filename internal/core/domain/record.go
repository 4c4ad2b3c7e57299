package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Field is one name/value pair of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered mapping from field name to field value.
//
// Field order follows first insertion and is kept for display only;
// Equal ignores it. No schema is enforced: two records of the same
// collection may carry different field sets.
//
// The zero value is an empty record ready to use.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields. A repeated name keeps its first
// position and takes the last value.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// RecordOf builds a record from alternating name, value arguments.
// It panics on an odd argument count; it is meant for literals and tests.
func RecordOf(pairs ...string) Record {
	if len(pairs)%2 != 0 {
		panic("domain: RecordOf needs an even number of arguments")
	}
	var r Record
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set assigns value to name. An existing field is updated in place.
func (r *Record) Set(name, value string) {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Get returns the value of name and whether it is present.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the fields in display order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Names returns the field names in display order.
func (r Record) Names() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Clone returns a record that shares no memory with r.
func (r Record) Clone() Record {
	if r.fields == nil {
		return Record{}
	}
	return Record{fields: r.Fields()}
}

// Equal reports whether r and o hold the same name/value pairs,
// regardless of order.
func (r Record) Equal(o Record) bool {
	if len(r.fields) != len(o.fields) {
		return false
	}
	for _, f := range r.fields {
		v, ok := o.Get(f.Name)
		if !ok || v != f.Value {
			return false
		}
	}
	return true
}

// String renders the record as {name: value, ...} in display order.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// LogValue implements slog.LogValuer so records log as a group of fields.
func (r Record) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(r.fields))
	for i, f := range r.fields {
		attrs[i] = slog.String(f.Name, f.Value)
	}
	return slog.GroupValue(attrs...)
}

// Validate reports the first field whose name or value is not valid
// UTF-8. Such text cannot be stored without being altered.
func (r Record) Validate() error {
	for _, f := range r.fields {
		if !utf8.ValidString(f.Name) {
			return ErrInvalidText.WithDetailsf("field name %q", f.Name)
		}
		if !utf8.ValidString(f.Value) {
			return ErrInvalidText.WithDetailsf("value of field %q", f.Name)
		}
	}
	return nil
}

// MarshalJSON encodes the record as a JSON object, fields in display order.
// HTML characters are written as is.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(f.Name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := enc.Encode(f.Value); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object whose values are all strings.
// Any other shape (null, arrays, numbers, nested objects) is rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected object, got %v", tok)
	}

	var out Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: unexpected key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		value, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: field %q: value must be a string", name)
		}
		out.Set(name, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// MarshalYAML encodes the record as a YAML mapping in display order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r.fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node, nil
}
