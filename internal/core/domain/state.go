package domain

import "sort"

// State is the entire durable content of a store: collection name to an
// append-only sequence of records in insertion order.
type State map[string][]Record

// NewState returns an empty state.
func NewState() State {
	return make(State)
}

// Collections returns the collection names in lexical order.
func (s State) Collections() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordCount returns the number of records across all collections.
func (s State) RecordCount() int {
	n := 0
	for _, records := range s {
		n += len(records)
	}
	return n
}

// Equal reports whether s and o hold the same collections with equal
// records in the same order.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for name, records := range s {
		other, ok := o[name]
		if !ok || len(other) != len(records) {
			return false
		}
		for i := range records {
			if !records[i].Equal(other[i]) {
				return false
			}
		}
	}
	return true
}

// CloneRecords deep-copies a record sequence. The result is never nil.
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
