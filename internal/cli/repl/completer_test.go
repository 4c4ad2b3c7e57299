package repl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter()

	tests := []struct {
		prefix string
		want   []string
	}{
		{"ins", []string{"insert"}},
		{"h", []string{"help", "history"}},
		{"SEL", []string{"select"}},
		{"", []string{"insert", "select", "exit", "help", "history"}},
		{"xyz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, c.Complete(tt.prefix)); diff != "" {
				t.Errorf("Complete(%q) (-want +got):\n%s", tt.prefix, diff)
			}
		})
	}
}

func TestCompleter_Suggest(t *testing.T) {
	c := NewCompleter()

	tests := []struct {
		word string
		want []string
	}{
		{"sel", []string{"select"}},
		{"selct", []string{"select"}},
		{"slect", []string{"select"}},
		{"inesrt", []string{"insert"}},
		{"exti", []string{"exit"}},
		{"exits", []string{"exit"}},
		{"drop", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, c.Suggest(tt.word)); diff != "" {
				t.Errorf("Suggest(%q) (-want +got):\n%s", tt.word, diff)
			}
		})
	}
}
