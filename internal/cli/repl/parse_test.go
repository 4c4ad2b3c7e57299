package repl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{"blank", "   ", Command{}},
		{"insert", "insert users name=John age=25",
			Command{Verb: VerbInsert, Collection: "users", Record: domain.RecordOf("name", "John", "age", "25")}},
		{"verb case-insensitive", "INSERT Users name=John",
			Command{Verb: VerbInsert, Collection: "Users", Record: domain.RecordOf("name", "John")}},
		{"value keeps later equals", "insert t expr=a=b",
			Command{Verb: VerbInsert, Collection: "t", Record: domain.RecordOf("expr", "a=b")}},
		{"empty value", "insert t note=",
			Command{Verb: VerbInsert, Collection: "t", Record: domain.RecordOf("note", "")}},
		{"repeated key", "insert t a=1 b=2 a=3",
			Command{Verb: VerbInsert, Collection: "t", Record: domain.RecordOf("a", "3", "b", "2")}},
		{"extra whitespace", "  select \t users  ", Command{Verb: VerbSelect, Collection: "users"}},
		{"select ignores extra tokens", "select users now", Command{Verb: VerbSelect, Collection: "users"}},
		{"exit", "Exit", Command{Verb: VerbExit}},
		{"help", "help", Command{Verb: VerbHelp}},
		{"history", "history", Command{Verb: VerbHistory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line  string
		kind  error
		token string
	}{
		{"insert", domain.ErrMissingArgument, ""},
		{"insert users", domain.ErrMissingArgument, ""},
		{"select", domain.ErrMissingArgument, ""},
		{"insert users name=John age", domain.ErrBadSyntax, "age"},
		{"insert users =John", domain.ErrBadSyntax, "=John"},
		{"delete users", domain.ErrUnknownCommand, "delete"},
		{"quit", domain.ErrUnknownCommand, "quit"},
		{"insert users name=J\xffohn", domain.ErrInvalidText, "name=J\xffohn"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.line, err, tt.kind)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) err is %T, want *ParseError", tt.line, err)
			}
			if perr.Token != tt.token {
				t.Errorf("Token = %q, want %q", perr.Token, tt.token)
			}
			if perr.Usage == "" {
				t.Error("Usage is empty")
			}
		})
	}
}

func TestParseRecord_AbandonsOnFirstBadToken(t *testing.T) {
	rec, err := ParseRecord([]string{"a=1", "broken", "b=2"})
	if err == nil {
		t.Fatal("ParseRecord succeeded")
	}
	if rec.Len() != 0 {
		t.Errorf("partial record returned: %v", rec)
	}
}
