package repl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yndnr/minidb-go/internal/core/domain"
)

// Verb names a REPL command.
type Verb string

const (
	VerbInsert  Verb = "insert"
	VerbSelect  Verb = "select"
	VerbExit    Verb = "exit"
	VerbHelp    Verb = "help"
	VerbHistory Verb = "history"
)

// Verbs lists the commands the REPL understands, in help order.
var Verbs = []Verb{VerbInsert, VerbSelect, VerbExit, VerbHelp, VerbHistory}

const (
	usageInsert = "Usage: insert <collection> <key=value> <key=value> ..."
	usageSelect = "Usage: select <collection>"
)

// Command is a parsed input line. A zero Command means a blank line.
type Command struct {
	Verb       Verb
	Collection string
	Record     domain.Record
}

// ParseError describes input the REPL cannot run. It unwraps to one of
// domain.ErrBadSyntax, domain.ErrUnknownCommand or domain.ErrMissingArgument.
type ParseError struct {
	Kind    *domain.DomainError
	Message string
	Usage   string

	// Token is the offending input word, if any.
	Token string
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Parse tokenizes line on whitespace and builds a Command. The verb is
// case-insensitive; collection names and fields are kept as typed.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, nil
	}

	verb := Verb(strings.ToLower(tokens[0]))
	args := tokens[1:]

	switch verb {
	case VerbInsert:
		if len(args) < 2 {
			return Command{}, &ParseError{
				Kind:    domain.ErrMissingArgument,
				Message: "insert requires a collection name and at least one key=value pair",
				Usage:   usageInsert,
			}
		}
		rec, err := ParseRecord(args[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: verb, Collection: args[0], Record: rec}, nil

	case VerbSelect:
		if len(args) < 1 {
			return Command{}, &ParseError{
				Kind:    domain.ErrMissingArgument,
				Message: "select requires a collection name",
				Usage:   usageSelect,
			}
		}
		return Command{Verb: verb, Collection: args[0]}, nil

	case VerbExit, VerbHelp, VerbHistory:
		return Command{Verb: verb}, nil

	default:
		return Command{}, &ParseError{
			Kind:    domain.ErrUnknownCommand,
			Message: fmt.Sprintf("unknown command: '%s'", tokens[0]),
			Usage:   "Valid commands: " + verbList(),
			Token:   tokens[0],
		}
	}
}

// ParseRecord turns key=value tokens into a record. Each token is split
// on its first '='; both sides are trimmed. A repeated key keeps its
// first position and takes the last value.
func ParseRecord(args []string) (domain.Record, error) {
	var rec domain.Record
	for _, arg := range args {
		if !utf8.ValidString(arg) {
			return domain.Record{}, &ParseError{
				Kind:    domain.ErrInvalidText,
				Message: fmt.Sprintf("invalid text: %q is not valid UTF-8", arg),
				Usage:   usageInsert,
				Token:   arg,
			}
		}
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return domain.Record{}, &ParseError{
				Kind:    domain.ErrBadSyntax,
				Message: fmt.Sprintf("invalid format: '%s', expected key=value", arg),
				Usage:   usageInsert,
				Token:   arg,
			}
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return domain.Record{}, &ParseError{
				Kind:    domain.ErrBadSyntax,
				Message: fmt.Sprintf("invalid format: '%s', field name is empty", arg),
				Usage:   usageInsert,
				Token:   arg,
			}
		}
		rec.Set(name, strings.TrimSpace(value))
	}
	return rec, nil
}

func verbList() string {
	names := make([]string, len(Verbs))
	for i, v := range Verbs {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
