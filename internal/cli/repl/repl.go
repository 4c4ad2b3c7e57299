package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/core/domain"
)

// Prompt is printed before every input line.
const Prompt = "db> "

const historyShown = 20

// Store is the part of the record store the REPL drives.
type Store interface {
	Insert(collection string, rec domain.Record) (domain.Record, error)
	SelectAll(collection string) []domain.Record
}

// REPL reads commands line by line and runs them against a Store.
// Store calls happen on the goroutine that called Run.
type REPL struct {
	store     Store
	input     io.Reader
	output    io.Writer
	formatter output.Formatter
	completer *Completer
	history   *History
	logger    *slog.Logger
}

// Option configures a REPL.
type Option func(*REPL)

// WithInput sets the command source. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(repl *REPL) { repl.input = r }
}

// WithOutput sets where results and messages go. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(repl *REPL) { repl.output = w }
}

// WithFormatter sets the select result formatter. Defaults to a table.
func WithFormatter(f output.Formatter) Option {
	return func(repl *REPL) { repl.formatter = f }
}

// WithHistory sets the command history.
func WithHistory(h *History) Option {
	return func(repl *REPL) { repl.history = h }
}

// WithLogger sets the logger used for REPL diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(repl *REPL) { repl.logger = l }
}

// New creates a REPL over store.
func New(store Store, opts ...Option) *REPL {
	r := &REPL{
		store:     store,
		input:     os.Stdin,
		output:    os.Stdout,
		formatter: &output.TableFormatter{},
		completer: NewCompleter(),
		history:   NewHistory(""),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints the banner and serves commands until exit, end of input or
// ctx cancellation. Only an input read error is returned.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.history.Load(); err != nil {
		r.logger.Warn("history not loaded", "error", err)
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			r.logger.Warn("history not saved", "error", err)
		}
	}()

	r.printBanner()

	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go readLines(r.input, lines, readErr, stop)

	for {
		fmt.Fprint(r.output, Prompt)

		select {
		case <-ctx.Done():
			fmt.Fprint(r.output, "\n\nInterrupted. Goodbye!\n\n")
			return nil

		case line, ok := <-lines:
			if !ok {
				fmt.Fprint(r.output, "\nGoodbye! Your data has been saved.\n\n")
				return <-readErr
			}
			if r.Execute(line) {
				return nil
			}
		}
	}
}

// readLines feeds lines to out until EOF, a read error, or stop closes.
func readLines(in io.Reader, out chan<- string, errc chan<- error, stop <-chan struct{}) {
	defer close(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-stop:
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}

// Execute runs one input line and reports whether the REPL should stop.
func (r *REPL) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	r.history.Add(line)

	cmd, err := Parse(line)
	if err != nil {
		r.printError(err)
		return false
	}

	switch cmd.Verb {
	case VerbInsert:
		if _, err := r.store.Insert(cmd.Collection, cmd.Record); err != nil {
			r.printError(err)
			return false
		}
		fmt.Fprintf(r.output, "Record inserted into '%s'.\n", cmd.Collection)

	case VerbSelect:
		set := output.RecordSet{Collection: cmd.Collection, Records: r.store.SelectAll(cmd.Collection)}
		if err := r.formatter.Format(r.output, set); err != nil {
			r.printError(err)
		}

	case VerbHistory:
		recent := r.history.Recent(historyShown)
		first := r.history.Len() - len(recent) + 1
		for i, entry := range recent {
			fmt.Fprintf(r.output, "%4d  %s\n", first+i, entry)
		}

	case VerbHelp:
		r.printCommands()

	case VerbExit:
		fmt.Fprint(r.output, "\nGoodbye! Your data has been saved.\n\n")
		return true
	}
	return false
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.output, "Error: %v\n", err)

	var perr *ParseError
	if !errors.As(err, &perr) {
		return
	}
	if errors.Is(perr, domain.ErrUnknownCommand) {
		if s := r.completer.Suggest(perr.Token); len(s) > 0 {
			fmt.Fprintf(r.output, "   Did you mean: %s?\n", strings.Join(s, ", "))
		}
	}
	if perr.Usage != "" {
		fmt.Fprintf(r.output, "   %s\n", perr.Usage)
	}
}

var bannerRule = strings.Repeat("=", 60)

func (r *REPL) printBanner() {
	fmt.Fprintf(r.output, "\n%s\n  Welcome to MiniDB\n%s\n", bannerRule, bannerRule)
	r.printCommands()
}

func (r *REPL) printCommands() {
	fmt.Fprint(r.output, `
Available commands:
  insert <collection> <key=value> <key=value> ...
    Example: insert users name=John age=25 role=admin

  select <collection>
    Example: select users

  help | history
    Show this help, or recently entered commands

  exit
    Quit the database CLI
`)
	fmt.Fprintf(r.output, "\n%s\n\n", bannerRule)
}
