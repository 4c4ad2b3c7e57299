// Package repl is the interactive front end of minidb.
//
//   - parse.go: line tokenizer and command parser
//   - repl.go: read-eval-print loop over a Store
//   - completer.go: verb suggestions for mistyped commands
//   - history.go: command history, optionally persisted
//
// The store never writes to the terminal; every message the user sees
// is printed here.
package repl
