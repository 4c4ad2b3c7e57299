package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/minidb-go/internal/core/domain"
	"github.com/yndnr/minidb-go/internal/infra/buildinfo"
)

const envKey = "env"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "minidb",
		Usage:                "minimal persistent record store",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Before:               before,
		After:                after,
		Action:               runREPL,
		Commands: []*cli.Command{
			REPLCommand(),
			InsertCommand(),
			SelectCommand(),
			CollectionsCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the flags shared by every command. Each one
// overrides the matching configuration key when set.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"MINIDB_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "snapshot file (storage.path)",
		},
		&cli.StringFlag{
			Name:  "on-commit-failure",
			Usage: "rollback or keep (storage.on_commit_failure)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, list, json, yaml (cli.output)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn, error (log.level)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "text or json (log.format)",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "serve Prometheus metrics on this address while the shell runs (metrics.addr)",
		},
		&cli.StringFlag{
			Name:  "history-file",
			Usage: "file keeping shell history between sessions (cli.history_file)",
		},
	}
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"data":              "storage.path",
	"on-commit-failure": "storage.on_commit_failure",
	"output":            "cli.output",
	"log-level":         "log.level",
	"log-format":        "log.format",
	"metrics-addr":      "metrics.addr",
	"history-file":      "cli.history_file",
}

// flagOverrides collects the flags set on the command line.
func flagOverrides(c *cli.Context) map[string]any {
	out := make(map[string]any)
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			out[key] = c.String(flag)
		}
	}
	return out
}

func before(c *cli.Context) error {
	e, err := newEnv(c.String("config"), flagOverrides(c), c.App.ErrWriter)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[envKey] = e
	return nil
}

func after(c *cli.Context) error {
	if e := getEnv(c); e != nil {
		return e.shutdown.Shutdown()
	}
	return nil
}

func getEnv(c *cli.Context) *env {
	e, _ := c.App.Metadata[envKey].(*env)
	return e
}

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps err to the process exit status: ExitUsage when the input
// was at fault, ExitFailure otherwise.
func ExitCode(err error) int {
	if domain.IsCallerError(err) {
		return ExitUsage
	}
	return ExitFailure
}

// PrintError prints an error message to stderr.
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}
