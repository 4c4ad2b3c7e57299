package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/yndnr/minidb-go/internal/cli/repl"
	"github.com/yndnr/minidb-go/internal/infra/shutdown"
)

// REPLCommand returns the interactive shell command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"shell"},
		Usage:   "Start the interactive shell (default)",
		Action:  runREPL,
	}
}

// runREPL serves the shell and, if configured, the metrics endpoint. The
// shell ending for any reason runs the shutdown hooks, which stop the
// metrics server and the config watcher.
func runREPL(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unknown command %q, see 'minidb help'", c.Args().First())
	}

	e := getEnv(c)
	store, err := e.openStore()
	if err != nil {
		return err
	}
	srv, err := e.startMetrics()
	if err != nil {
		return err
	}
	e.watchConfig()

	ctx, stop := shutdown.NotifyContext(c.Context)
	defer stop()

	shell := repl.New(store,
		repl.WithInput(c.App.Reader),
		repl.WithOutput(c.App.Writer),
		repl.WithFormatter(e.formatter()),
		repl.WithHistory(repl.NewHistory(e.cfg.CLI.HistoryFile)),
		repl.WithLogger(e.log.Slog()),
	)

	g, gctx := errgroup.WithContext(ctx)
	if srv != nil {
		g.Go(srv.Serve)
	}
	g.Go(func() error {
		defer e.shutdown.Shutdown()
		return shell.Run(gctx)
	})
	return g.Wait()
}
