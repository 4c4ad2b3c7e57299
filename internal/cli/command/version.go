package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print build information",
		Action: printVersion,
	}
}

func printVersion(c *cli.Context) error {
	e := getEnv(c)
	switch e.format() {
	case output.FormatJSON, output.FormatYAML:
		return e.formatter().Format(c.App.Writer, buildinfo.Get())
	default:
		_, err := fmt.Fprintf(c.App.Writer, "minidb %s\n", buildinfo.String())
		return err
	}
}
