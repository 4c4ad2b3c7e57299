package command

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect the effective configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the merged configuration (defaults, file, environment, flags)",
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "[FILE]",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	e := getEnv(c)
	switch e.format() {
	case output.FormatJSON, output.FormatYAML:
		return e.formatter().Format(c.App.Writer, e.cfg)
	default:
		return e.formatter().Format(c.App.Writer, configTable(e.cfg))
	}
}

// configValidate checks FILE, or the file given with --config. The
// global configuration has already been verified by the time it runs.
func configValidate(c *cli.Context) error {
	file := c.Args().First()
	if file == "" {
		file = getEnv(c).loader.FilePath()
	}
	if file == "" {
		_, err := fmt.Fprintln(c.App.Writer, "No configuration file given; defaults and environment are valid.")
		return err
	}
	if _, err := config.Load(file, nil); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.App.Writer, "%s: OK\n", file)
	return err
}

func configTable(cfg *config.Config) *output.Table {
	m := cfg.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		v := fmt.Sprint(m[k])
		if v == "" {
			v = "-"
		}
		t.AddRow(k, v)
	}
	return t
}
