package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/minidb-go/internal/cli/output"
	"github.com/yndnr/minidb-go/internal/cli/repl"
	"github.com/yndnr/minidb-go/internal/core/domain"
)

// InsertCommand returns the one-shot insert command.
func InsertCommand() *cli.Command {
	return &cli.Command{
		Name:      "insert",
		Usage:     "Insert one record and commit the snapshot",
		ArgsUsage: "<collection> <key=value> [key=value ...]",
		Action:    insertRecord,
	}
}

// SelectCommand returns the one-shot select command.
func SelectCommand() *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "Print every record of a collection",
		ArgsUsage: "<collection>",
		Action:    selectRecords,
	}
}

// CollectionsCommand returns the command listing collections.
func CollectionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "collections",
		Aliases: []string{"ls"},
		Usage:   "List collections and their record counts",
		Action:  listCollections,
	}
}

func insertRecord(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) < 2 {
		return domain.ErrMissingArgument.WithDetails("usage: minidb insert " + c.Command.ArgsUsage)
	}
	rec, err := repl.ParseRecord(args[1:])
	if err != nil {
		return err
	}

	e := getEnv(c)
	store, err := e.openStore()
	if err != nil {
		return err
	}
	if _, err := store.Insert(args[0], rec); err != nil {
		return err
	}

	switch e.format() {
	case output.FormatJSON, output.FormatYAML:
		return e.formatter().Format(c.App.Writer, rec)
	default:
		_, err := fmt.Fprintf(c.App.Writer, "Record inserted into '%s'.\n", args[0])
		return err
	}
}

func selectRecords(c *cli.Context) error {
	if c.NArg() < 1 {
		return domain.ErrMissingArgument.WithDetails("usage: minidb select " + c.Command.ArgsUsage)
	}
	collection := c.Args().First()

	e := getEnv(c)
	store, err := e.openStore()
	if err != nil {
		return err
	}
	set := output.RecordSet{Collection: collection, Records: store.SelectAll(collection)}
	return e.formatter().Format(c.App.Writer, set)
}

func listCollections(c *cli.Context) error {
	e := getEnv(c)
	store, err := e.openStore()
	if err != nil {
		return err
	}

	list := output.CollectionList{}
	for _, name := range store.Collections() {
		list = append(list, output.CollectionInfo{Name: name, Records: store.Count(name)})
	}
	return e.formatter().Format(c.App.Writer, list)
}
