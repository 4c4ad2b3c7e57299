// Package command defines the minidb command line.
//
// It uses urfave/cli/v2. Running minidb without a sub-command starts the
// interactive shell; insert, select and collections run one operation
// against the snapshot and exit, for use from scripts.
package command
