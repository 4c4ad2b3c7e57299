// Package output renders query results for the minidb CLI.
//
//   - formatter.go: Formatter interface, result types and factory
//   - table.go: aligned columns, one column per field name
//   - list.go: numbered {name: value} lines
//   - json.go, yaml.go: machine-readable output for scripting
package output
