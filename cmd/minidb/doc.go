// Package main provides the entry point for minidb.
//
// Without a command minidb starts the interactive shell:
//
//	minidb
//	minidb --data ./data/db.json --metrics-addr 127.0.0.1:9090
//
// The same operations are available as one-shot commands:
//
//	minidb insert users name=John age=25
//	minidb select users -o json
//	minidb collections
package main
