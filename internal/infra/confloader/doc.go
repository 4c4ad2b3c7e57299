// Package confloader layers configuration sources into a typed struct.
//
// Sources, lowest priority first:
//
//  1. Defaults supplied with WithDefaults
//  2. A YAML file supplied with WithConfigFile
//  3. Environment variables carrying the prefix (MINIDB_ by default)
//  4. Overrides loaded with LoadMap, typically command-line flags
//
// Keys use "." as the path delimiter. The section name of an environment
// variable ends at the first underscore, so MINIDB_STORAGE_ON_COMMIT_FAILURE
// maps to storage.on_commit_failure.
//
// Watcher reports changes to a single configuration file.
package confloader
