// Package config defines the minidb configuration.
//
//   - spec.go: Config struct definition
//   - default.go: default values
//   - verify.go: validation
//   - load.go: layered loading through internal/infra/confloader
package config
