// Package buildinfo exposes the minidb build identity.
//
// Version, Commit and BuildTime are injected with ldflags:
//
//	go build -ldflags "-X github.com/yndnr/minidb-go/internal/infra/buildinfo.Version=v0.3.0" ./cmd/minidb
//
// GoVersion and, when not injected, Commit fall back to the module build
// information embedded by the Go toolchain.
package buildinfo
