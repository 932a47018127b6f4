// Package build exposes build information set at link time, e.g.
//
//	go build -ldflags "-X github.com/KasperOmsK/lazysort/internal/build.Version=v0.3.0"
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
