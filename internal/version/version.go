// Package version exposes build metadata, injected via -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/claubot/clau/internal/version.Version=v1.2.3"
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Info returns a one-line human-readable version description.
func Info() string {
	return fmt.Sprintf("clau %s (commit %s, built %s)", Version, Commit, BuildDate)
}

// Map returns version metadata for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version":    Version,
		"commit":     Commit,
		"build_date": BuildDate,
	}
}
