// Package version carries steelform build metadata. Release builds stamp the
// values with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/steelform/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

var (
	// Version of steelform, printed by the banner and `steelform version`.
	Version = "0.3.0"

	// BuildTime and GitCommit are stamped by release builds.
	BuildTime = "unknown"
	GitCommit = "unknown"

	// Author and Year appear in the banner copyright line.
	Author = "Alexius Academia"
	Year   = "2026"
)
