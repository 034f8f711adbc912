// Package version holds build metadata injected with -ldflags.
package version

var (
	// Version is the release version, e.g. "v1.0.0".
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)
