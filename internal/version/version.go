// Package version holds the relnote build information. It has no
// dependencies so any package can import it without cycles.
package version

var (
	// Set via ldflags during release builds.
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}
