package config

import "fmt"

var (
	// ModuleName is the name of the go module, set via -ldflags during build.
	ModuleName = "build.local/misses/ldflags"
	// Commit is the git commit hash, set via -ldflags during build.
	Commit = "< 40 chars git commit hash via ldflags >"
	// BuildDate is the build timestamp, set via -ldflags during build.
	BuildDate = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns "<ModuleName> @ <Commit> (<BuildDate>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
