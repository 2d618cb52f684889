// Package misc keeps build time information about the program.
package misc

// set by linker (see Taskfile.yml)
var (
	version = "dev"
	githash = "unknown"
)

const appName = "readmesvg"

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns short git hash of the build.
func GetGitHash() string {
	return githash
}

// GetAppName returns program name.
func GetAppName() string {
	return appName
}
