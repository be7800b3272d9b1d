// Package misc keeps build time information.
package misc

// Set at build time with -ldflags "-X cssdiff/misc.version=...".
var (
	appName = "cssdiff"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
