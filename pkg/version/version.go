// Package version records build-time version information. The values are
// meant to be overridden through -ldflags at build time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// GitVersion is the semantic version of the build.
	GitVersion = "v0.0.0-master+$Format:%h$"
	// GitCommit is the SHA1 of the commit the build was created from.
	GitCommit = "$Format:%H$"
	// BuildDate is the build timestamp in ISO8601 format.
	BuildDate = "1970-01-01T00:00:00Z"
)

// Info holds the version information of a build.
type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit"`
	BuildDate  string `json:"buildDate"`
	GoVersion  string `json:"goVersion"`
	Compiler   string `json:"compiler"`
	Platform   string `json:"platform"`
}

// String returns the semantic version as a string.
func (info Info) String() string {
	return info.GitVersion
}

// Get returns the version information of the current build.
func Get() Info {
	return Info{
		GitVersion: GitVersion,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Compiler:   runtime.Compiler,
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
