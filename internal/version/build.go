/*
Package version contains all build time metadata (version, build time, git commit, etc), set via ldflags.
*/
package version

import (
	"fmt"
	"runtime"
)

const valueNotProvided = "[not provided]"

// all variables here are provided as build-time arguments, with clear default values
var version = valueNotProvided
var gitCommit = valueNotProvided
var gitDescription = valueNotProvided
var buildDate = valueNotProvided
var platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

// Version defines the application version details (generally from build information)
type Version struct {
	Version        string `json:"version" yaml:"version"`               // application semantic version
	GitCommit      string `json:"gitCommit" yaml:"gitCommit"`           // git SHA at build-time
	GitDescription string `json:"gitDescription" yaml:"gitDescription"` // output of 'git describe --dirty --always --tags'
	BuildDate      string `json:"buildDate" yaml:"buildDate"`           // date of the build
	GoVersion      string `json:"goVersion" yaml:"goVersion"`           // go runtime version at build-time
	Compiler       string `json:"compiler" yaml:"compiler"`             // compiler used at build-time
	Platform       string `json:"platform" yaml:"platform"`             // GOOS and GOARCH at build-time
}

func (v Version) IsProductionBuild() bool {
	return v.Version != valueNotProvided
}

// FromBuild provides all version details
func FromBuild() Version {
	return Version{
		Version:        version,
		GitCommit:      gitCommit,
		GitDescription: gitDescription,
		BuildDate:      buildDate,
		GoVersion:      runtime.Version(),
		Compiler:       runtime.Compiler,
		Platform:       platform,
	}
}
