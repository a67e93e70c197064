package id3strip

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of id3strip.
const Version = "0.1.0"

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags="-X github.com/simonhull/id3strip.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/id3strip.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/id3strip
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the version plus the build details stamped in by
// the linker. GoVersion always comes from the runtime.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String formats the info as "0.1.0 (commit abc123, built ..., go1.26.0)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}
