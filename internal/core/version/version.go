// Package version reports build information for both binaries
package version

import "runtime/debug"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service" example:"dataproc-console"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit"  example:"4f2c9a1"`
	Date    string `json:"date"    example:"2026-10-01T12:00:00Z"`
	Go      string `json:"go"      example:"go1.25.0"`
}

// Set via -ldflags "-X 'dataproc/internal/core/version.version=v0.3.0' ..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information for service. Commit and date fall back
// to the vcs stamps recorded by the go tool when ldflags did not set them.
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return bi
	}
	bi.Go = info.GoVersion
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
			if len(bi.Commit) > 7 {
				bi.Commit = bi.Commit[:7]
			}
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}
