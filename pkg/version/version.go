// Package version exposes build metadata injected with -ldflags.
package version

import "runtime/debug"

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/octofit/octofit/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version, the module version recorded by
// the Go toolchain, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	if buildDate != "" {
		return buildDate
	}
	return "unknown"
}
