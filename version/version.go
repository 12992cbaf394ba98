// Package version exposes the build metadata reported by the CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, injected via ldflags.
	Version string
	// BuildDate is when the binary was built, injected via ldflags.
	BuildDate string

	// Revision is the VCS revision the binary was built from.
	Revision = revision()
	// GoVersion is the Go toolchain version used to build.
	GoVersion = runtime.Version()
)

// String returns the single-line version reported by --version.
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	return fmt.Sprintf("%s (%s, %s, %s/%s)", v, Revision, GoVersion, runtime.GOOS, runtime.GOARCH)
}

func revision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, s := range buildInfo.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		rev += "-dirty"
	}

	return rev
}
