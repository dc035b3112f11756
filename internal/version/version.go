package version

import "runtime/debug"

// overridable through -ldflags="-X github.com/octohelm/depotkit/internal/version.version=v0.1.0"
var version = ""

func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "devel"
}
