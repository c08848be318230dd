package version

import (
	"runtime"
	"runtime/debug"
)

// Version is set via ldflags at release build time:
// -ldflags "-X github.com/typegraph/typegraph/version.Version=v1.2.3"
var Version = ""

const devFallback = "v0.0.0-dev"

// Info is the diagnostic typegraph reports on its CLI and can log
// alongside cache/engine stats: the binary's own version next to the
// toolchain whose go/types implementation backs every classification
// decision, since the two can drift independently of each other.
type Info struct {
	Version   string
	GoVersion string
	Revision  string
	Dirty     bool
}

// String renders a one-line summary in the same space-separated
// key=value style CacheInfo uses for its own diagnostic line.
func (i Info) String() string {
	s := i.Version + " go=" + i.GoVersion
	if i.Revision == "" {
		return s
	}
	s += " rev=" + i.Revision
	if i.Dirty {
		s += "-dirty"
	}
	return s
}

// Collect resolves Info, trying in order: the ldflags-injected Version
// (a release binary), the module version build info records (installed
// via go install/go get), VCS revision metadata (a local development
// build), then devFallback.
func Collect() Info {
	info := Info{Version: Version, GoVersion: runtime.Version()}
	if info.Version != "" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		info.Version = devFallback
		return info
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
		return info
	}
	info.Version = devFallback

	var revision string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	info.Revision = revision
	return info
}

// Get returns the version string alone, for call sites like cobra's
// --version flag that don't need the full diagnostic.
func Get() string {
	return Collect().Version
}
