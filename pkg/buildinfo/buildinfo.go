// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/Twisol/molt/pkg/buildinfo.VersionSuffix=value" to
// "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/Twisol/molt/pkg/prog"
)

// VersionBase identifies the version of molt. On development commits, it
// identifies the next release.
const VersionBase = "0.3.0"

// VersionSuffix is appended to VersionBase to build the full version string.
// When empty, it is derived from the module version recorded by the Go
// toolchain.
var VersionSuffix = ""

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   VersionBase + versionSuffix(VersionSuffix, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

func versionSuffix(override string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if override != "" {
		return override
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return "+" + bi.Main.Version
	}
	return "-dev.unknown"
}

// Program is the buildinfo subprogram. It handles -version and -buildinfo.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
