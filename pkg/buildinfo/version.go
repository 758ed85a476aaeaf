// Package buildinfo reports which build of hanoi is running.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/hanoi/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/hanoi/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/hanoi/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/hanoi
//
// Binaries from "go install" carry no ldflags; [Get] falls back to the module
// version and VCS stamp recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build description, filling unset ldflags values from the
// embedded build info when available.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// Template returns the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}

// KeyVals returns the build description as logger key-value pairs.
func KeyVals() []any {
	i := Get()
	return []any{"version", i.Version, "commit", i.Commit, "built", i.Date}
}
