package version

import (
	"fmt"
	"runtime/debug"
)

const (
	modulePath = "github.com/anoideaopen/whitebox"
	unknown    = "unknown"
)

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("fetching build info failed")
	}

	if bi == nil {
		return nil, fmt.Errorf("build information is empty")
	}

	return bi, nil
}

// Version returns the version of this module linked into the running
// binary, "(devel)" for an in-tree build.
func Version() string {
	bi, err := BuildInfo()
	if err != nil {
		return unknown
	}

	if bi.Main.Path == modulePath {
		return bi.Main.Version
	}

	for _, dep := range bi.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}

	return unknown
}
