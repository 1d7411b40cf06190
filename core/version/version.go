// File: version.go
// Title: Build Version Information
// Description: Version, commit and build date of the mdwx build. The values are
//              set at link time via -ldflags "-X".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package version

import (
	"fmt"
	"runtime"
)

// Build information, overridden with
// -ldflags "-X github.com/msto63/mdwx/core/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info bundles the build information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line version summary
func String() string {
	return fmt.Sprintf("mdwx v%s (%s, %s)", Version, GitCommit, BuildDate)
}
