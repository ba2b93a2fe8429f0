// ============================================================================
// easyfmt - String helpers and rendering post-processor
// ============================================================================
//
// Package:     version
// Description: Build version information, set through -ldflags
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time:
//
//	go build -ldflags "-X github.com/msto63/easyfmt/pkg/version.Version=1.2.0"
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("easyfmt v%s (%s, built %s, %s %s)", i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
