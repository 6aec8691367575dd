// Package version carries build metadata set via ldflags:
//
//	go build -ldflags "-X github.com/kbchulan/clblogs/internal/version.Version=v0.3.0"
package version

import "fmt"

var (
	Version   = "unknown"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the metadata for --version.
func String() string {
	return fmt.Sprintf("clblogs %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
