// Package build holds version metadata injected at link time:
//
//	go build -ldflags "-X github.com/katalvlaran/hroute/internal/build.Version=v1.2.3"
package build

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
