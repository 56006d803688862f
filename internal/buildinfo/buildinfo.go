// Package buildinfo holds version metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/usdAG/reftool/internal/buildinfo.Version=v1.0.0"
//
// The values are empty for local builds.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
