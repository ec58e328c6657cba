// Package build describes the running binary.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the version line printed by `toolip version`.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return fmt.Sprintf("toolip %s (%s)", version, i.GoVersion)
	}
	return fmt.Sprintf("toolip %s (%s, built %s, %s)", version, shortCommit(i.Commit), i.BuildDate, i.GoVersion)
}

func shortCommit(commit string) string {
	const n = 7
	if len(commit) > n {
		return commit[:n]
	}
	return commit
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/toolip"
}
