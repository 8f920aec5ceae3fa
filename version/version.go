package version

import (
	gover "github.com/hashicorp/go-version"
)

const revisionLen = 8

var (
	// The full version string
	Version = "1.0.0"
	// GitCommit is set with --ldflags "-X github.com/bytom/timefmt/version.GitCommit=$(git rev-parse HEAD)"
	GitCommit string
)

func init() {
	if len(GitCommit) >= revisionLen {
		Version += "+" + GitCommit[:revisionLen]
	}
}

// CompatibleWith checks whether a config file written by version other can
// be read by this binary.
// RULES:
// | local |  other  |
// |   -   |    -    |
// | 1.x.y | 1.*.*   |
func CompatibleWith(other string) (bool, error) {
	localVersion, err := gover.NewVersion(Version)
	if err != nil {
		return false, err
	}
	otherVersion, err := gover.NewVersion(other)
	if err != nil {
		return false, err
	}
	return localVersion.Segments()[0] == otherVersion.Segments()[0], nil
}

// Newer reports whether other is a later release than this binary. Build
// metadata is ignored.
func Newer(other string) (bool, error) {
	localVersion, err := gover.NewVersion(Version)
	if err != nil {
		return false, err
	}
	otherVersion, err := gover.NewVersion(other)
	if err != nil {
		return false, err
	}
	return otherVersion.GreaterThan(localVersion), nil
}
