package frandrng

import (
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/mod/semver"
)

// Version is the release of this adapter. Its major.minor pair tracks the
// frand release it was built against.
const Version = "v1.5.1"

// ModulePath is the module path of the wrapped generator.
const ModulePath = "lukechampine.com/frand"

// ErrIncompatible is returned when the linked frand release does not
// match Version.
var ErrIncompatible = errors.New("incompatible frand version")

// CompatibleWith reports whether a frand module version shares the
// adapter's major.minor release.
func CompatibleWith(version string) bool {
	if !semver.IsValid(version) {
		return false
	}
	return semver.MajorMinor(version) == semver.MajorMinor(Version)
}

// CheckLinked verifies that the frand module linked into the running
// binary is compatible with Version. It returns nil when the binary carries
// no module information.
func CheckLinked() error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return checkDeps(info.Deps)
}

func checkDeps(deps []*debug.Module) error {
	for _, dep := range deps {
		if dep == nil || dep.Path != ModulePath {
			continue
		}
		version := dep.Version
		if dep.Replace != nil && dep.Replace.Version != "" {
			version = dep.Replace.Version
		}
		if !CompatibleWith(version) {
			return fmt.Errorf("%w: linked %s, adapter %s", ErrIncompatible, version, Version)
		}
		return nil
	}
	return nil
}
