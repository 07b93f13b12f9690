package agent

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinimumVersion is the oldest ACA-Py release the modules are tested against.
const MinimumVersion = "0.7.0"

// IsSupportedVersion reports whether version is at least MinimumVersion.
// A leading "v" is tolerated.
func IsSupportedVersion(version string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing agent version %q: %w", version, err)
	}
	minimum, err := parseSemver(MinimumVersion)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version: %w", err)
	}
	return v.Compare(minimum) >= 0, nil
}

func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
