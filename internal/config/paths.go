package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/platform"
)

// windowsConfigRoot is the shared profile directory used on Windows hosts.
const windowsConfigRoot = `C:\Program Files\Common Files`

// Locate returns the canonical config file path for the running host.
func Locate() (string, error) {
	p := platform.Detect()
	var home string
	if p.Family == platform.Unix {
		// An empty home is reported by LocateFor.
		home, _ = os.UserHomeDir()
	}
	return LocateFor(p, home)
}

// LocateFor computes the config file path for platform p. home is only
// consulted for the Unix family.
func LocateFor(p platform.Platform, home string) (string, error) {
	switch p.Family {
	case platform.Unix:
		if home == "" {
			return "", ErrHomeNotFound
		}
		return filepath.Join(home, ".config", branding.ConfigDir(), branding.ConfigFile()), nil
	case platform.Windows:
		// Joined by hand so the result is stable when computed on any host.
		return windowsConfigRoot + `\` + branding.ConfigDir() + `\` + branding.ConfigFile(), nil
	default:
		return "", p.Check()
	}
}

// ResolvePath returns override when set, otherwise the canonical location.
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	path, err := Locate()
	if err != nil {
		return "", fmt.Errorf("locating configuration file: %w", err)
	}
	return path, nil
}
