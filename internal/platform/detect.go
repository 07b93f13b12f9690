package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned when the host OS is neither Unix-like nor Windows.
var ErrUnsupported = errors.New("unsupported platform")

// Family is the operating system family the CLI knows how to lay out files for.
type Family int

const (
	Unsupported Family = iota
	Unix
	Windows
)

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case Unix:
		return "unix"
	case Windows:
		return "windows"
	default:
		return "unsupported"
	}
}

// unixLike lists the GOOS values that follow the $HOME/.config convention.
var unixLike = map[string]bool{
	"aix":       true,
	"android":   true,
	"darwin":    true,
	"dragonfly": true,
	"freebsd":   true,
	"illumos":   true,
	"ios":       true,
	"linux":     true,
	"netbsd":    true,
	"openbsd":   true,
	"solaris":   true,
}

// Platform is the result of detection: the family plus the raw GOOS value.
type Platform struct {
	Family Family
	GOOS   string
}

// Detect returns the platform of the running process.
func Detect() Platform {
	return DetectOS(runtime.GOOS)
}

// DetectOS classifies an arbitrary GOOS value.
func DetectOS(goos string) Platform {
	switch {
	case goos == "windows":
		return Platform{Family: Windows, GOOS: goos}
	case unixLike[goos]:
		return Platform{Family: Unix, GOOS: goos}
	default:
		return Platform{Family: Unsupported, GOOS: goos}
	}
}

// Check returns ErrUnsupported wrapped with the GOOS for unsupported hosts.
func (p Platform) Check() error {
	if p.Family == Unsupported {
		return fmt.Errorf("%w: %s", ErrUnsupported, p.GOOS)
	}
	return nil
}
