package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/animo/aries-cli/internal/branding"
)

// OutputMode selects how command results reach the user.
type OutputMode int

const (
	OutputNormal OutputMode = iota
	OutputSuppressed
	OutputCopy
)

// String returns a human-readable name for the mode.
func (m OutputMode) String() string {
	switch m {
	case OutputSuppressed:
		return "suppressed"
	case OutputCopy:
		return "copy"
	default:
		return "normal"
	}
}

// Overrides are the values supplied for this invocation through flags or
// environment variables. Empty strings mean "not supplied".
type Overrides struct {
	Endpoint       string
	APIKey         string
	Environment    string
	ConfigPath     string
	Agent          string
	LogLevel       string
	Timeout        time.Duration
	Copy           bool
	SuppressOutput bool
}

// OutputMode derives the output mode; suppression wins over copying.
func (o Overrides) OutputMode() OutputMode {
	switch {
	case o.SuppressOutput:
		return OutputSuppressed
	case o.Copy:
		return OutputCopy
	default:
		return OutputNormal
	}
}

// Effective is the merged configuration of one invocation.
type Effective struct {
	Endpoint    string
	APIKey      string
	Environment string
	// ConfigPath is empty when the file was never consulted.
	ConfigPath string
	Agent      string
	Timeout    time.Duration
	Output     OutputMode
}

// Resolve merges overrides with the selected stored environment.
//
// An explicit endpoint or api key always wins over the stored value. When
// both are explicit the file is not read at all. When only the endpoint is
// explicit an unlocatable or missing file and a missing environment are
// tolerated, but a malformed file is not. Without any endpoint the returned error matches both
// ErrNoEndpointResolved and the underlying cause.
func Resolve(o Overrides) (*Effective, error) {
	name := o.Environment
	if name == "" {
		name = branding.DefaultEnvironment()
	}

	eff := &Effective{
		Endpoint:    o.Endpoint,
		APIKey:      o.APIKey,
		Environment: name,
		Agent:       o.Agent,
		Timeout:     o.Timeout,
		Output:      o.OutputMode(),
	}
	if eff.Endpoint != "" && eff.APIKey != "" {
		return eff, nil
	}

	path, err := ResolvePath(o.ConfigPath)
	switch {
	case err == nil:
	case eff.Endpoint != "":
		// No locatable file means no stored credential to inherit.
		return eff, nil
	default:
		return nil, err
	}
	eff.ConfigPath = path

	env, err := lookupEnvironment(path, name)
	switch {
	case err == nil:
	case errors.Is(err, ErrConfigMalformed):
		return nil, err
	case eff.Endpoint == "":
		return nil, fmt.Errorf("%w: %w", ErrNoEndpointResolved, err)
	default:
		return eff, nil
	}

	if eff.Endpoint == "" {
		eff.Endpoint = env.Endpoint
	}
	if eff.APIKey == "" {
		eff.APIKey = env.APIKey
	}
	if eff.Endpoint == "" {
		return nil, fmt.Errorf("%w: environment %q has no endpoint", ErrNoEndpointResolved, name)
	}
	return eff, nil
}

func lookupEnvironment(path, name string) (Environment, error) {
	f, err := Read(path)
	if err != nil {
		return Environment{}, err
	}
	return f.Lookup(name)
}
