package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/animo/aries-cli/internal/agent"
	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/config"
	"github.com/animo/aries-cli/internal/modules"
	"github.com/animo/aries-cli/internal/platform"
)

// Describe turns an error from any command into the one-line message shown
// after "Error: ". Each error kind gets its own wording; anything else is
// printed as is. Line breaks in wrapped errors are folded into spaces.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return strings.Join(strings.Fields(describe(err)), " ")
}

func describe(err error) string {
	var noFlag *modules.NoFlagSuppliedError
	var status *agent.StatusError
	name := branding.CLIName()

	switch {
	case errors.As(err, &noFlag):
		return fmt.Sprintf("No flag supplied for %q. Run '%s %s --help' to see the available flags.", noFlag.Command, name, noFlag.Command)
	case errors.Is(err, platform.ErrUnsupported):
		return fmt.Sprintf("This platform is not supported (%v).", err)
	case errors.Is(err, config.ErrHomeNotFound):
		return "Could not determine the home directory. Set $HOME or pass --config."
	case errors.Is(err, config.ErrConfigAlreadyExists):
		return fmt.Sprintf("A configuration already exists (%v). Remove it first to initialise a new one.", err)
	case errors.Is(err, config.ErrConfigMalformed):
		return fmt.Sprintf("The configuration file is malformed: %v", err)
	case errors.Is(err, config.ErrNoEndpointResolved) && errors.Is(err, config.ErrEnvironmentNotFound):
		return fmt.Sprintf("No endpoint resolved: the selected environment does not exist (%v). Run '%s environments' to list them, or pass --endpoint.", err, name)
	case errors.Is(err, config.ErrNoEndpointResolved) && errors.Is(err, config.ErrConfigMissing):
		return fmt.Sprintf("No endpoint resolved: no configuration file was found. Run '%s configuration --initialize' or pass --endpoint.", name)
	case errors.Is(err, config.ErrNoEndpointResolved):
		return fmt.Sprintf("No endpoint resolved (%v). Pass --endpoint or set one in the configuration.", err)
	case errors.Is(err, config.ErrEnvironmentNotFound):
		return fmt.Sprintf("Environment not found (%v).", err)
	case errors.Is(err, config.ErrConfigMissing):
		return fmt.Sprintf("No configuration file found (%v). Run '%s configuration --initialize' to create one.", err, name)
	case errors.Is(err, agent.ErrUnauthorized):
		return fmt.Sprintf("The agent refused the api key: %v. Check --apikey or the environment's api_key.", err)
	case errors.Is(err, agent.ErrAgentUnreachable):
		return fmt.Sprintf("Could not reach the agent: %v", err)
	case errors.Is(err, agent.ErrNotImplemented):
		return fmt.Sprintf("This agent is not supported yet (%v).", err)
	case errors.Is(err, agent.ErrUnknownKind):
		return fmt.Sprintf("Unknown agent (%v). Supported agents: %s.", err, kindList())
	case errors.Is(err, agent.ErrInvalidEndpoint):
		return fmt.Sprintf("The endpoint is not a valid http(s) URL (%v).", err)
	case errors.As(err, &status):
		return fmt.Sprintf("The agent rejected the request: %v", err)
	default:
		return err.Error()
	}
}

func kindList() string {
	kinds := make([]string, 0, len(agent.AllKinds()))
	for _, k := range agent.AllKinds() {
		if agent.Implemented(k) {
			kinds = append(kinds, string(k))
		} else {
			kinds = append(kinds, string(k)+" (not implemented)")
		}
	}
	return strings.Join(kinds, ", ")
}
