package modules

import (
	"context"
	"errors"
	"fmt"

	"github.com/animo/aries-cli/internal/agent"
	"github.com/animo/aries-cli/internal/logging"
	"github.com/animo/aries-cli/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// ErrUnknownModule is returned by Dispatch when no module has the invoked name.
	ErrUnknownModule = errors.New("unknown module")
	// ErrInvalidOptions is returned when a module's flags do not form a valid request.
	ErrInvalidOptions = errors.New("invalid options")
)

// NoFlagSuppliedError is returned when a command needs one of several flags
// and got none.
type NoFlagSuppliedError struct {
	Command string
}

func (e *NoFlagSuppliedError) Error() string {
	return fmt.Sprintf("no flag supplied for %q", e.Command)
}

// Invocation is the already-parsed command line: the invoked subcommand and
// the flags that came with it.
type Invocation struct {
	Command string
	Flags   *pflag.FlagSet
}

// Runtime is what a running module may use. It is shared read-only by all
// modules of one invocation.
type Runtime struct {
	Agent agent.Agent
	Out   *output.Printer
	Log   *logging.Logger
}

// Module is one command group.
type Module interface {
	// Name is the subcommand that selects the module.
	Name() string
	// Command returns a fresh cobra command carrying the module's flags.
	// The dispatcher attaches the run function.
	Command() *cobra.Command
	// Register runs the module when inv selects it and is a no-op otherwise.
	Register(ctx context.Context, rt Runtime, inv Invocation) error
}

// All returns every module in dispatch order.
func All() []Module {
	return []Module{
		Connections{},
		Invitations{},
		Credentials{},
		Messages{},
		Features{},
		Schema{},
		CredentialDefinition{},
	}
}

// Names returns the module names in dispatch order.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))
	for _, m := range all {
		names = append(names, m.Name())
	}
	return names
}

// Lookup returns the module with the given name.
func Lookup(name string) (Module, bool) {
	for _, m := range All() {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Dispatch offers inv to every module in order. Exactly one module matches;
// the others ignore the invocation.
func Dispatch(ctx context.Context, rt Runtime, inv Invocation) error {
	if _, ok := Lookup(inv.Command); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, inv.Command)
	}
	for _, m := range All() {
		if err := m.Register(ctx, rt, inv); err != nil {
			return fmt.Errorf("%s: %w", m.Name(), err)
		}
	}
	return nil
}
