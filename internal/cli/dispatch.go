package cli

import (
	"github.com/animo/aries-cli/internal/agent"
	"github.com/animo/aries-cli/internal/config"
	"github.com/animo/aries-cli/internal/logging"
	"github.com/animo/aries-cli/internal/modules"
	"github.com/animo/aries-cli/internal/output"
	"github.com/spf13/cobra"
)

// runModule is the shared RunE of every module command: resolve the
// configuration, build and probe the agent, then offer the invocation to
// each module in order.
func (a *app) runModule(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	overrides := config.OverridesFrom(v)

	eff, err := config.Resolve(overrides)
	if err != nil {
		return err
	}

	log := a.logger(overrides.LogLevel, eff.Output)
	log.Debug().
		Str("endpoint", eff.Endpoint).
		Str("environment", eff.Environment).
		Str("config", eff.ConfigPath).
		Bool("api_key", eff.APIKey != "").
		Msg("configuration resolved")

	kind, err := agent.ParseKind(eff.Agent)
	if err != nil {
		return err
	}
	ag, err := agent.New(kind, agent.Config{
		Endpoint:   eff.Endpoint,
		APIKey:     eff.APIKey,
		Timeout:    eff.Timeout,
		Version:    a.build.Version,
		HTTPClient: a.httpClient,
		Logger:     log.Sub("agent"),
	})
	if err != nil {
		return err
	}
	if err := ag.CheckEndpoint(ctx); err != nil {
		return err
	}
	log.Info().Str("kind", string(ag.Kind())).Str("endpoint", ag.Endpoint()).Msg("agent ready")

	rt := modules.Runtime{
		Agent: ag,
		Out:   a.printer(cmd, eff.Output),
		Log:   log.Sub("modules"),
	}
	return modules.Dispatch(ctx, rt, modules.Invocation{
		Command: cmd.Name(),
		Flags:   cmd.Flags(),
	})
}

func (a *app) logger(level string, mode config.OutputMode) *logging.Logger {
	if mode == config.OutputSuppressed {
		level = "silent"
	}
	return logging.New(a.logWriter, level)
}

func (a *app) printer(cmd *cobra.Command, mode config.OutputMode) *output.Printer {
	opts := []output.Option{output.WithWriter(cmd.OutOrStdout())}
	if a.clipboard != nil {
		opts = append(opts, output.WithClipboard(a.clipboard))
	}
	return output.New(mode, opts...)
}
