package cli

import (
	"strings"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/config"
	"github.com/spf13/cobra"
)

func newEnvironmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "environments",
		Short: "List the environments in the config file",
		Long: `List the environment names stored in the config file. The environment
that --environment (or the default) selects is marked with "*".
Environments carrying an api key are flagged; the key itself is never shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			overrides := config.OverridesFrom(v)

			path, err := config.ResolvePath(overrides.ConfigPath)
			if err != nil {
				return err
			}
			f, err := config.Read(path)
			if err != nil {
				return err
			}

			selected := overrides.Environment
			if selected == "" {
				selected = branding.DefaultEnvironment()
			}

			out := a.printer(cmd, overrides.OutputMode())
			var b strings.Builder
			for _, env := range f.Configurations {
				if env.Name == selected {
					b.WriteString("* ")
				} else {
					b.WriteString("  ")
				}
				b.WriteString(env.Name)
				if env.HasAPIKey() {
					b.WriteString(" (api key)")
				}
				b.WriteByte('\n')
			}
			return out.Print(b.String())
		},
	}
}
