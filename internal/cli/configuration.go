package cli

import (
	"fmt"

	"github.com/animo/aries-cli/internal/config"
	"github.com/animo/aries-cli/internal/modules"
	"github.com/spf13/cobra"
)

func newConfigurationCmd(a *app) *cobra.Command {
	var initialize, view bool

	cmd := &cobra.Command{
		Use:   "configuration",
		Short: "Initialise or view the config file",
		Long: `Create the config file with a single "Default" environment, or print
the current file as stored. --config selects another file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !initialize && !view {
				return &modules.NoFlagSuppliedError{Command: "configuration"}
			}

			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			overrides := config.OverridesFrom(v)
			out := a.printer(cmd, overrides.OutputMode())

			path, err := config.ResolvePath(overrides.ConfigPath)
			if err != nil {
				return err
			}

			if initialize {
				if err := config.Initialize(path); err != nil {
					return err
				}
				return out.Print(fmt.Sprintf("Initialised the configuration at %s", path))
			}

			raw, err := config.RawView(path)
			if err != nil {
				return err
			}
			return out.Print(raw)
		},
	}
	cmd.Flags().BoolVarP(&initialize, "initialize", "i", false, "create the config file")
	cmd.Flags().BoolVarP(&view, "view", "v", false, "print the config file")
	cmd.MarkFlagsMutuallyExclusive("initialize", "view")
	return cmd
}
