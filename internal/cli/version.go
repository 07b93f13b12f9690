package cli

import (
	"fmt"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/config"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.printer(cmd, config.OutputNormal)
			if short {
				return out.Print(a.build.Version)
			}

			if asJSON {
				return out.PrintJSON(map[string]string{
					"version": a.build.Version,
					"commit":  a.build.Commit,
					"date":    a.build.Date,
				})
			}

			return out.Print(fmt.Sprintf("%s version %s (commit: %s, built: %s)",
				branding.CLIName(), a.build.Version, a.build.Commit, a.build.Date))
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
