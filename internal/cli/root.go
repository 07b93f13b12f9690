package cli

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/config"
	"github.com/animo/aries-cli/internal/modules"
	"github.com/animo/aries-cli/internal/output"
	"github.com/spf13/cobra"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries what the commands share. Tests replace the clipboard, the
// HTTP client and the log writer.
type app struct {
	build      BuildInfo
	clipboard  output.Clipboard
	httpClient *http.Client
	logWriter  io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` talks to a remote identity agent to manage connections,
invitations, credentials, messages, schemas and credential definitions.

Endpoints and api keys are read from named environments in the config file,
or supplied directly with --endpoint and --apikey.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(root.PersistentFlags())

	for _, m := range modules.All() {
		cmd := m.Command()
		cmd.RunE = a.runModule
		root.AddCommand(cmd)
	}
	root.AddCommand(
		newConfigurationCmd(a),
		newEnvironmentsCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the root command with build info injected via ldflags. The
// context is cancelled on SIGINT and SIGTERM.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{build: BuildInfo{Version: version, Commit: commit, Date: date}}
	return newRootCmd(a).ExecuteContext(ctx)
}
