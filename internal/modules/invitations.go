package modules

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// toolboxAlias is the alias used by the --toolbox preset.
const toolboxAlias = "toolbox"

// InvitationsOptions shape a new connection invitation.
type InvitationsOptions struct {
	AutoAccept bool
	MultiUse   bool
	Alias      string
	Toolbox    bool
}

// Invitations creates connection invitations.
type Invitations struct{}

func (Invitations) Name() string { return "invitations" }

func (i Invitations) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   i.Name(),
		Short: "Create a connection invitation",
		Long: `Create a connection invitation and print its URL.

--toolbox creates a multi-use, auto-accepting invitation aliased "toolbox",
suitable for pasting into the Aries Toolbox.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().BoolP("auto-accept", "a", false, "accept the connection request automatically")
	cmd.Flags().BoolP("multi-use", "m", false, "allow the invitation to be used more than once")
	cmd.Flags().StringP("alias", "l", "", "alias for the resulting connection")
	cmd.Flags().BoolP("toolbox", "t", false, "preset for the Aries Toolbox")
	cmd.MarkFlagsMutuallyExclusive("toolbox", "alias")
	return cmd
}

func (i Invitations) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != i.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := InvitationsOptions{
		AutoAccept: r.boolean("auto-accept"),
		MultiUse:   r.boolean("multi-use"),
		Alias:      r.str("alias"),
		Toolbox:    r.boolean("toolbox"),
	}
	if r.err != nil {
		return r.err
	}
	return i.Run(ctx, rt, opts)
}

// Run creates the invitation and prints its URL.
func (Invitations) Run(ctx context.Context, rt Runtime, opts InvitationsOptions) error {
	if opts.Toolbox {
		opts.AutoAccept = true
		opts.MultiUse = true
		opts.Alias = toolboxAlias
	}

	query := url.Values{}
	query.Set("auto_accept", strconv.FormatBool(opts.AutoAccept))
	query.Set("multi_use", strconv.FormatBool(opts.MultiUse))
	if opts.Alias != "" {
		query.Set("alias", opts.Alias)
	}

	resp, err := rt.Agent.Do(ctx, agentPost("/connections/create-invitation", query, nil))
	if err != nil {
		return err
	}

	var created struct {
		ConnectionID  string `json:"connection_id"`
		InvitationURL string `json:"invitation_url"`
	}
	if err := resp.Decode(&created); err != nil {
		return err
	}
	if created.InvitationURL == "" {
		return fmt.Errorf("agent response has no invitation_url")
	}

	rt.Log.Debug().Str("connection_id", created.ConnectionID).Msg("invitation created")
	return rt.Out.Print(created.InvitationURL)
}
