package modules

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// MessagesOptions address a basic message.
type MessagesOptions struct {
	ConnectionID string
	Message      string
}

// Messages sends basic messages.
type Messages struct{}

func (Messages) Name() string { return "messages" }

func (m Messages) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   m.Name(),
		Short: "Send a basic message to a connection",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringP("id", "i", "", "connection to message")
	cmd.Flags().StringP("message", "m", "", "message content")
	return cmd
}

func (m Messages) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != m.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := MessagesOptions{
		ConnectionID: r.str("id"),
		Message:      r.str("message"),
	}
	if r.err != nil {
		return r.err
	}
	return m.Run(ctx, rt, opts)
}

// Run sends the message.
func (Messages) Run(ctx context.Context, rt Runtime, opts MessagesOptions) error {
	if opts.ConnectionID == "" {
		return fmt.Errorf("%w: --id is required", ErrInvalidOptions)
	}
	if opts.Message == "" {
		return fmt.Errorf("%w: --message is required", ErrInvalidOptions)
	}

	path := "/connections/" + url.PathEscape(opts.ConnectionID) + "/send-message"
	body := map[string]string{"content": opts.Message}
	if _, err := rt.Agent.Do(ctx, agentPost(path, nil, body)); err != nil {
		return err
	}
	return rt.Out.Printf("Sent message to %s", opts.ConnectionID)
}
