package modules

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/spf13/cobra"
)

// ConnectionsOptions selects one connection or filters the list.
type ConnectionsOptions struct {
	ID    string
	Alias string
	State string
}

// Connections retrieves connection records.
type Connections struct{}

func (Connections) Name() string { return "connections" }

func (c Connections) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.Name(),
		Short: "Retrieve connections",
		Long: `Retrieve all connections of the agent, or a single connection by id.

  aries-cli connections                  # every connection
  aries-cli connections --state active   # filter by state
  aries-cli connections --id <id>        # one connection`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringP("id", "i", "", "connection id to retrieve")
	cmd.Flags().String("alias", "", "only connections with this alias")
	cmd.Flags().String("state", "", "only connections in this state (e.g. active, invitation)")
	return cmd
}

func (c Connections) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != c.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := ConnectionsOptions{
		ID:    r.str("id"),
		Alias: r.str("alias"),
		State: r.str("state"),
	}
	if r.err != nil {
		return r.err
	}
	return c.Run(ctx, rt, opts)
}

// Run prints either the selected connection or the filtered list.
func (Connections) Run(ctx context.Context, rt Runtime, opts ConnectionsOptions) error {
	if opts.ID != "" {
		resp, err := rt.Agent.Do(ctx, agentGet("/connections/"+url.PathEscape(opts.ID), nil))
		if err != nil {
			return err
		}
		return printRaw(rt, resp.Body)
	}

	query := url.Values{}
	if opts.Alias != "" {
		query.Set("alias", opts.Alias)
	}
	if opts.State != "" {
		query.Set("state", opts.State)
	}
	resp, err := rt.Agent.Do(ctx, agentGet("/connections", query))
	if err != nil {
		return err
	}

	var list struct {
		Results json.RawMessage `json:"results"`
	}
	if err := resp.Decode(&list); err != nil {
		return err
	}
	return printRaw(rt, list.Results)
}
