package modules

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/spf13/cobra"
)

// FeaturesOptions filter the feature list.
type FeaturesOptions struct {
	Query string
}

// Features lists the protocols the agent supports.
type Features struct{}

func (Features) Name() string { return "features" }

func (f Features) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   f.Name(),
		Short: "List the protocols supported by the agent",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringP("query", "q", "", "protocol query, e.g. \"https://didcomm.org/basicmessage/*\"")
	return cmd
}

func (f Features) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != f.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := FeaturesOptions{Query: r.str("query")}
	if r.err != nil {
		return r.err
	}
	return f.Run(ctx, rt, opts)
}

// Run prints the feature map.
func (Features) Run(ctx context.Context, rt Runtime, opts FeaturesOptions) error {
	var query url.Values
	if opts.Query != "" {
		query = url.Values{"query": {opts.Query}}
	}
	resp, err := rt.Agent.Do(ctx, agentGet("/features", query))
	if err != nil {
		return err
	}

	var features struct {
		Results json.RawMessage `json:"results"`
	}
	if err := resp.Decode(&features); err != nil {
		return err
	}
	return printRaw(rt, features.Results)
}
