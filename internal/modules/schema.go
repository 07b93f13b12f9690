package modules

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// defaultSchemaVersion is used when --version is not given.
const defaultSchemaVersion = "1.0"

// SchemaOptions either create a schema (Name + Attributes), fetch one (ID)
// or list the schemas this agent created (All).
type SchemaOptions struct {
	Name       string
	Version    string
	Attributes []string
	ID         string
	All        bool
}

// Schema creates and retrieves schemas on the ledger.
type Schema struct{}

func (Schema) Name() string { return "schema" }

func (s Schema) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   s.Name(),
		Short: "Create or retrieve schemas",
		Long: `Create a schema, retrieve one by id, or list the schemas created by the agent.

  aries-cli schema --name person --attribute name --attribute age
  aries-cli schema --id <schema-id>
  aries-cli schema --all`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringP("name", "n", "", "name of the schema to create")
	cmd.Flags().String("version", defaultSchemaVersion, "version of the schema to create")
	cmd.Flags().StringArrayP("attribute", "a", nil, "attribute of the schema to create (repeatable)")
	cmd.Flags().StringP("id", "i", "", "schema id to retrieve")
	cmd.Flags().Bool("all", false, "list the schemas created by the agent")
	cmd.MarkFlagsMutuallyExclusive("name", "id", "all")
	return cmd
}

func (s Schema) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != s.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := SchemaOptions{
		Name:       r.str("name"),
		Version:    r.str("version"),
		Attributes: r.strs("attribute"),
		ID:         r.str("id"),
		All:        r.boolean("all"),
	}
	if r.err != nil {
		return r.err
	}
	return s.Run(ctx, rt, opts)
}

// Run performs the selected action.
func (s Schema) Run(ctx context.Context, rt Runtime, opts SchemaOptions) error {
	switch {
	case opts.ID != "":
		resp, err := rt.Agent.Do(ctx, agentGet("/schemas/"+url.PathEscape(opts.ID), nil))
		if err != nil {
			return err
		}
		return printRaw(rt, resp.Body)
	case opts.All:
		resp, err := rt.Agent.Do(ctx, agentGet("/schemas/created", nil))
		if err != nil {
			return err
		}
		return printRaw(rt, resp.Body)
	case opts.Name != "":
		return s.create(ctx, rt, opts)
	default:
		return &NoFlagSuppliedError{Command: s.Name()}
	}
}

func (Schema) create(ctx context.Context, rt Runtime, opts SchemaOptions) error {
	if len(opts.Attributes) == 0 {
		return fmt.Errorf("%w: at least one --attribute is required", ErrInvalidOptions)
	}
	version := opts.Version
	if version == "" {
		version = defaultSchemaVersion
	}

	body := struct {
		Name       string   `json:"schema_name"`
		Version    string   `json:"schema_version"`
		Attributes []string `json:"attributes"`
	}{opts.Name, version, opts.Attributes}

	resp, err := rt.Agent.Do(ctx, agentPost("/schemas", nil, body))
	if err != nil {
		return err
	}

	var created struct {
		SchemaID string `json:"schema_id"`
	}
	if err := resp.Decode(&created); err != nil {
		return err
	}
	if created.SchemaID == "" {
		return fmt.Errorf("agent response has no schema_id")
	}
	return rt.Out.Print(created.SchemaID)
}
