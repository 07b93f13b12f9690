package modules

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

const defaultCredentialDefinitionTag = "default"

// CredentialDefinitionOptions either create a definition from a schema,
// fetch one by id, or list the definitions this agent created.
type CredentialDefinitionOptions struct {
	SchemaID          string
	Tag               string
	SupportRevocation bool
	ID                string
	All               bool
}

// CredentialDefinition creates and retrieves credential definitions.
type CredentialDefinition struct{}

func (CredentialDefinition) Name() string { return "credential-definition" }

func (c CredentialDefinition) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.Name(),
		Short: "Create or retrieve credential definitions",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringP("schema-id", "i", "", "schema to create a credential definition for")
	cmd.Flags().StringP("tag", "t", defaultCredentialDefinitionTag, "tag of the credential definition to create")
	cmd.Flags().Bool("support-revocation", false, "create a revocable credential definition")
	cmd.Flags().String("id", "", "credential definition id to retrieve")
	cmd.Flags().Bool("all", false, "list the credential definitions created by the agent")
	cmd.MarkFlagsMutuallyExclusive("schema-id", "id", "all")
	return cmd
}

func (c CredentialDefinition) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != c.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := CredentialDefinitionOptions{
		SchemaID:          r.str("schema-id"),
		Tag:               r.str("tag"),
		SupportRevocation: r.boolean("support-revocation"),
		ID:                r.str("id"),
		All:               r.boolean("all"),
	}
	if r.err != nil {
		return r.err
	}
	return c.Run(ctx, rt, opts)
}

// Run performs the selected action.
func (c CredentialDefinition) Run(ctx context.Context, rt Runtime, opts CredentialDefinitionOptions) error {
	switch {
	case opts.ID != "":
		resp, err := rt.Agent.Do(ctx, agentGet("/credential-definitions/"+url.PathEscape(opts.ID), nil))
		if err != nil {
			return err
		}
		return printRaw(rt, resp.Body)
	case opts.All:
		resp, err := rt.Agent.Do(ctx, agentGet("/credential-definitions/created", nil))
		if err != nil {
			return err
		}
		return printRaw(rt, resp.Body)
	case opts.SchemaID != "":
		return c.create(ctx, rt, opts)
	default:
		return &NoFlagSuppliedError{Command: c.Name()}
	}
}

func (CredentialDefinition) create(ctx context.Context, rt Runtime, opts CredentialDefinitionOptions) error {
	tag := opts.Tag
	if tag == "" {
		tag = defaultCredentialDefinitionTag
	}
	body := struct {
		SchemaID          string `json:"schema_id"`
		Tag               string `json:"tag"`
		SupportRevocation bool   `json:"support_revocation"`
	}{opts.SchemaID, tag, opts.SupportRevocation}

	resp, err := rt.Agent.Do(ctx, agentPost("/credential-definitions", nil, body))
	if err != nil {
		return err
	}

	var created struct {
		ID string `json:"credential_definition_id"`
	}
	if err := resp.Decode(&created); err != nil {
		return err
	}
	if created.ID == "" {
		return fmt.Errorf("agent response has no credential_definition_id")
	}
	return rt.Out.Print(created.ID)
}
