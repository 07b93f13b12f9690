package modules

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// credentialPreviewType is the message type of an issue-credential v1 preview.
const credentialPreviewType = "https://didcomm.org/issue-credential/1.0/credential-preview"

// CredentialsOptions describe a credential offer. Keys and Values pair up by
// position.
type CredentialsOptions struct {
	ConnectionID           string
	CredentialDefinitionID string
	Keys                   []string
	Values                 []string
}

// Credentials offers credentials over an existing connection.
type Credentials struct{}

func (Credentials) Name() string { return "credentials" }

func (c Credentials) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.Name(),
		Short: "Offer a credential to a connection",
		Long: `Send a credential offer over an existing connection.

  aries-cli credentials --connection-id <id> --credential-definition-id <cred-def> \
      --key name --value Alice --key age --value 30`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringP("connection-id", "i", "", "connection to send the offer over")
	cmd.Flags().StringP("credential-definition-id", "d", "", "credential definition to issue from")
	cmd.Flags().StringArray("key", nil, "attribute name (repeatable, pairs with --value)")
	cmd.Flags().StringArray("value", nil, "attribute value (repeatable, pairs with --key)")
	return cmd
}

func (c Credentials) Register(ctx context.Context, rt Runtime, inv Invocation) error {
	if inv.Command != c.Name() {
		return nil
	}
	r := flagReader{fs: inv.Flags}
	opts := CredentialsOptions{
		ConnectionID:           r.str("connection-id"),
		CredentialDefinitionID: r.str("credential-definition-id"),
		Keys:                   r.strs("key"),
		Values:                 r.strs("value"),
	}
	if r.err != nil {
		return r.err
	}
	return c.Run(ctx, rt, opts)
}

type credentialAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type credentialOffer struct {
	ConnectionID      string `json:"connection_id"`
	CredDefID         string `json:"cred_def_id"`
	CredentialPreview struct {
		Type       string                `json:"@type"`
		Attributes []credentialAttribute `json:"attributes"`
	} `json:"credential_preview"`
}

// Validate checks that the offer can be built.
func (o CredentialsOptions) Validate() error {
	switch {
	case o.ConnectionID == "":
		return fmt.Errorf("%w: --connection-id is required", ErrInvalidOptions)
	case o.CredentialDefinitionID == "":
		return fmt.Errorf("%w: --credential-definition-id is required", ErrInvalidOptions)
	case len(o.Keys) == 0:
		return fmt.Errorf("%w: at least one --key/--value pair is required", ErrInvalidOptions)
	case len(o.Keys) != len(o.Values):
		return fmt.Errorf("%w: got %d --key and %d --value flags", ErrInvalidOptions, len(o.Keys), len(o.Values))
	}
	return nil
}

// Run sends the offer and prints the resulting exchange record.
func (Credentials) Run(ctx context.Context, rt Runtime, opts CredentialsOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	var offer credentialOffer
	offer.ConnectionID = opts.ConnectionID
	offer.CredDefID = opts.CredentialDefinitionID
	offer.CredentialPreview.Type = credentialPreviewType
	for i, key := range opts.Keys {
		offer.CredentialPreview.Attributes = append(offer.CredentialPreview.Attributes,
			credentialAttribute{Name: key, Value: opts.Values[i]})
	}

	resp, err := rt.Agent.Do(ctx, agentPost("/issue-credential/send-offer", nil, offer))
	if err != nil {
		return err
	}
	return printRaw(rt, resp.Body)
}
