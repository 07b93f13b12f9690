package modules

import (
	"bytes"
	"context"
	"testing"

	"github.com/animo/aries-cli/internal/agent"
	"github.com/animo/aries-cli/internal/config"
	"github.com/animo/aries-cli/internal/logging"
	"github.com/animo/aries-cli/internal/output"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// fakeAgent records requests and replies with a canned body.
type fakeAgent struct {
	requests []agent.Request
	reply    []byte
	err      error
}

func (f *fakeAgent) Kind() agent.Kind                    { return agent.ACAPy }
func (f *fakeAgent) Endpoint() string                    { return "http://agent.test" }
func (f *fakeAgent) CheckEndpoint(context.Context) error { return nil }

func (f *fakeAgent) Do(_ context.Context, req agent.Request) (*agent.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &agent.Response{Status: 200, Body: f.reply}, nil
}

func (f *fakeAgent) last(t *testing.T) agent.Request {
	t.Helper()
	require.NotEmpty(t, f.requests, "no request was sent")
	return f.requests[len(f.requests)-1]
}

func newRuntime(reply string) (Runtime, *fakeAgent, *bytes.Buffer) {
	fa := &fakeAgent{reply: []byte(reply)}
	var out bytes.Buffer
	rt := Runtime{
		Agent: fa,
		Out:   output.New(config.OutputNormal, output.WithWriter(&out)),
		Log:   logging.Nop(),
	}
	return rt, fa, &out
}

// invocation parses args against the module's own flags.
func invocation(t *testing.T, m Module, args ...string) Invocation {
	t.Helper()
	cmd := m.Command()
	require.NoError(t, cmd.ParseFlags(args))
	return Invocation{Command: cmd.Name(), Flags: cmd.Flags()}
}

func emptyFlags() *pflag.FlagSet {
	return pflag.NewFlagSet("empty", pflag.ContinueOnError)
}
