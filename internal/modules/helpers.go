package modules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/animo/aries-cli/internal/agent"
)

func agentGet(path string, query url.Values) agent.Request {
	return agent.Request{Method: http.MethodGet, Path: path, Query: query}
}

func agentPost(path string, query url.Values, body any) agent.Request {
	if body == nil {
		body = struct{}{}
	}
	return agent.Request{Method: http.MethodPost, Path: path, Query: query, Body: body}
}

// printRaw pretty-prints a JSON document returned by the agent. Payloads are
// printed as the agent sent them, not re-modelled.
func printRaw(rt Runtime, raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting agent response: %w", err)
	}
	return rt.Out.Print(buf.String())
}
