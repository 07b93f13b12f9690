package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/animo/aries-cli/internal/agent"
	"github.com/animo/aries-cli/internal/config"
	"github.com/animo/aries-cli/internal/modules"
	"github.com/animo/aries-cli/internal/platform"
)

func TestDescribeDistinctMessages(t *testing.T) {
	errs := map[string]error{
		"platform":     platform.DetectOS("plan9").Check(),
		"exists":       fmt.Errorf("%w: /x", config.ErrConfigAlreadyExists),
		"missing":      fmt.Errorf("%w: /x", config.ErrConfigMissing),
		"malformed":    fmt.Errorf("%w: bad", config.ErrConfigMalformed),
		"env":          fmt.Errorf("%w: %q", config.ErrEnvironmentNotFound, "x"),
		"no endpoint":  fmt.Errorf("%w: %w", config.ErrNoEndpointResolved, config.ErrConfigMissing),
		"no env":       fmt.Errorf("%w: %w", config.ErrNoEndpointResolved, config.ErrEnvironmentNotFound),
		"no flag":      &modules.NoFlagSuppliedError{Command: "configuration"},
		"unreachable":  fmt.Errorf("%w: http://x", agent.ErrAgentUnreachable),
		"unsupported":  fmt.Errorf("%w: afj-rest", agent.ErrNotImplemented),
		"agent status": fmt.Errorf("schema: %w", &agent.StatusError{Method: "GET", Path: "/schemas", Status: 500}),
		"unauthorized": fmt.Errorf("http://x: %w", &agent.StatusError{Method: "GET", Path: "/status", Status: 401}),
		"unknown kind": fmt.Errorf("%w: %q", agent.ErrUnknownKind, "indy"),
	}

	seen := map[string]string{}
	for name, err := range errs {
		msg := Describe(err)
		if msg == "" {
			t.Errorf("%s: empty message", name)
		}
		if other, ok := seen[msg]; ok {
			t.Errorf("%s and %s share the message %q", name, other, msg)
		}
		seen[msg] = name
	}
}

func TestDescribeNoFlagSupplied(t *testing.T) {
	msg := Describe(fmt.Errorf("schema: %w", &modules.NoFlagSuppliedError{Command: "schema"}))
	if !strings.Contains(msg, `"schema"`) {
		t.Errorf("message %q does not name the command", msg)
	}
}

func TestDescribeFallsBack(t *testing.T) {
	if got := Describe(errors.New("plain")); got != "plain" {
		t.Errorf("Describe = %q, want %q", got, "plain")
	}
	if got := Describe(nil); got != "" {
		t.Errorf("Describe(nil) = %q, want empty", got)
	}
}

func TestDescribeIsOneLine(t *testing.T) {
	errs := []error{
		fmt.Errorf("%w: http://x: %v", agent.ErrAgentUnreachable,
			&agent.StatusError{Method: "GET", Path: "/status", Status: 502, Body: "<html>\n<body>502 Bad Gateway</body>\n</html>"}),
		fmt.Errorf("schema: %w", errors.New("first line\nsecond line")),
		fmt.Errorf("%w: /x: yaml: line 2:\n  bad", config.ErrConfigMalformed),
	}
	for _, err := range errs {
		if msg := Describe(err); strings.Contains(msg, "\n") {
			t.Errorf("Describe(%q) = %q, want a single line", err, msg)
		}
	}
}

func TestDescribeUnauthorizedIsNotUnreachable(t *testing.T) {
	err := fmt.Errorf("http://x: %w", &agent.StatusError{Method: "GET", Path: "/status", Status: 403})
	msg := Describe(err)
	if !strings.Contains(msg, "refused the api key") {
		t.Errorf("Describe = %q, want the api key wording", msg)
	}
}

func TestDescribeUnknownKindMarksUnimplemented(t *testing.T) {
	msg := Describe(fmt.Errorf("%w: %q", agent.ErrUnknownKind, "indy"))
	if !strings.Contains(msg, "aca-py, afj-rest (not implemented)") {
		t.Errorf("Describe = %q, want afj-rest marked as not implemented", msg)
	}
}
