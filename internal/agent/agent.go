package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/animo/aries-cli/internal/logging"
)

var (
	// ErrAgentUnreachable is returned by CheckEndpoint when the probe fails.
	ErrAgentUnreachable = errors.New("agent is unreachable")
	// ErrNotImplemented is returned by New for a recognised kind that has no backend yet.
	ErrNotImplemented = errors.New("agent backend not implemented")
	// ErrUnknownKind is returned by ParseKind for values that name no backend.
	ErrUnknownKind = errors.New("unknown agent kind")
	// ErrInvalidEndpoint is returned by New when the endpoint is not an http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid agent endpoint")
	// ErrUnauthorized matches a *StatusError carrying 401 or 403.
	ErrUnauthorized = errors.New("agent rejected the credentials")
)

// maxErrorBody bounds how much of a reply body an error message carries.
const maxErrorBody = 200

// Kind selects the backend implementation.
type Kind string

const (
	// ACAPy is an Aries Cloud Agent Python admin API.
	ACAPy Kind = "aca-py"
	// AFJRest is a REST wrapper around Aries Framework JavaScript.
	AFJRest Kind = "afj-rest"
)

// AllKinds returns every recognised kind, implemented or not.
func AllKinds() []Kind {
	return []Kind{ACAPy, AFJRest}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "aca-py", "acapy":
		return ACAPy, nil
	case "afj-rest", "afj":
		return AFJRest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Agent is the capability set every backend provides.
type Agent interface {
	Kind() Kind
	Endpoint() string
	// CheckEndpoint probes the agent; any failure wraps ErrAgentUnreachable.
	CheckEndpoint(ctx context.Context) error
	// Do issues one request against the agent.
	Do(ctx context.Context, req Request) (*Response, error)
}

// Request is a backend-neutral description of one agent call.
type Request struct {
	Method string
	// Path is appended to the endpoint; path segments must already be escaped.
	Path  string
	Query url.Values
	// Body is marshaled as JSON when non-nil.
	Body any
}

// Response is a successful (2xx) agent reply.
type Response struct {
	Status int
	Body   []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("parsing agent response: %w", err)
	}
	return nil
}

// StatusError reports a non-2xx reply from the agent.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := flatten(e.Body, maxErrorBody)
	if body == "" {
		return fmt.Sprintf("%s %s: agent returned status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: agent returned status %d: %s", e.Method, e.Path, e.Status, body)
}

// Is reports 401 and 403 replies as ErrUnauthorized.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// flatten collapses all whitespace runs to single spaces and cuts s to at
// most limit runes.
func flatten(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > limit {
		s = string(r[:limit]) + "..."
	}
	return s
}

// Config carries everything a backend needs. It is the single place where
// kind, endpoint and credential come together.
type Config struct {
	Endpoint string
	// APIKey is optional; without it requests are unauthenticated.
	APIKey string
	// Timeout bounds each request. Zero means no per-request timeout.
	Timeout    time.Duration
	Version    string
	HTTPClient *http.Client
	Logger     *logging.Logger
}

type constructor func(Config) (Agent, error)

// backends lists the implemented kinds.
var backends = map[Kind]constructor{
	ACAPy: func(cfg Config) (Agent, error) {
		a, err := NewHTTPAgent(cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
}

// Implemented reports whether New can build a backend for kind.
func Implemented(kind Kind) bool {
	_, ok := backends[kind]
	return ok
}

// New builds the backend for kind.
func New(kind Kind, cfg Config) (Agent, error) {
	build, ok := backends[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, kind)
	}
	return build(cfg)
}
