package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/animo/aries-cli/internal/branding"
	"github.com/animo/aries-cli/internal/logging"
	"github.com/google/uuid"
)

// Header names understood by ACA-Py.
const (
	headerAPIKey    = "X-API-Key"
	headerRequestID = "X-Request-ID"
)

// statusPath is the ACA-Py liveness endpoint used as the reachability probe.
const statusPath = "/status"

// HTTPAgent talks to an ACA-Py admin API over HTTP.
type HTTPAgent struct {
	endpoint   string
	apiKey     string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	log        *logging.Logger
}

// NewHTTPAgent validates cfg and returns an ACA-Py backend.
func NewHTTPAgent(cfg Config) (*HTTPAgent, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidEndpoint, cfg.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.Endpoint)
	}

	a := &HTTPAgent{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		userAgent:  branding.CLIName(),
		httpClient: cfg.HTTPClient,
		log:        cfg.Logger,
	}
	if cfg.Version != "" {
		a.userAgent += "/" + cfg.Version
	}
	if a.httpClient == nil {
		a.httpClient = http.DefaultClient
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	return a, nil
}

// Kind returns ACAPy.
func (a *HTTPAgent) Kind() Kind { return ACAPy }

// Endpoint returns the base URL without a trailing slash.
func (a *HTTPAgent) Endpoint() string { return a.endpoint }

// CheckEndpoint fetches /status. A 401 or 403 is reported as ErrUnauthorized
// rather than ErrAgentUnreachable. An agent reporting a version older than
// MinimumVersion only produces a warning.
func (a *HTTPAgent) CheckEndpoint(ctx context.Context) error {
	resp, err := a.Do(ctx, Request{Method: http.MethodGet, Path: statusPath})
	if errors.Is(err, ErrUnauthorized) {
		return fmt.Errorf("%s: %w", a.endpoint, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAgentUnreachable, a.endpoint, err)
	}

	var status struct {
		Version string `json:"version"`
		Label   string `json:"label"`
	}
	if json.Unmarshal(resp.Body, &status) != nil || status.Version == "" {
		return nil
	}

	supported, err := IsSupportedVersion(status.Version)
	switch {
	case err != nil:
		a.log.Debug().Err(err).Str("version", status.Version).Msg("could not parse agent version")
	case !supported:
		a.log.Warn().
			Str("version", status.Version).
			Str("minimum", MinimumVersion).
			Msg("agent is older than the oldest tested version")
	default:
		a.log.Debug().Str("version", status.Version).Str("label", status.Label).Msg("agent reachable")
	}
	return nil
}

// Do issues req and returns the body of a 2xx reply.
func (a *HTTPAgent) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target, err := a.url(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.New().String()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", a.userAgent)
	httpReq.Header.Set(headerRequestID, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if a.apiKey != "" {
		httpReq.Header.Set(headerAPIKey, a.apiKey)
	}

	start := time.Now()
	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	a.log.Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("agent request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method: method,
			Path:   req.Path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	return &Response{Status: resp.StatusCode, Body: data}, nil
}

func (a *HTTPAgent) url(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(a.endpoint + path)
	if err != nil {
		return "", fmt.Errorf("building request URL for %s: %w", path, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}
