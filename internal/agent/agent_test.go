package agent

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/animo/aries-cli/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"aca-py":   ACAPy,
		"acapy":    ACAPy,
		"afj-rest": AFJRest,
		"afj":      AFJRest,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("indy-cli")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAllKinds(t *testing.T) {
	assert.Equal(t, []Kind{ACAPy, AFJRest}, AllKinds())
}

func TestNew_ACAPy(t *testing.T) {
	a, err := New(ACAPy, Config{Endpoint: "https://agent.example/"})
	require.NoError(t, err)
	assert.Equal(t, ACAPy, a.Kind())
	assert.Equal(t, "https://agent.example", a.Endpoint())
}

func TestNew_NotImplemented(t *testing.T) {
	a, err := New(AFJRest, Config{Endpoint: "https://agent.example"})
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestNew_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "agent.example", "ftp://agent.example", "http://", "::bad"} {
		a, err := New(ACAPy, Config{Endpoint: endpoint})
		assert.Nil(t, a, endpoint)
		assert.ErrorIs(t, err, ErrInvalidEndpoint, endpoint)
	}
}

func TestCheckEndpoint_Reachable(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		w.Write([]byte(`{"version": "0.8.1", "label": "community"}`))
	}))
	defer server.Close()

	a, err := New(ACAPy, Config{Endpoint: server.URL, APIKey: "secret"})
	require.NoError(t, err)
	require.NoError(t, a.CheckEndpoint(context.Background()))
	assert.Equal(t, "/status", gotPath)
	assert.Equal(t, "secret", gotKey)
}

func TestCheckEndpoint_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	a, err := New(ACAPy, Config{Endpoint: endpoint, Timeout: time.Second})
	require.NoError(t, err)
	err = a.CheckEndpoint(context.Background())
	assert.ErrorIs(t, err, ErrAgentUnreachable)
}

func TestCheckEndpoint_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>\n<body>502 Bad Gateway</body>\n</html>\n"))
	}))
	defer server.Close()

	a, err := New(ACAPy, Config{Endpoint: server.URL})
	require.NoError(t, err)
	err = a.CheckEndpoint(context.Background())
	assert.ErrorIs(t, err, ErrAgentUnreachable)

	var se *StatusError
	assert.False(t, errors.As(err, &se), "status detail is flattened into the unreachable message")
	assert.Contains(t, err.Error(), "502")
	assert.NotContains(t, err.Error(), "\n")
}

func TestCheckEndpoint_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid api key", status)
		}))

		a, err := New(ACAPy, Config{Endpoint: server.URL, APIKey: "wrong"})
		require.NoError(t, err)
		err = a.CheckEndpoint(context.Background())
		server.Close()

		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
		assert.NotErrorIs(t, err, ErrAgentUnreachable, "status %d", status)
	}
}

func TestCheckEndpoint_OldVersionOnlyWarns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "0.6.0"}`))
	}))
	defer server.Close()

	var buf safeBuffer
	a, err := New(ACAPy, Config{Endpoint: server.URL, Logger: logging.New(&buf, "warn")})
	require.NoError(t, err)
	require.NoError(t, a.CheckEndpoint(context.Background()))
	assert.Contains(t, buf.String(), "older than the oldest tested version")
}

func TestDo_RequestShape(t *testing.T) {
	var got *http.Request
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte(`{"connection_id": "c1"}`))
	}))
	defer server.Close()

	a, err := New(ACAPy, Config{Endpoint: server.URL + "/", Version: "1.2.3"})
	require.NoError(t, err)

	resp, err := a.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/connections/create-invitation",
		Query:  url.Values{"auto_accept": {"true"}},
		Body:   map[string]string{"my_label": "x"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/connections/create-invitation", got.URL.Path)
	assert.Equal(t, "true", got.URL.Query().Get("auto_accept"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "aries-cli/1.2.3", got.Header.Get("User-Agent"))
	assert.Empty(t, got.Header.Get("X-API-Key"), "no key configured")
	_, err = uuid.Parse(got.Header.Get("X-Request-ID"))
	assert.NoError(t, err, "request id should be a uuid")
	assert.JSONEq(t, `{"my_label": "x"}`, gotBody)

	var out struct {
		ConnectionID string `json:"connection_id"`
	}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "c1", out.ConnectionID)
}

func TestDo_DefaultMethodAndRelativePath(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	a, err := New(ACAPy, Config{Endpoint: server.URL})
	require.NoError(t, err)
	_, err = a.Do(context.Background(), Request{Path: "features"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/features", path)
}

func TestDo_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "connection not found", http.StatusNotFound)
	}))
	defer server.Close()

	a, err := New(ACAPy, Config{Endpoint: server.URL})
	require.NoError(t, err)
	_, err = a.Do(context.Background(), Request{Path: "/connections/nope"})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "connection not found", se.Body)
	assert.Contains(t, se.Error(), "GET /connections/nope")
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestStatusErrorIsOneLine(t *testing.T) {
	se := &StatusError{
		Method: http.MethodPost,
		Path:   "/schemas",
		Status: http.StatusInternalServerError,
		Body:   "{\n  \"error\": \"ledger\n  unavailable\"\n}",
	}
	assert.Equal(t, `POST /schemas: agent returned status 500: { "error": "ledger unavailable" }`, se.Error())

	se.Body = strings.Repeat("x", maxErrorBody+50)
	msg := se.Error()
	assert.True(t, strings.HasSuffix(msg, strings.Repeat("x", maxErrorBody)+"..."))
	assert.NotContains(t, msg, strings.Repeat("x", maxErrorBody+1))
}

func TestImplemented(t *testing.T) {
	assert.True(t, Implemented(ACAPy))
	assert.False(t, Implemented(AFJRest))
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	a, err := New(ACAPy, Config{Endpoint: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	_, err = a.Do(context.Background(), Request{Path: "/status"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResponseDecode_Invalid(t *testing.T) {
	r := &Response{Status: 200, Body: []byte("not json")}
	var v map[string]any
	assert.Error(t, r.Decode(&v))
}
