package mock

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFunc func(ctx context.Context, req *Request) (*Response, error)

func (f resolverFunc) Resolve(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

func TestTransport_InterceptsPrefixedRequests(t *testing.T) {
	var seen *Request
	resolver := resolverFunc(func(_ context.Context, req *Request) (*Response, error) {
		seen = req

		return Created(Fields{"user": map[string]any{"id": 7}}).WithMessage("Registro exitoso"), nil
	})

	client := &http.Client{Transport: NewTransport("http://api.local/api", resolver, nil)}

	resp, err := client.Post("http://api.local/api/auth/register?src=web#top", "application/json", strings.NewReader(`{"username":"nuevo"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registro exitoso", body["message"])

	require.NotNil(t, seen)
	assert.Equal(t, "auth/register", seen.Resource)
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "web", seen.Query.Get("src"))
	assert.Equal(t, "nuevo", seen.String("username"))
}

func TestTransport_PassesThroughOtherURLs(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "real")
	}))
	defer upstream.Close()

	resolver := resolverFunc(func(context.Context, *Request) (*Response, error) {
		t.Fatal("resolver must not see pass-through requests")

		return nil, nil
	})
	client := &http.Client{Transport: NewTransport("http://api.local/api", resolver, upstream.Client().Transport)}

	resp, err := client.Get(upstream.URL + "/anything")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "real", string(data))
}

func TestTransport_EmptyPrefixInterceptsNothing(t *testing.T) {
	transport := NewTransport("", nil, nil)
	req := httptest.NewRequest(http.MethodGet, "http://api.local/api/x", nil)

	assert.False(t, transport.Intercepts(req))
}

func TestTransport_ResolverErrorSurfaces(t *testing.T) {
	resolver := resolverFunc(func(ctx context.Context, _ *Request) (*Response, error) {
		return nil, context.Canceled
	})
	client := &http.Client{Transport: NewTransport("http://api.local", resolver, nil)}

	_, err := client.Get("http://api.local/chat/stream")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInstallDefault_OnlyOnce(t *testing.T) {
	original := http.DefaultClient.Transport
	t.Cleanup(func() { http.DefaultClient.Transport = original })

	resolver := resolverFunc(func(context.Context, *Request) (*Response, error) {
		return OK(Fields{"ok": true}), nil
	})

	first := NewTransport("http://mock.local", resolver, nil)
	assert.True(t, InstallDefault(first))
	assert.Same(t, first, http.DefaultClient.Transport)

	assert.False(t, InstallDefault(NewTransport("http://other.local", resolver, nil)))
	assert.Same(t, first, http.DefaultClient.Transport)
}
