package mock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Resolver answers a decoded request, honouring ctx cancellation.
type Resolver interface {
	Resolve(ctx context.Context, req *Request) (*Response, error)
}

// Transport is an http.RoundTripper that serves every request whose URL starts
// with Prefix from the Resolver and hands anything else to Base.
type Transport struct {
	Prefix   string
	Resolver Resolver
	Base     http.RoundTripper
}

// NewTransport creates a Transport that falls back to base, or to
// http.DefaultTransport when base is nil.
func NewTransport(prefix string, resolver Resolver, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &Transport{
		Prefix:   prefix,
		Resolver: resolver,
		Base:     base,
	}
}

// Intercepts reports whether req would be served by the mock.
func (t *Transport) Intercepts(req *http.Request) bool {
	return t.Prefix != "" && strings.HasPrefix(req.URL.String(), t.Prefix)
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.Intercepts(req) {
		return t.base().RoundTrip(req)
	}
	if req.Body != nil {
		defer req.Body.Close()
	}

	target := *req.URL
	target.RawQuery = ""
	target.Fragment = ""

	mockReq, err := NewRequest(strings.TrimPrefix(target.String(), t.Prefix), req)
	if err != nil {
		return nil, err
	}

	resp, err := t.Resolver.Resolve(req.Context(), mockReq)
	if err != nil {
		return nil, err
	}

	return encode(req, resp)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}

	return t.Base
}

func encode(req *http.Request, resp *Response) (*http.Response, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.Wrap(err, "encode mock response")
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Content-Length", strconv.Itoa(len(data)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status)),
		StatusCode:    resp.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}, nil
}

var installOnce sync.Once

// InstallDefault makes http.DefaultClient route through t. Only the first
// call in a process installs anything; it reports whether this call did.
func InstallDefault(t *Transport) bool {
	installed := false
	installOnce.Do(func() {
		if t.Base == nil {
			t.Base = http.DefaultClient.Transport
		}
		http.DefaultClient.Transport = t
		installed = true
	})

	return installed
}
