// Package mock resolves front-end API calls against the in-memory store. It
// decodes requests into a canonical shape, dispatches them through ordered
// handler groups and renders the backend's JSON envelope.
package mock

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// maxMultipartMemory bounds the in-memory part of a multipart form.
const maxMultipartMemory = 8 << 20

// BodyKind tags how a request body was encoded on the wire.
type BodyKind int

const (
	BodyEmpty BodyKind = iota
	BodyJSON
	BodyForm
	BodyMultipart
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyForm:
		return "form"
	case BodyMultipart:
		return "multipart"
	default:
		return "empty"
	}
}

// RawBody is a decoded request body before canonicalization. Only the fields
// matching Kind are set.
type RawBody struct {
	Kind  BodyKind
	JSON  []byte
	Form  url.Values
	Files map[string][]string
}

// Body is the canonical request body: string keys to JSON-like values.
// A nil Body means the request had none or it could not be parsed.
type Body map[string]any

// Canonical flattens the raw body. JSON that is not an object, or that does
// not parse, yields nil. Form fields with one value become plain strings and
// uploaded files are recorded by filename.
func (b RawBody) Canonical() Body {
	switch b.Kind {
	case BodyJSON:
		var body Body
		if err := json.Unmarshal(b.JSON, &body); err != nil {
			return nil
		}

		return body
	case BodyForm, BodyMultipart:
		body := make(Body, len(b.Form)+len(b.Files))
		for key, values := range b.Form {
			body[key] = flatten(values)
		}
		for key, names := range b.Files {
			body[key] = flatten(names)
		}

		return body
	default:
		return nil
	}
}

func flatten(values []string) any {
	if len(values) == 1 {
		return values[0]
	}

	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// DecodeBody reads r according to contentType. Unknown content types are
// attempted as JSON.
func DecodeBody(contentType string, r io.Reader) (RawBody, error) {
	if r == nil {
		return RawBody{Kind: BodyEmpty}, nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		data, err := io.ReadAll(r)
		if err != nil {
			return RawBody{}, errors.Wrap(err, "read form body")
		}
		form, err := url.ParseQuery(string(data))
		if err != nil {
			return RawBody{Kind: BodyEmpty}, nil
		}

		return RawBody{Kind: BodyForm, Form: form}, nil
	case "multipart/form-data":
		return decodeMultipart(r, params["boundary"])
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return RawBody{}, errors.Wrap(err, "read body")
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return RawBody{Kind: BodyEmpty}, nil
		}

		return RawBody{Kind: BodyJSON, JSON: data}, nil
	}
}

func decodeMultipart(r io.Reader, boundary string) (RawBody, error) {
	if boundary == "" {
		return RawBody{Kind: BodyEmpty}, nil
	}

	form, err := multipart.NewReader(r, boundary).ReadForm(maxMultipartMemory)
	if err != nil {
		return RawBody{Kind: BodyEmpty}, nil
	}
	defer form.RemoveAll()

	files := make(map[string][]string, len(form.File))
	for key, headers := range form.File {
		for _, h := range headers {
			files[key] = append(files[key], h.Filename)
		}
	}

	return RawBody{Kind: BodyMultipart, Form: url.Values(form.Value), Files: files}, nil
}

// Request is an API call addressed to a resource path such as
// "AdminPHP/getUser.php".
type Request struct {
	Resource string
	Method   string
	Query    url.Values
	Body     Body
	Header   http.Header
}

// NewRequest builds a Request from an *http.Request whose resource path has
// already been extracted.
func NewRequest(resource string, r *http.Request) (*Request, error) {
	raw, err := DecodeBody(r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		return nil, err
	}

	return &Request{
		Resource: CleanResource(resource),
		Method:   strings.ToUpper(r.Method),
		Query:    r.URL.Query(),
		Body:     raw.Canonical(),
		Header:   r.Header,
	}, nil
}

// CleanResource trims slashes around a resource path.
func CleanResource(resource string) string {
	return strings.Trim(resource, "/")
}

// Values merges query parameters and body fields; body fields win.
func (r *Request) Values() map[string]any {
	values := make(map[string]any, len(r.Query)+len(r.Body))
	for key, v := range r.Query {
		values[key] = flatten(v)
	}
	for key, v := range r.Body {
		values[key] = v
	}

	return values
}

// Value returns the named field from the body, falling back to the query.
func (r *Request) Value(key string) (any, bool) {
	if v, ok := r.Body[key]; ok && v != nil {
		return v, true
	}
	if r.Query.Has(key) {
		return r.Query.Get(key), true
	}

	return nil, false
}

// Int returns the named field as an int, zero when absent or malformed.
func (r *Request) Int(key string) int {
	var n int
	if v, ok := r.Value(key); ok {
		_ = mapstructure.WeakDecode(v, &n)
	}

	return n
}

// String returns the named field as a string, "" when absent.
func (r *Request) String(key string) string {
	var s string
	if v, ok := r.Value(key); ok {
		_ = mapstructure.WeakDecode(v, &s)
	}

	return strings.TrimSpace(s)
}
