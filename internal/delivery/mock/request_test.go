package mock

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantKind    BodyKind
		want        Body
	}{
		{
			name:        "json object",
			contentType: "application/json",
			body:        `{"username":"cliente","id":3}`,
			wantKind:    BodyJSON,
			want:        Body{"username": "cliente", "id": float64(3)},
		},
		{
			name:        "unknown content type parsed as json",
			contentType: "text/plain",
			body:        `{"a":true}`,
			wantKind:    BodyJSON,
			want:        Body{"a": true},
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"a":`,
			wantKind:    BodyJSON,
			want:        nil,
		},
		{
			name:        "json array is not an object",
			contentType: "application/json",
			body:        `[1,2]`,
			wantKind:    BodyJSON,
			want:        nil,
		},
		{
			name:        "blank body",
			contentType: "application/json",
			body:        "  \n",
			wantKind:    BodyEmpty,
			want:        nil,
		},
		{
			name:        "urlencoded form",
			contentType: "application/x-www-form-urlencoded; charset=utf-8",
			body:        "nombre=Ana&tag=a&tag=b",
			wantKind:    BodyForm,
			want:        Body{"nombre": "Ana", "tag": []any{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeBody(tt.contentType, strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, raw.Kind)
			assert.Equal(t, tt.want, raw.Canonical())
		})
	}
}

func TestDecodeBody_Multipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("nombre", "Oxímetro"))
	part, err := w.CreateFormFile("imagen", "oximetro.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := DecodeBody(w.FormDataContentType(), &buf)
	require.NoError(t, err)
	assert.Equal(t, BodyMultipart, raw.Kind)
	assert.Equal(t, "multipart", raw.Kind.String())
	assert.Equal(t, Body{"nombre": "Oxímetro", "imagen": "oximetro.png"}, raw.Canonical())
}

func TestDecodeBody_MultipartWithoutBoundary(t *testing.T) {
	raw, err := DecodeBody("multipart/form-data", strings.NewReader("garbage"))
	require.NoError(t, err)
	assert.Equal(t, BodyEmpty, raw.Kind)
	assert.Nil(t, raw.Canonical())
}

func TestNewRequest(t *testing.T) {
	httpReq := httptest.NewRequest(http.MethodPost, "/api/AdminPHP/getUser.php?id_usuario=3&rol=Medico", strings.NewReader(`{"rol":"Paciente","activo":1}`))
	httpReq.Header.Set("Content-Type", "application/json")

	req, err := NewRequest("/AdminPHP/getUser.php/", httpReq)
	require.NoError(t, err)

	assert.Equal(t, "AdminPHP/getUser.php", req.Resource)
	assert.Equal(t, http.MethodPost, req.Method)

	assert.Equal(t, "Paciente", req.String("rol"), "body wins over query")
	assert.Equal(t, 3, req.Int("id_usuario"))
	assert.Equal(t, 1, req.Int("activo"))
	assert.Zero(t, req.Int("missing"))
	assert.Empty(t, req.String("missing"))

	values := req.Values()
	assert.Equal(t, "Paciente", values["rol"])
	assert.Equal(t, "3", values["id_usuario"])
}

func TestRequest_IntIgnoresMalformed(t *testing.T) {
	req := &Request{Body: Body{"id": "abc", "n": " 7"}}

	assert.Zero(t, req.Int("id"))
	assert.Equal(t, "7", req.String("n"))
}
