package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mock": map[string]any{
			"resetEnabled":     false,
			"interceptBaseUrl": "",
			"latency":          "120ms",
		},
		"http": map[string]any{
			"maxRequestBodySize": "2MB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MOCK_RESETENABLED", want: "mock.resetEnabled"},
		{envKey: "MOCK_INTERCEPTBASEURL", want: "mock.interceptBaseUrl"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "MOCK_LATENCY", want: "mock.latency"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := `
env:
  serviceName: telemock
  log:
    level: info
http:
  port: 9000
mock:
  apiPrefix: /api
  latency: 50ms
  resetEnabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	t.Setenv("MOCK_RESETENABLED", "true")
	t.Setenv("MOCK_LATENCY", "5ms")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "telemock", cfg.Env.ServiceName)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	require.NotNil(t, cfg.Mock)
	assert.True(t, cfg.Mock.ResetEnabled)
	assert.Equal(t, 5*time.Millisecond, cfg.Mock.Latency)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Mock)
	assert.Equal(t, "/api", cfg.Mock.APIPrefix)
	assert.Equal(t, defaultLatency, cfg.Mock.Latency)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 8080, cfg.HTTP.Port)

	cfg = &Config{Mock: &MockConfig{APIPrefix: "mock/api/"}}
	cfg.applyDefaults()
	assert.Equal(t, "/mock/api", cfg.Mock.APIPrefix)
}
