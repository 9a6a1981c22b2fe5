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
		"store": map[string]any{
			"provider": "memory",
		},
		"genai": map[string]any{
			"apiKey": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"env": map[string]any{
			"timeZone": "Asia/Tokyo",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_PROVIDER", want: "store.provider"},
		{envKey: "GENAI_APIKEY", want: "genai.apiKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ENV_TIMEZONE", want: "env.timeZone"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_AppliesEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  env: develop
  timeZone: Asia/Tokyo
http:
  port: 8080
  timeouts:
    readTimeout: 5s
store:
  provider: memory
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "library.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("STORE_PROVIDER", "firestore")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("library")
	require.NoError(t, err)

	assert.Equal(t, "firestore", cfg.Store.Provider)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "Asia/Tokyo", cfg.Env.TimeZone)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{GenAI: &GenAIConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultTimeZone, cfg.Env.TimeZone)
	assert.Equal(t, defaultStoreProvider, cfg.Store.Provider)
	assert.Equal(t, defaultGenAIModel, cfg.GenAI.Model)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := &Config{}
	cfg.Env.TimeZone = "Nowhere/Invalid"

	assert.Equal(t, time.UTC, cfg.Location())
}
