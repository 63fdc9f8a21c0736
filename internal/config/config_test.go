package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigins(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want []string
	}{
		"wildcard":        {raw: "*", want: []string{"*"}},
		"single":          {raw: "https://snapsell.app", want: []string{"https://snapsell.app"}},
		"multiple padded": {raw: "https://snapsell.app, http://localhost:5173", want: []string{"https://snapsell.app", "http://localhost:5173"}},
		"trailing comma":  {raw: "https://snapsell.app,", want: []string{"https://snapsell.app"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, splitOrigins(tc.raw))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SNAPSELL_ADDR", "")
	t.Setenv("SNAPSELL_ALLOWED_ORIGINS", "")
	t.Setenv("SNAPSELL_DEFAULT_PROVIDER", "")

	cfg := Load()
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "azure", cfg.DefaultProvider)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SNAPSELL_ADDR", ":9000")
	t.Setenv("SNAPSELL_ALLOWED_ORIGINS", "https://snapsell.app")
	t.Setenv("SNAPSELL_DEFAULT_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("SNAPSELL_ANALYTICS_ENDPOINT", "https://analytics.example.com/capture")
	t.Setenv("SNAPSELL_ANALYTICS_KEY", "a-key")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"https://snapsell.app"}, cfg.AllowedOrigins)
	assert.Equal(t, "gemini", cfg.DefaultProvider)
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "https://analytics.example.com/capture", cfg.AnalyticsEndpoint)
	assert.Equal(t, "a-key", cfg.AnalyticsKey)
}
