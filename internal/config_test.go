package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gnosis")
	t.Setenv("ENV", "")
	t.Setenv("PER_PAGE", "")
	t.Setenv("SEARCH_RATE_LIMIT", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, 60, cfg.SearchRateLimit)
	assert.Equal(t, "web/static", cfg.StaticDir)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gnosis")
	t.Setenv("ENV", "production")
	t.Setenv("PER_PAGE", "50")
	t.Setenv("SEARCH_RATE_LIMIT", "0")
	t.Setenv("WRITE_TIMEOUT", "5s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 50, cfg.PerPage)
	assert.Equal(t, 0, cfg.SearchRateLimit)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing database", map[string]string{"DATABASE_URL": ""}, "DATABASE_URL is required"},
		{"per page too large", map[string]string{"PER_PAGE": "101"}, "PER_PAGE must be between 1 and 100"},
		{"per page zero", map[string]string{"PER_PAGE": "0"}, "PER_PAGE must be between 1 and 100"},
		{"negative rate limit", map[string]string{"SEARCH_RATE_LIMIT": "-1"}, "SEARCH_RATE_LIMIT"},
		{"bad port", map[string]string{"PORT": "70000"}, "PORT must be a valid TCP port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/gnosis")
			t.Setenv("PER_PAGE", "")
			t.Setenv("SEARCH_RATE_LIMIT", "")
			t.Setenv("PORT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("GNOSIS_TEST_INT", "twenty")
	assert.Equal(t, 20, getEnvInt("GNOSIS_TEST_INT", 20))
}
