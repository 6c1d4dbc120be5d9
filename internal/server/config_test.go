package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.False(t, cfg.UseHttp2)
}

func TestLoadConfig_CorsOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CORS_ORIGINS", " http://localhost:3000 ,, https://newsninja.example ")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://newsninja.example"}, cfg.CorsOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	t.Setenv("PORT", "not-a-port")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = LoadConfig()
	assert.Error(t, err)
}
