package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, "todo", cfg.Database.DBName)
	assert.Equal(t, []byte("test-secret"), cfg.Auth.Secret)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("TOKEN_DURATION", "24h")
	t.Setenv("TRUSTED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.TrustedOrigins)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p",
		DBName: "todo", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=todo sslmode=disable", cfg.ConnectionString())

	cfg.ChannelBinding = "require"
	assert.Contains(t, cfg.ConnectionString(), "channel_binding=require")
}
