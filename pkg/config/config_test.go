package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "jablonet-adapter", cfg.ServiceName)
	assert.Equal(t, 9040, cfg.Port)
	assert.Equal(t, "https://api.jablonet.net/api/2.2", cfg.JablonetBaseURL)
	assert.Equal(t, "JA100", cfg.ServiceType)
	assert.Equal(t, "evt.alarm.state.v1.JABLONET", cfg.OutboundSubject)
	assert.Equal(t, 30*time.Second, cfg.JablonetTimeout)
	assert.True(t, cfg.EagerLogin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JABLONET_PORT", "8080")
	t.Setenv("JABLONET_BASE_URL", "http://localhost:9999/api/2.2")
	t.Setenv("JABLONET_SERVICE_TYPE", "JA100F")
	t.Setenv("JABLONET_HTTP_TIMEOUT", "5s")
	t.Setenv("JABLONET_EAGER_LOGIN", "false")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:9999/api/2.2", cfg.JablonetBaseURL)
	assert.Equal(t, "JA100F", cfg.ServiceType)
	assert.Equal(t, 5*time.Second, cfg.JablonetTimeout)
	assert.False(t, cfg.EagerLogin)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "forty-two")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "90s")

	assert.Equal(t, "value", GetEnv("X_STR", "def"))
	assert.Equal(t, "def", GetEnv("X_MISSING", "def"))
	assert.Equal(t, 42, GetEnvInt("X_INT", 0))
	assert.Equal(t, 7, GetEnvInt("X_INT_BAD", 7))
	assert.True(t, GetEnvBool("X_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("X_DUR", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("X_MISSING", time.Second))
}
