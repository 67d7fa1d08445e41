package secrets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
	"github.com/alarmbridge/jablonet-adapter/pkg/config"
	"github.com/alarmbridge/jablonet-adapter/pkg/secrets"
)

type fakeProvider struct {
	secrets map[string]map[string]string
	err     error
	calls   int
}

func (f *fakeProvider) GetSecret(ctx context.Context, key string) (map[string]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.secrets[key], nil
}

func newTestResolver(cfg *config.Config, provider *fakeProvider) *Resolver {
	cache := secrets.NewCache[jablonet.Credentials](time.Minute)
	return NewResolver(zap.NewNop(), cfg, provider, cache)
}

func TestResolveFromSecretsManager(t *testing.T) {
	provider := &fakeProvider{secrets: map[string]map[string]string{
		"prod/jablonet": {
			"username": "user@example.com",
			"password": "hunter2",
			"pin_code": "1234",
		},
	}}
	cfg := &config.Config{CredentialsSecret: "prod/jablonet"}
	r := newTestResolver(cfg, provider)

	creds, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", creds.Username)
	assert.Equal(t, "hunter2", creds.Password)
	assert.Equal(t, "1234", creds.PinCode)
}

func TestResolveCachesSecret(t *testing.T) {
	provider := &fakeProvider{secrets: map[string]map[string]string{
		"prod/jablonet": {"username": "u@e.com", "password": "p"},
	}}
	cfg := &config.Config{CredentialsSecret: "prod/jablonet"}
	r := newTestResolver(cfg, provider)

	_, err := r.Resolve(context.Background())
	require.NoError(t, err)
	_, err = r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
}

func TestResolveInvalidateBustsCache(t *testing.T) {
	provider := &fakeProvider{secrets: map[string]map[string]string{
		"prod/jablonet": {"username": "u@e.com", "password": "p"},
	}}
	cfg := &config.Config{CredentialsSecret: "prod/jablonet"}
	r := newTestResolver(cfg, provider)

	_, err := r.Resolve(context.Background())
	require.NoError(t, err)
	r.Invalidate()
	_, err = r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}

func TestResolveIncompleteSecret(t *testing.T) {
	provider := &fakeProvider{secrets: map[string]map[string]string{
		"prod/jablonet": {"username": "u@e.com"},
	}}
	cfg := &config.Config{CredentialsSecret: "prod/jablonet"}
	r := newTestResolver(cfg, provider)

	_, err := r.Resolve(context.Background())
	assert.ErrorContains(t, err, "missing username or password")
}

func TestResolveProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("access denied")}
	cfg := &config.Config{CredentialsSecret: "prod/jablonet"}
	r := newTestResolver(cfg, provider)

	_, err := r.Resolve(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestResolveEnvFallback(t *testing.T) {
	cfg := &config.Config{
		JablonetUsername: "env-user@example.com",
		JablonetPassword: "env-pass",
		JablonetPinCode:  "4321",
	}
	r := newTestResolver(cfg, &fakeProvider{})

	creds, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-user@example.com", creds.Username)
	assert.Equal(t, "4321", creds.PinCode)
}

func TestResolveNoCredentials(t *testing.T) {
	r := newTestResolver(&config.Config{}, &fakeProvider{})

	_, err := r.Resolve(context.Background())
	assert.ErrorContains(t, err, "no credentials configured")
}
