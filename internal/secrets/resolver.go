package secrets

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
	"github.com/alarmbridge/jablonet-adapter/pkg/config"
	"github.com/alarmbridge/jablonet-adapter/pkg/secrets"
	"github.com/alarmbridge/jablonet-adapter/pkg/utils"
)

// Resolver produces the Jablotron Cloud credentials for this deployment.
// When a secret name is configured the credentials come from AWS Secrets
// Manager and are cached; otherwise the JABLONET_* environment variables
// are used as a local-development fallback.
type Resolver struct {
	logger   *zap.Logger
	cfg      *config.Config
	provider secrets.Provider
	cache    *secrets.Cache[jablonet.Credentials]
}

// NewResolver constructs a credentials resolver. provider may be nil when
// no secret name is configured.
func NewResolver(logger *zap.Logger, cfg *config.Config, provider secrets.Provider, cache *secrets.Cache[jablonet.Credentials]) *Resolver {
	return &Resolver{
		logger:   logger,
		cfg:      cfg,
		provider: provider,
		cache:    cache,
	}
}

// Resolve returns the credentials to use against the Jablotron Cloud.
func (r *Resolver) Resolve(ctx context.Context) (jablonet.Credentials, error) {
	if r.cfg.CredentialsSecret == "" {
		return r.fromEnv()
	}

	if creds, ok := r.cache.Get(r.cfg.CredentialsSecret); ok {
		return creds, nil
	}

	raw, err := r.provider.GetSecret(ctx, r.cfg.CredentialsSecret)
	if err != nil {
		r.logger.Warn("secrets.fetch_failed",
			zap.String("secret", r.cfg.CredentialsSecret),
			zap.Error(err))
		return jablonet.Credentials{}, fmt.Errorf("fetch credentials secret: %w", err)
	}

	creds := jablonet.Credentials{
		Username: raw["username"],
		Password: raw["password"],
		PinCode:  raw["pin_code"],
	}
	if creds.Username == "" || creds.Password == "" {
		return jablonet.Credentials{}, fmt.Errorf("secret %s is missing username or password", r.cfg.CredentialsSecret)
	}

	r.cache.Put(r.cfg.CredentialsSecret, creds)
	r.logger.Info("secrets.resolved",
		zap.String("secret", r.cfg.CredentialsSecret),
		zap.String("username", utils.MaskEmail(creds.Username)))
	return creds, nil
}

// Invalidate drops the cached credentials, forcing a re-fetch on the next
// Resolve. Used after an authentication failure that suggests rotation.
func (r *Resolver) Invalidate() {
	if r.cfg.CredentialsSecret != "" {
		r.cache.Bust(r.cfg.CredentialsSecret)
	}
}

func (r *Resolver) fromEnv() (jablonet.Credentials, error) {
	if r.cfg.JablonetUsername == "" || r.cfg.JablonetPassword == "" {
		return jablonet.Credentials{}, fmt.Errorf("no credentials configured: set JABLONET_CREDENTIALS_SECRET or JABLONET_USERNAME/JABLONET_PASSWORD")
	}
	return jablonet.Credentials{
		Username: r.cfg.JablonetUsername,
		Password: r.cfg.JablonetPassword,
		PinCode:  r.cfg.JablonetPinCode,
	}, nil
}
