package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the jablonet-adapter.
type Config struct {
	ServiceName string
	Env         string
	LogLevel    string
	Port        int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	HTTPBodyLimit    int

	NATSURL         string
	OutboundSubject string

	AWSRegion         string
	CredentialsSecret string
	CacheTTL          time.Duration
	CleanupFreq       time.Duration

	// Jablonet-specific configuration.
	// Credentials are resolved from AWS Secrets Manager when
	// CredentialsSecret is set; the JABLONET_* variables are the
	// local-development fallback. See internal/secrets/resolver.go.
	JablonetBaseURL  string
	JablonetTimeout  time.Duration
	JablonetUsername string
	JablonetPassword string
	JablonetPinCode  string
	ServiceType      string

	// EagerLogin opens a vendor session at startup so the first request
	// does not pay the login round trip. Disable it to start the adapter
	// without touching the vendor (e.g. while credentials are rotated).
	EagerLogin bool
}

// Load loads configuration from environment variables and optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:       GetEnv("SERVICE_NAME", "jablonet-adapter"),
		Env:               GetEnv("ENV", "dev"),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
		Port:              GetEnvInt("JABLONET_PORT", 9040),
		HTTPReadTimeout:   GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout:  GetEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		HTTPIdleTimeout:   GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		HTTPBodyLimit:     GetEnvInt("HTTP_BODY_LIMIT", 1*1024*1024),
		NATSURL:           GetEnv("NATS_URL", "nats://localhost:4222"),
		OutboundSubject:   GetEnv("OUTBOUND_SUBJECT", "evt.alarm.state.v1.JABLONET"),
		AWSRegion:         GetEnv("AWS_REGION", "us-east-2"),
		CredentialsSecret: GetEnv("JABLONET_CREDENTIALS_SECRET", ""),
		CacheTTL:          GetEnvDuration("CACHE_TTL", 24*time.Hour),
		CleanupFreq:       GetEnvDuration("CACHE_CLEANUP_FREQ", 10*time.Minute),
		JablonetBaseURL:   GetEnv("JABLONET_BASE_URL", "https://api.jablonet.net/api/2.2"),
		JablonetTimeout:   GetEnvDuration("JABLONET_HTTP_TIMEOUT", 30*time.Second),
		JablonetUsername:  GetEnv("JABLONET_USERNAME", ""),
		JablonetPassword:  GetEnv("JABLONET_PASSWORD", ""),
		JablonetPinCode:   GetEnv("JABLONET_PIN_CODE", ""),
		ServiceType:       GetEnv("JABLONET_SERVICE_TYPE", "JA100"),
		EagerLogin:        GetEnvBool("JABLONET_EAGER_LOGIN", true),
	}
}
