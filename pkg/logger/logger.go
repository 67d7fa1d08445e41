package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultService is the identity used when Init is called with an empty
// service name, and by the lazy L()/S() fallback.
const DefaultService = "jablonet-adapter"

var log *zap.Logger
var sugar *zap.SugaredLogger

// Init builds the process-wide logger. A "dev" environment gets a colored
// console encoder for local runs; every other environment logs JSON with
// the service identity stamped on each entry, so shipped adapter logs stay
// attributable after aggregation.
func Init(service, env, level string) {
	if service == "" {
		service = DefaultService
	}

	var cfg zap.Config
	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Level override; an unparsable value keeps the config default.
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if env != "dev" {
		opts = append(opts, zap.Fields(
			zap.String("service", service),
			zap.String("env", env),
		))
	}

	built, err := cfg.Build(opts...)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	log = built
	sugar = built.Sugar()

	sugar.Infow("logger initialized",
		"service", service,
		"env", env,
		"level", level,
	)
}

// L returns the base structured Zap logger (for performance-sensitive paths).
func L() *zap.Logger {
	if log == nil {
		Init(DefaultService, "dev", "info")
	}
	return log
}

// S returns the Sugared logger (for convenience).
func S() *zap.SugaredLogger {
	if sugar == nil {
		Init(DefaultService, "dev", "info")
	}
	return sugar
}

// Sync flushes any buffered logs (defer this in main()).
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
