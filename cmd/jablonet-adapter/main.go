package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"

	"github.com/alarmbridge/jablonet-adapter/internal/alarm"
	"github.com/alarmbridge/jablonet-adapter/internal/api"
	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
	"github.com/alarmbridge/jablonet-adapter/internal/publisher"
	intsecrets "github.com/alarmbridge/jablonet-adapter/internal/secrets"
	"github.com/alarmbridge/jablonet-adapter/pkg/config"
	"github.com/alarmbridge/jablonet-adapter/pkg/logger"
	pkgsecrets "github.com/alarmbridge/jablonet-adapter/pkg/secrets"
	"github.com/alarmbridge/jablonet-adapter/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Load configuration ---
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logg := logger.S()
	logg.Info("starting [jablonet-adapter]...")

	// --- Connect to NATS ---
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		logg.Fatalw("failed to connect to NATS", "error", err)
	}
	defer nc.Drain() //nolint:errcheck

	// --- Publisher ---
	pub, err := publisher.New(nc, cfg.OutboundSubject, "JABLONET_EVENTS")
	if err != nil {
		logg.Fatalw("failed to init publisher", "error", err)
	}

	// --- Secrets cache + AWS Secrets Manager provider ---
	cache := pkgsecrets.NewCache[jablonet.Credentials](cfg.CacheTTL)
	cleanerStop := make(chan struct{})
	go cache.StartCleaner(cfg.CleanupFreq, cleanerStop)
	defer close(cleanerStop)

	var provider pkgsecrets.Provider
	if cfg.CredentialsSecret != "" {
		provider, err = pkgsecrets.NewAWSProvider(cfg.AWSRegion)
		if err != nil {
			logg.Fatalw("failed to init AWS provider", "error", err)
		}
	}
	resolver := intsecrets.NewResolver(logger.L(), cfg, provider, cache)

	creds, err := resolver.Resolve(ctx)
	if err != nil {
		logg.Fatalw("failed to resolve Jablotron credentials", "error", err)
	}
	logg.Infow("credentials resolved", "username", utils.MaskEmail(creds.Username))

	// --- Jablotron Cloud client ---
	client := jablonet.NewClient(
		logger.L(),
		cfg.JablonetBaseURL,
		creds,
		&http.Client{Timeout: cfg.JablonetTimeout},
	)
	if cfg.EagerLogin {
		if err := client.Login(ctx); err != nil {
			logg.Fatalw("failed to log in to Jablotron Cloud", "error", err)
		}
	}

	// --- Alarm service (core adapter logic) ---
	alarmSvc := alarm.NewService(*cfg, logger.L(), client, pub)

	// --- HTTP API ---
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
		BodyLimit:    cfg.HTTPBodyLimit,
	})
	handler := api.NewAlarmHandler(logger.L(), alarmSvc)
	api.RegisterRoutes(app, nc, handler)

	go func() {
		logg.Infof("HTTP API listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	logg.Infow("[jablonet-adapter] running",
		"nats", cfg.NATSURL,
		"base_url", cfg.JablonetBaseURL,
		"service_type", cfg.ServiceType)

	<-ctx.Done()
	stop()
	logg.Info("shutting down [jablonet-adapter]...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.ShutdownWithContext(shutdownCtx) //nolint:errcheck
}
