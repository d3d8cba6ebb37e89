package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/perspectivehealth/clinic-site/internal/api/router"
	"github.com/perspectivehealth/clinic-site/internal/chat"
	appconfig "github.com/perspectivehealth/clinic-site/internal/config"
	"github.com/perspectivehealth/clinic-site/internal/contact"
	httpmiddleware "github.com/perspectivehealth/clinic-site/internal/http/middleware"
	"github.com/perspectivehealth/clinic-site/internal/notify"
	"github.com/perspectivehealth/clinic-site/internal/observability/metrics"
	"github.com/perspectivehealth/clinic-site/internal/site"
	"github.com/perspectivehealth/clinic-site/internal/webchat"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting clinic-site API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Rate limit store: Redis when configured, in-process otherwise.
	var store httpmiddleware.Store
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		store = httpmiddleware.NewRedisStore(redis.NewClient(opts))
		logger.Info("rate limiting backed by redis", "addr", cfg.RedisAddr)
	} else {
		store = httpmiddleware.NewMemoryStore()
	}
	limiter := httpmiddleware.NewLimiter(store, cfg.RateLimitWindow, cfg.RateLimitMax, logger)
	limiter.StartSweeper(ctx, cfg.RateLimitSweep)

	// Contact storage: Postgres when configured, in-memory otherwise.
	var contactRepo contact.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		contactRepo = contact.NewPostgresRepository(pool)
		logger.Info("contact submissions stored in postgres")
	} else {
		contactRepo = contact.NewInMemoryRepository()
		logger.Warn("no DATABASE_URL set, contact submissions are not persisted")
	}

	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		sender = notify.NewStubEmailSender(logger)
	}

	var completion chat.CompletionClient
	if cfg.OpenAIAPIKey != "" {
		completion = chat.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.CompletionTimeout)
	} else {
		logger.Warn("no OPENAI_API_KEY set, chat answers FAQ and fallback only")
	}

	m := metrics.NewChatMetrics(prometheus.DefaultRegisterer)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chat.NewHandler(completion, limiter, m, logger),
		ContactHandler:     contact.NewHandler(contactRepo, sender, cfg.ContactEmail, m, logger),
		SiteHandler:        site.NewHandler(logger),
		WidgetHandler:      webchat.NewHandler(nil, logger),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
