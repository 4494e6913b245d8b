// Package web parses advertiser console flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	entrypoint "github.com/adreach/console/internal/platform/cmd"
	"github.com/adreach/console/internal/platform/logging"
	"github.com/adreach/console/internal/services/web"
	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
	webstorage "github.com/adreach/console/internal/services/web/storage"
	"github.com/adreach/console/internal/services/web/storage/memory"
	redisstore "github.com/adreach/console/internal/services/web/storage/redis"
	sqlitestore "github.com/adreach/console/internal/services/web/storage/sqlite"
)

// Session store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"ADREACH_WEB_HTTP_ADDR" envDefault:"localhost:8090"`
	APIBaseURL          string        `env:"ADREACH_WEB_API_BASE_URL" envDefault:"https://advertiserappnew.onrender.com"`
	APITimeout          time.Duration `env:"ADREACH_WEB_API_TIMEOUT" envDefault:"15s"`
	APIRateLimit        float64       `env:"ADREACH_WEB_API_RATE_LIMIT" envDefault:"20"`
	APIRateBurst        int           `env:"ADREACH_WEB_API_RATE_BURST" envDefault:"40"`
	SessionBackend      string        `env:"ADREACH_WEB_SESSION_BACKEND" envDefault:"sqlite"`
	SessionDBPath       string        `env:"ADREACH_WEB_SESSION_DB_PATH" envDefault:"data/web-sessions.db"`
	RedisURL            string        `env:"ADREACH_WEB_REDIS_URL"`
	TrustForwardedProto bool          `env:"ADREACH_WEB_TRUST_FORWARDED_PROTO"`
	DevPrefillOTP       bool          `env:"ADREACH_WEB_DEV_PREFILL_OTP"`
	Log                 logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	// Flags bind to cfg first; env fills it and explicit flags win.
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Advertiser API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Advertiser API request timeout")
	fs.Float64Var(&cfg.APIRateLimit, "api-rate-limit", cfg.APIRateLimit, "Advertiser API requests per second")
	fs.IntVar(&cfg.APIRateBurst, "api-rate-burst", cfg.APIRateBurst, "Advertiser API request burst")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session store backend: sqlite, redis or memory")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "SQLite session database path")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL or host:port for the redis session backend")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto and X-Forwarded-For from a proxy")
	fs.BoolVar(&cfg.DevPrefillOTP, "dev-prefill-otp", cfg.DevPrefillOTP, "Prefill the OTP field with the code echoed by development APIs")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format: text or json")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	return cfg, nil
}

// Run starts the advertiser console.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.Install(os.Stderr, cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		api, err := advapi.New(advapi.Config{
			BaseURL:   cfg.APIBaseURL,
			Timeout:   cfg.APITimeout,
			RateLimit: cfg.APIRateLimit,
			RateBurst: cfg.APIRateBurst,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("init advertiser api client: %w", err)
		}
		store, err := openSessionStore(ctx, cfg)
		if err != nil {
			return err
		}
		logger.Info("session store ready", "backend", cfg.SessionBackend)

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			API:           api,
			SessionStore:  store,
			SchemePolicy:  requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			DevPrefillOTP: cfg.DevPrefillOTP,
			Logger:        logger,
		})
		if err != nil {
			_ = store.Close()
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func openSessionStore(ctx context.Context, cfg Config) (webstorage.SessionStore, error) {
	switch cfg.SessionBackend {
	case BackendSQLite, "":
		store, err := sqlitestore.Open(cfg.SessionDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, nil
	case BackendRedis:
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis session store: %w", err)
		}
		return redisstore.New(client), nil
	case BackendMemory:
		slog.Warn("memory session store loses sessions on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
