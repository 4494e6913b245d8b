// Package web hosts the browser-facing advertiser console.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adreach/console/internal/platform/timeouts"
	webapp "github.com/adreach/console/internal/services/web/app"
	"github.com/adreach/console/internal/services/web/integration/advapi"
	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/modules"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	webi18n "github.com/adreach/console/internal/services/web/platform/i18n"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
	"github.com/adreach/console/internal/services/web/session"
	webstatic "github.com/adreach/console/internal/services/web/static"
	webstorage "github.com/adreach/console/internal/services/web/storage"
	"github.com/go-chi/chi/v5/middleware"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr      string
	API           *advapi.Client
	SessionStore  webstorage.SessionStore
	SessionTTL    time.Duration
	SchemePolicy  requestmeta.SchemePolicy
	DevPrefillOTP bool
	Logger        *slog.Logger
}

// Server hosts the console HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      webstorage.SessionStore
	logger     *slog.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessions, err := session.NewManager(session.Config{
		Store:  cfg.SessionStore,
		API:    cfg.API,
		Policy: cfg.SchemePolicy,
		TTL:    cfg.SessionTTL,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init session guard: %w", err)
	}
	base := modulehandler.NewBase(module.Dependencies{
		ResolveViewer:       sessions.Viewer,
		ResolveSignedIn:     sessions.IsAuthenticated,
		ResolveUserID:       sessions.AdvertiserID,
		ResolveLanguage:     resolveRequestLanguage,
		ExpireSession:       sessions.Expire,
		RequestSchemePolicy: cfg.SchemePolicy,
	})
	deps := modules.Dependencies{
		API:           cfg.API,
		Sessions:      sessions,
		SchemePolicy:  cfg.SchemePolicy,
		DevPrefillOTP: cfg.DevPrefillOTP,
	}
	h, err := webapp.BuildRootHandler(webapp.Config{
		Authenticated:    sessions.IsAuthenticated,
		PublicModules:    modules.DefaultPublicModules(deps, base),
		ProtectedModules: modules.DefaultProtectedModules(deps, base),
		SchemePolicy:     cfg.SchemePolicy,
		Static:           webstatic.FS,
	})
	if err != nil {
		return nil, err
	}
	var realIP httpx.Middleware
	if cfg.SchemePolicy.TrustForwardedProto {
		realIP = middleware.RealIP
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		realIP,
		httpx.AccessLog(logger),
		sessions.Middleware(),
	), nil
}

func resolveRequestLanguage(r *http.Request) string {
	return webi18n.ResolveTag(r, nil).String()
}

// NewServer validates config and constructs a web server. The server owns
// the session store and closes it on Close.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		store:  cfg.SessionStore,
		logger: logger,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web console listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("close session store", "error", err)
		}
	}
}
