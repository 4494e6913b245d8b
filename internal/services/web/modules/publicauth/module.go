// Package publicauth serves the phone and OTP login pages and logout.
package publicauth

import (
	"net/http"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
	"github.com/adreach/console/internal/services/web/routepath"
)

type surface int

const (
	surfaceLogin surface = iota
	surfaceLogout
)

// Option configures a publicauth module.
type Option func(*Module)

// WithGateway sets the login gateway.
func WithGateway(g AuthGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithSessions sets the session guard used to sign browsers in and out.
func WithSessions(s SessionManager) Option {
	return func(m *Module) { m.sessions = s }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithSchemePolicy sets the request scheme policy for cookie handling.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = p }
}

// WithDevPrefill pre-fills the OTP input with a code echoed by the API.
func WithDevPrefill(enabled bool) Option {
	return func(m *Module) { m.devPrefill = enabled }
}

// Module provides the login surface or the logout surface.
type Module struct {
	surface    surface
	gateway    AuthGateway
	sessions   SessionManager
	base       modulehandler.Base
	policy     requestmeta.SchemePolicy
	devPrefill bool
}

// New returns the login module. Without a gateway the module renders pages
// but every OTP request fails as unavailable.
func New(opts ...Option) Module {
	m := Module{surface: surfaceLogin}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewLogout returns the logout module.
func NewLogout(opts ...Option) Module {
	m := New(opts...)
	m.surface = surfaceLogout
	return m
}

// ID returns a stable module identifier.
func (m Module) ID() string {
	if m.surface == surfaceLogout {
		return "logout"
	}
	return "publicauth"
}

// Healthy reports whether login has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the surface routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.devPrefill), m.base, m.sessions, m.policy)
	if m.surface == surfaceLogout {
		registerLogoutRoutes(mux, h)
		return module.Mount{Prefix: routepath.Logout + "/", Handler: mux}, nil
	}
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.LoginPrefix, Handler: mux}, nil
}
