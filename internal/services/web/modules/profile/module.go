// Package profile serves the advertiser profile card with the name and
// wallet forms.
package profile

import (
	"net/http"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
)

// Option configures a profile module.
type Option func(*Module)

// WithGateway sets the profile gateway.
func WithGateway(g ProfileGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base for authenticated routes.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithViewerCache sets the cache refreshed after a name change.
func WithViewerCache(c ViewerCache) Option {
	return func(m *Module) { m.viewers = c }
}

// Module provides authenticated profile routes.
type Module struct {
	gateway ProfileGateway
	base    modulehandler.Base
	viewers ViewerCache
}

// New returns a profile module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the profile has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base, m.viewers))
	return module.Mount{Prefix: routepath.ProfilePrefix, Handler: mux}, nil
}
