// Package dashboard serves the analytics dashboard and the placeholder
// dashboard sections.
package dashboard

import (
	"net/http"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
)

// Option configures a dashboard module.
type Option func(*Module)

// WithGateway sets the analytics gateway.
func WithGateway(g AnalyticsGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base for authenticated routes.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides authenticated dashboard routes.
type Module struct {
	gateway AnalyticsGateway
	base    modulehandler.Base
}

// New returns a dashboard module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the dashboard has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
