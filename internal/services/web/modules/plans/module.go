// Package plans serves the purchasable plan list.
package plans

import (
	"net/http"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
)

// Option configures a plans module.
type Option func(*Module)

// WithGateway sets the plan gateway.
func WithGateway(g PlanGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base for authenticated routes.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides the authenticated plan list route.
type Module struct {
	gateway PlanGateway
	base    modulehandler.Base
}

// New returns a plans module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "plans" }

// Healthy reports whether the plan list has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the plan list route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	registerRoutes(mux, newHandlers(gateway, m.base))
	return module.Mount{Prefix: routepath.PlanList + "/", Handler: mux}, nil
}
