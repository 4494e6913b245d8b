// Package campaigns serves the campaign list, the creation wizard and the
// campaign detail pages.
package campaigns

import (
	"net/http"

	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
)

type surface int

const (
	surfaceList surface = iota
	surfaceDetails
)

// Option configures a campaigns module.
type Option func(*Module)

// WithGateway sets the campaign gateway.
func WithGateway(g CampaignGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base for authenticated routes.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides the campaign list and wizard surface or the campaign
// details surface.
type Module struct {
	surface surface
	gateway CampaignGateway
	base    modulehandler.Base
}

// New returns the campaign list and wizard module.
func New(opts ...Option) Module {
	m := Module{surface: surfaceList}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewDetails returns the campaign details module.
func NewDetails(opts ...Option) Module {
	m := New(opts...)
	m.surface = surfaceDetails
	return m
}

// ID returns a stable module identifier.
func (m Module) ID() string {
	if m.surface == surfaceDetails {
		return "campaign-details"
	}
	return "campaigns"
}

// Healthy reports whether campaigns has an operational gateway.
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
	h := newHandlers(newService(m.gateway), m.base)
	if m.surface == surfaceDetails {
		registerDetailRoutes(mux, h)
		return module.Mount{Prefix: routepath.CampaignDetailsPrefix, Handler: mux}, nil
	}
	registerListRoutes(mux, h)
	return module.Mount{Prefix: routepath.CampaignsPrefix, Handler: mux}, nil
}
