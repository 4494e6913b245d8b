// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/platform/requestmeta"
)

// Viewer contains user-facing chrome data for authenticated app pages.
type Viewer struct {
	AdvertiserID string
	DisplayName  string
	Phone        string
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in advertiser.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the signed-in advertiser id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ExpireSession drops the local session after the advertiser API rejected it.
type ExpireSession func(http.ResponseWriter, *http.Request)

// Dependencies carries the request-scoped resolvers shared by all modules.
type Dependencies struct {
	ResolveViewer       ResolveViewer
	ResolveSignedIn     ResolveSignedIn
	ResolveUserID       ResolveUserID
	ResolveLanguage     ResolveLanguage
	ExpireSession       ExpireSession
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
