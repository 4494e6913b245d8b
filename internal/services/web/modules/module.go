// Package modules defines web module registry helpers.
package modules

import (
	"github.com/adreach/console/internal/services/web/integration/advapi"
	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/modules/profile"
	"github.com/adreach/console/internal/services/web/modules/publicauth"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// SessionGuard is the session contract shared by the login and profile
// modules.
type SessionGuard interface {
	publicauth.SessionManager
	profile.ViewerCache
}

// Dependencies carries the advertiser API client and shared collaborators
// required to compose the web module registry.
//
// Request-scoped resolvers (viewer, advertiser id, language, session expiry)
// reach modules through the handler base built by the server.
type Dependencies struct {
	API           *advapi.Client
	Sessions      SessionGuard
	SchemePolicy  requestmeta.SchemePolicy
	DevPrefillOTP bool
}
