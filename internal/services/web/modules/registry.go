package modules

import (
	"github.com/adreach/console/internal/services/web/modules/campaigns"
	"github.com/adreach/console/internal/services/web/modules/dashboard"
	"github.com/adreach/console/internal/services/web/modules/plans"
	"github.com/adreach/console/internal/services/web/modules/profile"
	"github.com/adreach/console/internal/services/web/modules/publicauth"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
)

// DefaultPublicModules returns the modules served without a session.
func DefaultPublicModules(deps Dependencies, base modulehandler.Base) []Module {
	return []Module{
		publicauth.New(authOptions(deps, base)...),
	}
}

// DefaultProtectedModules returns the modules served behind the session guard.
func DefaultProtectedModules(deps Dependencies, base modulehandler.Base) []Module {
	campaignGateway := campaigns.NewAPIGateway(deps.API)
	return []Module{
		publicauth.NewLogout(authOptions(deps, base)...),
		dashboard.New(
			dashboard.WithGateway(dashboard.NewAPIGateway(deps.API)),
			dashboard.WithBase(base),
		),
		plans.New(
			plans.WithGateway(plans.NewAPIGateway(deps.API)),
			plans.WithBase(base),
		),
		campaigns.New(
			campaigns.WithGateway(campaignGateway),
			campaigns.WithBase(base),
		),
		campaigns.NewDetails(
			campaigns.WithGateway(campaignGateway),
			campaigns.WithBase(base),
		),
		profile.New(
			profile.WithGateway(profile.NewAPIGateway(deps.API)),
			profile.WithBase(base),
			profile.WithViewerCache(viewerCache(deps.Sessions)),
		),
	}
}

func authOptions(deps Dependencies, base modulehandler.Base) []publicauth.Option {
	options := []publicauth.Option{
		publicauth.WithGateway(publicauth.NewAPIGateway(deps.API)),
		publicauth.WithBase(base),
		publicauth.WithSchemePolicy(deps.SchemePolicy),
		publicauth.WithDevPrefill(deps.DevPrefillOTP),
	}
	if deps.Sessions != nil {
		options = append(options, publicauth.WithSessions(deps.Sessions))
	}
	return options
}

func viewerCache(sessions SessionGuard) profile.ViewerCache {
	if sessions == nil {
		return nil
	}
	return sessions
}
