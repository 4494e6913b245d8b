package dashboard

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// AnalyticsGateway loads the analytics report of the signed-in advertiser.
type AnalyticsGateway interface {
	LoadAnalytics(context.Context, advapi.AnalyticsFilter) (advapi.Analytics, error)
}

// NewAPIGateway builds the production dashboard gateway from the advertiser API client.
func NewAPIGateway(client *advapi.Client) AnalyticsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client *advapi.Client
}

func (g apiGateway) LoadAnalytics(ctx context.Context, filter advapi.AnalyticsFilter) (advapi.Analytics, error) {
	return g.client.From(ctx).Analytics(ctx, filter)
}

type unavailableGateway struct{}

func (unavailableGateway) LoadAnalytics(context.Context, advapi.AnalyticsFilter) (advapi.Analytics, error) {
	return advapi.Analytics{}, apperrors.EK(apperrors.KindUnavailable, advapi.KeyUnavailable, "dashboard service is not configured")
}
