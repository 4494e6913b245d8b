package plans

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// PlanGateway lists the purchasable plans.
type PlanGateway interface {
	ListPlans(context.Context) ([]advapi.Plan, error)
}

// NewAPIGateway builds the production plan gateway from the advertiser API client.
func NewAPIGateway(client *advapi.Client) PlanGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client *advapi.Client
}

func (g apiGateway) ListPlans(ctx context.Context) ([]advapi.Plan, error) {
	return g.client.From(ctx).Plans(ctx)
}

type unavailableGateway struct{}

func (unavailableGateway) ListPlans(context.Context) ([]advapi.Plan, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, advapi.KeyUnavailable, "plan service is not configured")
}
