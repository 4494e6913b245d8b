package campaigns

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// CampaignGateway performs the campaign calls of the signed-in advertiser.
type CampaignGateway interface {
	ListCampaigns(context.Context) ([]advapi.Campaign, error)
	LoadCampaign(ctx context.Context, campaignID string) (advapi.Campaign, error)
	RenameCampaign(ctx context.Context, campaignID string, name string) error
	ListPlans(context.Context) ([]advapi.Plan, error)
	CreateCampaign(context.Context, advapi.NewCampaign) error
	LoadProfile(context.Context) (advapi.User, error)
}

// NewAPIGateway builds the production campaign gateway from the advertiser API client.
func NewAPIGateway(client *advapi.Client) CampaignGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client *advapi.Client
}

func (g apiGateway) ListCampaigns(ctx context.Context) ([]advapi.Campaign, error) {
	return g.client.From(ctx).Campaigns(ctx)
}

func (g apiGateway) LoadCampaign(ctx context.Context, campaignID string) (advapi.Campaign, error) {
	return g.client.From(ctx).Campaign(ctx, campaignID)
}

func (g apiGateway) RenameCampaign(ctx context.Context, campaignID string, name string) error {
	return g.client.From(ctx).RenameCampaign(ctx, campaignID, name)
}

func (g apiGateway) ListPlans(ctx context.Context) ([]advapi.Plan, error) {
	return g.client.From(ctx).Plans(ctx)
}

func (g apiGateway) CreateCampaign(ctx context.Context, input advapi.NewCampaign) error {
	return g.client.From(ctx).CreateCampaign(ctx, input)
}

func (g apiGateway) LoadProfile(ctx context.Context) (advapi.User, error) {
	return g.client.From(ctx).Profile(ctx)
}

type unavailableGateway struct{}

func (unavailableGateway) ListCampaigns(context.Context) ([]advapi.Campaign, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) LoadCampaign(context.Context, string) (advapi.Campaign, error) {
	return advapi.Campaign{}, errUnavailable()
}

func (unavailableGateway) RenameCampaign(context.Context, string, string) error {
	return errUnavailable()
}

func (unavailableGateway) ListPlans(context.Context) ([]advapi.Plan, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) CreateCampaign(context.Context, advapi.NewCampaign) error {
	return errUnavailable()
}

func (unavailableGateway) LoadProfile(context.Context) (advapi.User, error) {
	return advapi.User{}, errUnavailable()
}

func errUnavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, advapi.KeyUnavailable, "campaign service is not configured")
}
