package profile

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// ProfileGateway loads and updates the signed-in advertiser.
type ProfileGateway interface {
	LoadProfile(context.Context) (advapi.User, error)
	UpdateName(ctx context.Context, name string) error
	RechargeWallet(ctx context.Context, amount float64) error
}

// NewAPIGateway builds the production profile gateway from the advertiser API client.
func NewAPIGateway(client *advapi.Client) ProfileGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client *advapi.Client
}

func (g apiGateway) LoadProfile(ctx context.Context) (advapi.User, error) {
	return g.client.From(ctx).Profile(ctx)
}

func (g apiGateway) UpdateName(ctx context.Context, name string) error {
	return g.client.From(ctx).UpdateName(ctx, name)
}

func (g apiGateway) RechargeWallet(ctx context.Context, amount float64) error {
	return g.client.From(ctx).RechargeWallet(ctx, amount)
}

type unavailableGateway struct{}

func (unavailableGateway) LoadProfile(context.Context) (advapi.User, error) {
	return advapi.User{}, errUnavailable()
}

func (unavailableGateway) UpdateName(context.Context, string) error {
	return errUnavailable()
}

func (unavailableGateway) RechargeWallet(context.Context, float64) error {
	return errUnavailable()
}

func errUnavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, advapi.KeyUnavailable, "profile service is not configured")
}
