package publicauth

import (
	"context"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
)

// Challenge is the API answer to an OTP request.
type Challenge struct {
	Message string
	// OTP is only echoed by development deployments.
	OTP string
}

// AuthGateway abstracts the advertiser API login endpoints. Each call starts
// from the upstream cookies of the pending login and returns the cookies held
// afterwards.
type AuthGateway interface {
	RequestOTP(ctx context.Context, upstream advapi.Credentials, phone string) (Challenge, advapi.Credentials, error)
	VerifyOTP(ctx context.Context, upstream advapi.Credentials, phone string, otp string) (advapi.User, advapi.Credentials, error)
}

// NewAPIGateway builds the production gateway from the advertiser API client.
func NewAPIGateway(client *advapi.Client) AuthGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client *advapi.Client
}

func (g apiGateway) RequestOTP(ctx context.Context, upstream advapi.Credentials, phone string) (Challenge, advapi.Credentials, error) {
	session := g.client.Session(upstream)
	challenge, err := session.RequestOTP(ctx, phone)
	if err != nil {
		return Challenge{}, upstream, err
	}
	return Challenge{Message: challenge.Message, OTP: challenge.OTP}, session.Credentials(), nil
}

func (g apiGateway) VerifyOTP(ctx context.Context, upstream advapi.Credentials, phone string, otp string) (advapi.User, advapi.Credentials, error) {
	session := g.client.Session(upstream)
	user, err := session.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return advapi.User{}, upstream, err
	}
	return user, session.Credentials(), nil
}

type unavailableGateway struct{}

func (unavailableGateway) RequestOTP(context.Context, advapi.Credentials, string) (Challenge, advapi.Credentials, error) {
	return Challenge{}, advapi.Credentials{}, apperrors.EK(apperrors.KindUnavailable, advapi.KeyUnavailable, "login service is not configured")
}

func (unavailableGateway) VerifyOTP(context.Context, advapi.Credentials, string, string) (advapi.User, advapi.Credentials, error) {
	return advapi.User{}, advapi.Credentials{}, apperrors.EK(apperrors.KindUnavailable, advapi.KeyUnavailable, "login service is not configured")
}
