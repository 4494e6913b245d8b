package advapi

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/go-resty/resty/v2"
)

// Auth endpoint paths.
const (
	PathLogIn          = "/adv/auth/logIn"
	PathVerifyOTP      = "/adv/auth/verifyOtp"
	PathLogOut         = "/adv/auth/logOut"
	PathProfile        = "/adv/auth/profile"
	PathProfileUpdate  = "/adv/auth/profile/update"
	PathWalletRecharge = "/adv/auth/wallet/recharge"
)

// RequestOTP asks the API to send a one-time password to phone.
func (s *Session) RequestOTP(ctx context.Context, phone string) (OTPChallenge, error) {
	env, err := s.do(ctx, call{name: "request_otp", method: http.MethodPost, path: PathLogIn}, func(r *resty.Request) *resty.Request {
		return r.SetBody(map[string]string{"phone": phone})
	})
	if err != nil {
		return OTPChallenge{}, err
	}
	return OTPChallenge{Message: env.messageText(), OTP: rawString(env.OTP)}, nil
}

// VerifyOTP exchanges phone and otp for an authenticated upstream session.
func (s *Session) VerifyOTP(ctx context.Context, phone string, otp string) (User, error) {
	env, err := s.do(ctx, call{name: "verify_otp", method: http.MethodPost, path: PathVerifyOTP}, func(r *resty.Request) *resty.Request {
		return r.SetBody(map[string]string{"phone": phone, "otp": otp})
	})
	if err != nil {
		return User{}, err
	}
	var user User
	if len(env.User) > 0 {
		if err := decodeData(env.User, &user); err != nil {
			return User{}, err
		}
	}
	if strings.TrimSpace(user.Phone) == "" {
		user.Phone = phone
	}
	return user, nil
}

// LogOut invalidates the upstream session.
func (s *Session) LogOut(ctx context.Context) error {
	_, err := s.do(ctx, call{name: "log_out", method: http.MethodPost, path: PathLogOut}, nil)
	return err
}

// Profile loads the signed-in advertiser. The API returns it under "message".
func (s *Session) Profile(ctx context.Context) (User, error) {
	env, err := s.do(ctx, call{name: "profile", method: http.MethodGet, path: PathProfile}, nil)
	if err != nil {
		return User{}, err
	}
	raw := env.Message
	if len(raw) == 0 || raw[0] != '{' {
		raw = env.Data
	}
	var user User
	if err := decodeData(raw, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateName renames the signed-in advertiser.
func (s *Session) UpdateName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.E(apperrors.KindInvalidInput, "name is required")
	}
	_, err := s.do(ctx, call{name: "update_profile", method: http.MethodPut, path: PathProfileUpdate}, func(r *resty.Request) *resty.Request {
		return r.SetBody(map[string]string{"name": name})
	})
	return err
}

// RechargeWallet adds amount rupees to the advertiser wallet.
func (s *Session) RechargeWallet(ctx context.Context, amount float64) error {
	if amount <= 0 {
		return apperrors.E(apperrors.KindInvalidInput, "amount must be positive")
	}
	_, err := s.do(ctx, call{name: "recharge_wallet", method: http.MethodPut, path: PathWalletRecharge}, func(r *resty.Request) *resty.Request {
		return r.SetBody(map[string]float64{"amount": amount})
	})
	return err
}
