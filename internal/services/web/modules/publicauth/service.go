package publicauth

import (
	"context"
	"strings"
	"time"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/modules/publicauth/otpflow"
	"github.com/adreach/console/internal/services/web/platform/sessioncookie"
	"github.com/adreach/console/internal/services/web/platform/ttlstore"
	"github.com/google/uuid"
)

// pendingLogin is an OTP login in progress, keyed by the adv_otp cookie.
type pendingLogin struct {
	State    otpflow.State
	Upstream advapi.Credentials
	// OTP is the echoed code, kept only when dev prefill is on.
	OTP string
}

// outcome is the result of one login step.
type outcome struct {
	PendingID string
	State     otpflow.State
	Effect    otpflow.Effect
	OTP       string
	User      advapi.User
	Upstream  advapi.Credentials
}

type service struct {
	auth       AuthGateway
	pending    *ttlstore.Store[pendingLogin]
	devPrefill bool
	now        func() time.Time
	newID      func() string
}

func newService(gateway AuthGateway, devPrefill bool) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{
		auth:       gateway,
		pending:    ttlstore.New[pendingLogin](sessioncookie.PendingLogin.MaxAge),
		devPrefill: devPrefill,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// lookup returns the pending login behind id.
func (s service) lookup(id string) (pendingLogin, bool) {
	if strings.TrimSpace(id) == "" {
		return pendingLogin{}, false
	}
	return s.pending.Get(id)
}

// submitPhone validates phone and requests an OTP. A rejected phone makes no
// upstream call. The previous pending login, if any, is replaced.
func (s service) submitPhone(ctx context.Context, previousID string, phone string) (outcome, error) {
	state, effect := otpflow.Transition(otpflow.State{}, otpflow.Event{Kind: otpflow.EventSubmitPhone, Phone: phone})
	result := outcome{State: state, Effect: effect}
	if effect.Kind != otpflow.EffectRequestOTP {
		return result, nil
	}
	challenge, upstream, err := s.auth.RequestOTP(ctx, advapi.Credentials{}, effect.Phone)
	if err != nil {
		return result, err
	}
	state, _ = otpflow.Transition(state, otpflow.Event{Kind: otpflow.EventOTPSent, At: s.now()})
	if previousID != "" {
		s.pending.Delete(previousID)
	}
	result.PendingID = s.newID()
	result.State = state
	result.OTP = s.prefill(challenge.OTP)
	s.pending.Put(result.PendingID, pendingLogin{State: state, Upstream: upstream, OTP: result.OTP})
	return result, nil
}

// verify checks otp locally, then exchanges it for an upstream session.
func (s service) verify(ctx context.Context, id string, otp string) (outcome, error) {
	current, _ := s.lookup(id)
	state, effect := otpflow.Transition(current.State, otpflow.Event{Kind: otpflow.EventSubmitOTP, OTP: otp})
	result := outcome{PendingID: id, State: state, Effect: effect, OTP: current.OTP}
	if effect.Kind != otpflow.EffectVerifyOTP {
		return result, nil
	}
	user, upstream, err := s.auth.VerifyOTP(ctx, current.Upstream, effect.Phone, effect.OTP)
	if err != nil {
		return result, err
	}
	result.State, _ = otpflow.Transition(state, otpflow.Event{Kind: otpflow.EventVerified})
	result.User = user
	result.Upstream = upstream
	s.pending.Delete(id)
	return result, nil
}

// resend requests a new OTP once the countdown elapsed.
func (s service) resend(ctx context.Context, id string) (outcome, error) {
	current, _ := s.lookup(id)
	now := s.now()
	state, effect := otpflow.Transition(current.State, otpflow.Event{Kind: otpflow.EventResend, At: now})
	result := outcome{PendingID: id, State: state, Effect: effect, OTP: current.OTP}
	if effect.Kind != otpflow.EffectRequestOTP {
		return result, nil
	}
	challenge, upstream, err := s.auth.RequestOTP(ctx, current.Upstream, effect.Phone)
	if err != nil {
		return result, err
	}
	state, _ = otpflow.Transition(state, otpflow.Event{Kind: otpflow.EventOTPSent, At: now})
	result.State = state
	result.OTP = s.prefill(challenge.OTP)
	s.pending.Put(id, pendingLogin{State: state, Upstream: upstream, OTP: result.OTP})
	return result, nil
}

// changePhone moves the pending login back to phone entry, keeping the number.
func (s service) changePhone(id string) {
	current, ok := s.lookup(id)
	if !ok {
		return
	}
	state, _ := otpflow.Transition(current.State, otpflow.Event{Kind: otpflow.EventChangePhone})
	s.pending.Put(id, pendingLogin{State: state})
}

func (s service) resendIn(state otpflow.State) int {
	return otpflow.ResendIn(state, s.now())
}

func (s service) prefill(otp string) string {
	if !s.devPrefill {
		return ""
	}
	return strings.TrimSpace(otp)
}
