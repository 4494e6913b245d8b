package publicauth

import (
	"context"
	"net/http"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/modules/publicauth/otpflow"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
	"github.com/adreach/console/internal/services/web/platform/sessioncookie"
	"github.com/adreach/console/internal/services/web/platform/weberror"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// Notice keys queued across login redirects.
const (
	keyOTPSent      = "auth.notice.otp_sent"
	keyLoginSuccess = "auth.notice.login_success"
	keyLoggedOut    = "auth.notice.logged_out"
)

// SessionManager is the session guard contract used by login routes.
type SessionManager interface {
	IsAuthenticated(*http.Request) bool
	Login(ctx context.Context, w http.ResponseWriter, r *http.Request, user advapi.User, upstream advapi.Credentials) error
	Logout(ctx context.Context, w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	modulehandler.Base
	service  service
	sessions SessionManager
	policy   requestmeta.SchemePolicy
}

func newHandlers(s service, base modulehandler.Base, sessions SessionManager, policy requestmeta.SchemePolicy) handlers {
	if sessions == nil {
		sessions = noSessions{}
	}
	return handlers{Base: base, service: s, sessions: sessions, policy: policy}
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated(r) {
		h.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	id, _ := sessioncookie.PendingLogin.Read(r)
	pending, ok := h.service.lookup(id)
	if !ok {
		if id != "" {
			sessioncookie.PendingLogin.Clear(w, r, h.policy)
		}
		h.renderLogin(w, r, http.StatusOK, webtemplates.LoginView{Step: webtemplates.LoginStepPhone})
		return
	}
	h.renderLogin(w, r, http.StatusOK, h.stepView(pending.State, pending.OTP))
}

func (h handlers) handlePhoneSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, webtemplates.LoginView{Step: webtemplates.LoginStepPhone, WarningKey: otpflow.KeyInvalidPhone})
		return
	}
	previousID, _ := sessioncookie.PendingLogin.Read(r)
	result, err := h.service.submitPhone(httpx.RequestContext(r), previousID, r.FormValue("phone"))
	if err != nil {
		view := webtemplates.LoginView{Step: webtemplates.LoginStepPhone, Phone: result.State.Phone}
		h.renderFailure(w, r, view, err)
		return
	}
	if result.Effect.Kind == otpflow.EffectReject {
		h.renderLogin(w, r, http.StatusBadRequest, webtemplates.LoginView{
			Step:       webtemplates.LoginStepPhone,
			Phone:      result.State.Phone,
			WarningKey: result.Effect.Key,
		})
		return
	}
	sessioncookie.PendingLogin.Write(w, r, result.PendingID, h.policy)
	h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyOTPSent), routepath.Login)
}

func (h handlers) handleVerify(w http.ResponseWriter, r *http.Request) {
	id, _ := sessioncookie.PendingLogin.Read(r)
	otp := ""
	if err := r.ParseForm(); err == nil {
		otp = r.FormValue("otp")
	}
	result, err := h.service.verify(httpx.RequestContext(r), id, otp)
	if err != nil {
		view := h.stepView(result.State, "")
		view.OTP = otp
		h.renderFailure(w, r, view, err)
		return
	}
	switch result.Effect.Kind {
	case otpflow.EffectReject:
		if result.Effect.Key == otpflow.KeyNoPending {
			h.restart(w, r)
			return
		}
		view := h.stepView(result.State, "")
		view.OTP = otp
		view.WarningKey = result.Effect.Key
		h.renderLogin(w, r, http.StatusBadRequest, view)
		return
	case otpflow.EffectVerifyOTP:
	default:
		h.restart(w, r)
		return
	}
	if err := h.sessions.Login(httpx.RequestContext(r), w, r, result.User, result.Upstream); err != nil {
		h.renderFailure(w, r, h.stepView(result.State, ""), apperrors.EK(apperrors.KindUnavailable, "auth.error.session_store", err.Error()))
		return
	}
	sessioncookie.PendingLogin.Clear(w, r, h.policy)
	h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyLoginSuccess), routepath.Dashboard)
}

func (h handlers) handleResend(w http.ResponseWriter, r *http.Request) {
	id, _ := sessioncookie.PendingLogin.Read(r)
	result, err := h.service.resend(httpx.RequestContext(r), id)
	if err != nil {
		h.renderFailure(w, r, h.stepView(result.State, result.OTP), err)
		return
	}
	switch result.Effect.Kind {
	case otpflow.EffectWait:
		view := h.stepView(result.State, result.OTP)
		view.InfoKey = result.Effect.Key
		h.renderLogin(w, r, http.StatusOK, view)
	case otpflow.EffectRequestOTP:
		h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyOTPSent), routepath.Login)
	default:
		h.restart(w, r)
	}
}

func (h handlers) handleChangePhone(w http.ResponseWriter, r *http.Request) {
	if id, ok := sessioncookie.PendingLogin.Read(r); ok {
		h.service.changePhone(id)
	}
	h.WriteRedirect(w, r, routepath.Login)
}

// handleLogout requires same-origin proof even without a session cookie so a
// cross-site form cannot drop the login flag.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	h.sessions.Logout(httpx.RequestContext(r), w, r)
	h.WriteNoticeRedirect(w, r, flash.Notice{Kind: flash.KindInfo, Key: keyLoggedOut}, routepath.Login)
}

// restart drops a pending login that expired and returns to phone entry.
func (h handlers) restart(w http.ResponseWriter, r *http.Request) {
	sessioncookie.PendingLogin.Clear(w, r, h.policy)
	h.WriteNoticeRedirect(w, r, flash.Notice{Kind: flash.KindWarning, Key: otpflow.KeyNoPending}, routepath.Login)
}

func (h handlers) stepView(state otpflow.State, otp string) webtemplates.LoginView {
	if state.Step != otpflow.StepOTP {
		return webtemplates.LoginView{Step: webtemplates.LoginStepPhone, Phone: state.Phone}
	}
	return webtemplates.LoginView{
		Step:              webtemplates.LoginStepOTP,
		Phone:             state.Phone,
		OTP:               otp,
		ResendAvailableIn: h.service.resendIn(state),
	}
}

func (h handlers) renderFailure(w http.ResponseWriter, r *http.Request, view webtemplates.LoginView, err error) {
	loc, _ := h.PageLocalizer(r)
	view.ServerMessage = weberror.PublicMessage(loc, err)
	status := apperrors.HTTPStatus(err)
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	h.renderLogin(w, r, status, view)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view webtemplates.LoginView) {
	loc, _ := h.PageLocalizer(r)
	view.PhoneAction = routepath.LoginOTP
	view.VerifyAction = routepath.LoginVerify
	view.ResendAction = routepath.LoginResend
	view.ChangePhoneAction = routepath.LoginChangePhone
	h.WritePublicPage(w, r, webtemplates.T(loc, "auth.heading"), status, webtemplates.LoginPage(view, loc))
}

type noSessions struct{}

func (noSessions) IsAuthenticated(*http.Request) bool { return false }

func (noSessions) Login(context.Context, http.ResponseWriter, *http.Request, advapi.User, advapi.Credentials) error {
	return apperrors.E(apperrors.KindUnavailable, "session guard is not configured")
}

func (noSessions) Logout(context.Context, http.ResponseWriter, *http.Request) {}
