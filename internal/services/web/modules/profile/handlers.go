package profile

import (
	"context"
	"net/http"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/platform/weberror"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// Notice keys queued across profile redirects.
const (
	keyNameSaved       = "profile.notice.name_saved"
	keyWalletRecharged = "profile.notice.wallet_recharged"
)

// ViewerCache refreshes the app chrome after the advertiser changes.
type ViewerCache interface {
	Remember(ctx context.Context, r *http.Request, user advapi.User)
}

type handlers struct {
	modulehandler.Base
	service service
	viewers ViewerCache
}

func newHandlers(s service, base modulehandler.Base, viewers ViewerCache) handlers {
	return handlers{Base: base, service: s, viewers: viewers}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.load(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderProfile(w, r, http.StatusOK, profileView(user))
}

func (h handlers) handleName(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse name form: "+err.Error()))
		return
	}
	ctx := httpx.RequestContext(r)
	name, err := h.service.updateName(ctx, r.FormValue("name"))
	if err == nil {
		if h.viewers != nil {
			h.viewers.Remember(ctx, r, advapi.User{Name: name})
		}
		h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyNameSaved), routepath.Profile)
		return
	}
	h.renderFailure(w, r, err, func(view *webtemplates.ProfileView, warning string) {
		view.NameValue = r.FormValue("name")
		view.NameWarning = warning
	})
}

func (h handlers) handleWallet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse wallet form: "+err.Error()))
		return
	}
	err := h.service.recharge(httpx.RequestContext(r), r.FormValue("amount"))
	if err == nil {
		h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyWalletRecharged), routepath.Profile)
		return
	}
	h.renderFailure(w, r, err, func(view *webtemplates.ProfileView, warning string) {
		view.AmountValue = r.FormValue("amount")
		view.WalletWarning = warning
	})
}

// renderFailure re-renders the profile with a refetched card and the failed
// form's values. An expired session goes through the shared error writer.
func (h handlers) renderFailure(w http.ResponseWriter, r *http.Request, failure error, apply func(*webtemplates.ProfileView, string)) {
	if advapi.IsSessionExpired(failure) {
		h.WriteError(w, r, failure)
		return
	}
	user, err := h.service.load(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := profileView(user)
	if warning, ok := localWarning(failure); ok {
		apply(&view, warning)
		h.renderProfile(w, r, http.StatusBadRequest, view)
		return
	}
	apply(&view, "")
	loc, _ := h.PageLocalizer(r)
	view.ServerMessage = weberror.PublicMessage(loc, failure)
	status := apperrors.HTTPStatus(failure)
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	h.renderProfile(w, r, status, view)
}

func profileView(user advapi.User) webtemplates.ProfileView {
	return webtemplates.ProfileView{
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      user.Role,
		Wallet:    user.Wallet.Float(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		NameValue: user.Name,
	}
}

func (h handlers) renderProfile(w http.ResponseWriter, r *http.Request, status int, view webtemplates.ProfileView) {
	loc, _ := h.PageLocalizer(r)
	view.NameAction = routepath.ProfileName
	view.WalletAction = routepath.ProfileWallet
	h.WritePage(w, r, webtemplates.T(loc, "profile.heading"), status, webtemplates.ProfilePage(view, loc))
}
