package campaigns

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/weberror"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

func (h handlers) handleDetailsIndex(w http.ResponseWriter, r *http.Request) {
	h.WriteRedirect(w, r, routepath.Campaigns)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request, campaignID string) {
	campaign, err := h.service.loadCampaign(httpx.RequestContext(r), campaignID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderDetail(w, r, http.StatusOK, h.detailView(r, campaignID, campaign))
}

func (h handlers) handleRename(w http.ResponseWriter, r *http.Request, campaignID string) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse rename form: "+err.Error()))
		return
	}
	ctx := httpx.RequestContext(r)
	name := r.FormValue("name")
	renameErr := h.service.rename(ctx, campaignID, name)
	if renameErr == nil {
		h.WriteNoticeRedirect(w, r, flash.NoticeSuccess(keyRenamed), routepath.CampaignDetails(campaignID))
		return
	}
	if advapi.IsSessionExpired(renameErr) {
		h.WriteError(w, r, renameErr)
		return
	}
	campaign, err := h.service.loadCampaign(ctx, campaignID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := h.detailView(r, campaignID, campaign)
	view.NameValue = name
	if apperrors.LocalizationKey(renameErr) == keyNameRequired {
		view.WarningKey = keyNameRequired
		h.renderDetail(w, r, http.StatusBadRequest, view)
		return
	}
	loc, _ := h.PageLocalizer(r)
	view.ServerMessage = weberror.PublicMessage(loc, renameErr)
	h.renderDetail(w, r, failureStatus(renameErr), view)
}

func (h handlers) detailView(r *http.Request, campaignID string, campaign advapi.Campaign) webtemplates.CampaignDetailView {
	if campaign.ID == "" {
		campaign.ID = campaignID
	}
	backURL := routepath.Campaigns
	if advertiserID := h.RequestUserID(r); advertiserID != "" {
		backURL = routepath.CampaignList(advertiserID)
	}
	return webtemplates.CampaignDetailView{
		Campaign:       campaignRow(campaign),
		PackageName:    campaign.PackageName,
		Target:         campaign.Target.Float(),
		Installs:       campaign.InstallsCount.Float(),
		InstallPercent: webtemplates.InstallPercent(campaign.InstallsCount.Float(), campaign.Target.Float()),
		Reviews:        campaign.ReviewCount.Float(),
		CostPerInstall: campaign.CostPerInstall.Float(),
		CampDay:        campaign.CampDay.Float(),
		CreatedAt:      campaign.CreatedAt,
		UpdatedAt:      campaign.UpdatedAt,
		RenameAction:   routepath.CampaignRename(campaign.ID),
		NameValue:      campaign.Name,
		BackURL:        backURL,
	}
}

func (h handlers) renderDetail(w http.ResponseWriter, r *http.Request, status int, view webtemplates.CampaignDetailView) {
	loc, _ := h.PageLocalizer(r)
	h.WritePage(w, r, view.Campaign.Name, status, webtemplates.CampaignDetailPage(view, loc))
}

// failureStatus maps a failed form submission to its response status.
func failureStatus(err error) int {
	status := apperrors.HTTPStatus(err)
	if status < http.StatusBadRequest {
		return http.StatusBadGateway
	}
	return status
}
