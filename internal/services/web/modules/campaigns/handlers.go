package campaigns

import (
	"net/http"
	"strings"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// Notice keys queued across campaign redirects.
const (
	keyCreated = "campaigns.notice.created"
	keyRenamed = "campaigns.notice.renamed"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// withAdvertiserID resolves the {advertiserID} path value.
func (h handlers) withAdvertiserID(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID := strings.TrimSpace(r.PathValue("advertiserID"))
		if advertiserID == "" {
			h.WriteNotFound(w, r)
			return
		}
		fn(w, r, advertiserID)
	}
}

// withCampaignID resolves the {campaignID} path value.
func (h handlers) withCampaignID(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := strings.TrimSpace(r.PathValue("campaignID"))
		if campaignID == "" {
			h.WriteNotFound(w, r)
			return
		}
		fn(w, r, campaignID)
	}
}

// handleIndex sends the browser to the signed-in advertiser's list.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	advertiserID, err := h.service.advertiserID(httpx.RequestContext(r), h.RequestUserID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WriteRedirect(w, r, routepath.CampaignList(advertiserID))
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request, advertiserID string) {
	campaigns, err := h.service.listCampaigns(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.CampaignListView{
		Campaigns:  make([]webtemplates.CampaignRow, 0, len(campaigns)),
		NewURL:     routepath.CampaignNew(advertiserID),
		RefreshURL: routepath.CampaignList(advertiserID),
	}
	for _, campaign := range campaigns {
		view.Campaigns = append(view.Campaigns, campaignRow(campaign))
	}
	h.WritePage(w, r, webtemplates.T(loc, "campaigns.heading"), http.StatusOK, webtemplates.CampaignListPage(view, loc))
}

func campaignRow(campaign advapi.Campaign) webtemplates.CampaignRow {
	return webtemplates.CampaignRow{
		ID:            campaign.ID,
		Name:          campaign.Name,
		Type:          strings.ToUpper(campaign.Type),
		Status:        campaign.Status,
		PackageName:   campaign.PackageName,
		AppLogo:       campaign.AppLogo,
		BudgetTotal:   campaign.BudgetTotal.Float(),
		BudgetSpent:   campaign.BudgetSpent.Float(),
		BudgetPercent: webtemplates.BudgetPercent(campaign.BudgetSpent.Float(), campaign.BudgetTotal.Float()),
		DetailURL:     routepath.CampaignDetails(campaign.ID),
	}
}
