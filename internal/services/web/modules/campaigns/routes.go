package campaigns

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/routepath"
)

func registerListRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Campaigns, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignListPattern, h.withAdvertiserID(h.handleList))

	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignNewPattern, h.withAdvertiserID(h.handleWizard))
	mux.HandleFunc(http.MethodPost+" "+routepath.CampaignNewPattern, h.withAdvertiserID(h.handleWizardDetails))
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignNewPlanPattern, h.withAdvertiserID(h.handleWizardPlan))
	mux.HandleFunc(http.MethodPost+" "+routepath.CampaignNewPlanPattern, h.withAdvertiserID(h.handleWizardSubmit))
	mux.HandleFunc(http.MethodPost+" "+routepath.CampaignNewBackPattern, h.withAdvertiserID(h.handleWizardBack))
	mux.HandleFunc(http.MethodPost+" "+routepath.CampaignNewCancelPattern, h.withAdvertiserID(h.handleWizardCancel))

	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignsPrefix+"{advertiserID}/{rest...}", h.WriteNotFound)
}

func registerDetailRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignDetailsRoot, h.handleDetailsIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignDetailsPrefix+"{$}", h.handleDetailsIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignDetailsPattern, h.withCampaignID(h.handleDetail))
	mux.HandleFunc(http.MethodPost+" "+routepath.CampaignRenamePattern, h.withCampaignID(h.handleRename))

	mux.HandleFunc(http.MethodGet+" "+routepath.CampaignDetailsPrefix+"{campaignID}/{rest...}", h.WriteNotFound)
}
