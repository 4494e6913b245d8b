package plans

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	gateway PlanGateway
}

func newHandlers(gateway PlanGateway, base modulehandler.Base) handlers {
	return handlers{Base: base, gateway: gateway}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	plans, err := h.gateway.ListPlans(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.PlanListView{Plans: planRows(plans, h.RequestUserID(r))}
	h.WritePage(w, r, webtemplates.T(loc, "plans.heading"), http.StatusOK, webtemplates.PlanListPage(view, loc))
}

// planRows links every plan to the wizard of the signed-in advertiser.
func planRows(plans []advapi.Plan, advertiserID string) []webtemplates.PlanRow {
	rows := make([]webtemplates.PlanRow, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, webtemplates.PlanRow{
			ID:        plan.ID,
			Type:      plan.PlanType,
			Amount:    plan.PlanAmount.Float(),
			Installs:  plan.Installs.Float(),
			WizardURL: routepath.CampaignNewWithPlan(advertiserID, plan.ID),
		})
	}
	return rows
}
