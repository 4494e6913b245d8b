package dashboard

import (
	"net/http"
	"slices"
	"strings"

	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/routepath"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r.URL.Query())
	report, err := h.service.loadAnalytics(httpx.RequestContext(r), filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(r)
	view := dashboardView(report, loc)
	view.Action = routepath.Dashboard
	view.ResetURL = routepath.Dashboard
	view.Filters = filterView(filter, loc)
	view.Chips = filterChips(filter, loc)
	h.WritePage(w, r, webtemplates.T(loc, "dashboard.heading"), http.StatusOK, webtemplates.DashboardPage(view, loc))
}

func (h handlers) handleSection(w http.ResponseWriter, r *http.Request) {
	section := strings.TrimSpace(r.PathValue("section"))
	if !slices.Contains(routepath.Sections, section) {
		h.WriteNotFound(w, r)
		return
	}
	loc, _ := h.PageLocalizer(r)
	titleKey := "core.nav." + section
	h.WritePage(w, r, webtemplates.T(loc, titleKey), http.StatusOK, webtemplates.SectionPage(webtemplates.SectionView{Section: section, TitleKey: titleKey}, loc))
}
