package dashboard

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SectionPattern, h.handleSection)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{section}/{rest...}", h.WriteNotFound)
}
