package plans

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PlanList, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PlanList+"/{$}", h.handleIndex)
	mux.HandleFunc(routepath.PlanList+"/{rest...}", h.WriteNotFound)
}
