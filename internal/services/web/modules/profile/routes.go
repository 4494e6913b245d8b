package profile

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileName, h.handleName)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileWallet, h.handleWallet)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{rest...}", h.WriteNotFound)
}
