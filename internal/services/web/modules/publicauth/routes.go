package publicauth

import (
	"net/http"

	"github.com/adreach/console/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.LoginPrefix+"{$}", h.handleLoginGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.LoginOTP, h.handlePhoneSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.LoginVerify, h.handleVerify)
	mux.HandleFunc(http.MethodPost+" "+routepath.LoginResend, h.handleResend)
	mux.HandleFunc(http.MethodPost+" "+routepath.LoginChangePhone, h.handleChangePhone)
	mux.HandleFunc(http.MethodGet+" "+routepath.LoginPrefix+"{rest...}", func(w http.ResponseWriter, r *http.Request) {
		h.WriteRedirect(w, r, routepath.Login)
	})
}

func registerLogoutRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
}
