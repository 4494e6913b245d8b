// Package sessioncookie centralizes the browser cookies that carry session state.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/adreach/console/internal/services/web/platform/requestmeta"
)

// SessionTTL is the lifetime of a signed-in browser session.
const SessionTTL = 7 * 24 * time.Hour

// FlagValue is the only value of the login flag that counts as signed in.
const FlagValue = "true"

// Cookie describes one named cookie and its lifetime.
type Cookie struct {
	Name   string
	MaxAge time.Duration
}

var (
	// Flag is the boolean signed-in marker checked by the route guard.
	Flag = Cookie{Name: "login", MaxAge: SessionTTL}
	// Session carries the opaque handle of the server-side session record.
	Session = Cookie{Name: "adv_session", MaxAge: SessionTTL}
	// PendingLogin carries the handle of an OTP login in progress.
	PendingLogin = Cookie{Name: "adv_otp", MaxAge: 10 * time.Minute}
)

// Read returns the trimmed cookie value when present.
func (c Cookie) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(c.Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the cookie for the current request context.
func (c Cookie) Write(w http.ResponseWriter, r *http.Request, value string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie.
func (c Cookie) Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// HasFlag reports whether the request carries login=true.
func HasFlag(r *http.Request) bool {
	value, ok := Flag.Read(r)
	return ok && value == FlagValue
}
