// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/adreach/console/internal/services/web/module"
	apperrors "github.com/adreach/console/internal/services/web/platform/errors"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	webi18n "github.com/adreach/console/internal/services/web/platform/i18n"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message. Advertiser API text wins
// over the localized fallback.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if message, ok := apperrors.ServerMessage(err); ok {
		return message
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := webi18n.Text(loc, key, ""); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app-shell error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	writeShell(w, r, statusCode, webtemplates.AppErrorPageTitle(statusCode, loc), lang, loc, deps, webtemplates.AppErrorState(statusCode, loc))
}

// WriteLoadError renders a failed page load with a retry link to the same URL.
func WriteLoadError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	retryURL := ""
	if r != nil && r.URL != nil && r.Method == http.MethodGet {
		retryURL = r.URL.RequestURI()
	}
	fragment := webtemplates.LoadErrorState(PublicMessage(loc, err), retryURL, loc)
	writeShell(w, r, statusCode, webtemplates.T(loc, "errors.load_failed"), lang, loc, deps, fragment)
}

// WriteModuleError writes a module-safe localized error response. A rejected
// advertiser session is expired instead of rendered.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	if apperrors.IsKind(err, apperrors.KindUnauthorized) && deps.ExpireSession != nil {
		deps.ExpireSession(w, r)
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode == http.StatusNotFound {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	if ShouldRenderAppError(statusCode) {
		WriteLoadError(w, r, err, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func writeShell(w http.ResponseWriter, r *http.Request, statusCode int, title string, lang string, loc webi18n.Localizer, deps module.Dependencies, fragment templ.Component) {
	viewer := module.Viewer{}
	if deps.ResolveViewer != nil {
		viewer = deps.ResolveViewer(r)
	}
	options := webtemplates.LayoutOptions{
		Title: title,
		Lang:  lang,
		Loc:   loc,
		Viewer: webtemplates.ViewerChrome{
			AdvertiserID: viewer.AdvertiserID,
			DisplayName:  viewer.DisplayName,
			Phone:        viewer.Phone,
		},
	}
	if r != nil && r.URL != nil {
		options.CurrentPath = r.URL.Path
		options.CurrentQuery = r.URL.RawQuery
	}
	layout := webtemplates.AppLayout(options)
	if httpx.IsHTMXRequest(r) {
		layout = webtemplates.AppMainContent(options)
	}
	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}
