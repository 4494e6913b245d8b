// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules share common handler infrastructure for viewer resolution,
// localization, page rendering, redirects and error handling. Modules embed
// Base rather than duplicating it.
package modulehandler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	webi18n "github.com/adreach/console/internal/services/web/platform/i18n"
	"github.com/adreach/console/internal/services/web/platform/pagerender"
	"github.com/adreach/console/internal/services/web/platform/weberror"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with no-op resolvers suitable for tests
// that do not exercise viewer or language state.
func NewTestBase() Base {
	return Base{deps: module.Dependencies{
		ResolveUserID:   func(*http.Request) string { return "" },
		ResolveLanguage: func(*http.Request) string { return "" },
		ResolveViewer:   func(*http.Request) module.Viewer { return module.Viewer{} },
	}}
}

// Dependencies returns the module dependencies backing the base.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return b.deps.ResolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.deps.ResolveLanguage == nil {
		return ""
	}
	return b.deps.ResolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
// Language cookies are persisted by the page writer, not here.
func (b Base) PageLocalizer(r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(nil, r, b.deps.ResolveLanguage)
}

// RequestUserID extracts the signed-in advertiser id from the request.
func (b Base) RequestUserID(r *http.Request) string {
	if r == nil || b.deps.ResolveUserID == nil {
		return ""
	}
	return strings.TrimSpace(b.deps.ResolveUserID(r))
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// WritePage renders a full module page (HTMX-aware).
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WritePublicPage renders a page inside the public layout.
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WritePublicPage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// WriteRedirect writes an HTMX-aware redirect.
func (b Base) WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}

// WriteNoticeRedirect queues a flash notice and redirects.
func (b Base) WriteNoticeRedirect(w http.ResponseWriter, r *http.Request, notice flash.Notice, location string) {
	flash.WriteWithPolicy(w, r, notice, b.deps.RequestSchemePolicy)
	httpx.WriteRedirect(w, r, location)
}
