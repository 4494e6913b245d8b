// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/adreach/console/internal/services/web/module"
	flashnotice "github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	webi18n "github.com/adreach/console/internal/services/web/platform/i18n"
	webtemplates "github.com/adreach/console/internal/services/web/templates"
)

// RequestResolver resolves viewer and language state from a request.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared app-shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var resolveLanguage module.ResolveLanguage
	viewer := module.Viewer{}
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		viewer = resolver.ResolveRequestViewer(r)
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	options := layoutOptions(r, page.Title, lang, loc, viewer)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.AppMainContent(options).Render(ctx, &buf); err != nil {
			return err
		}
		writeHTML(w, statusCode, buf.Bytes())
		return nil
	}

	options.Toast = resolveFlashToast(w, r, loc)
	if err := webtemplates.AppLayout(options).Render(ctx, &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

// WritePublicPage writes a public (unauthenticated) page using the public layout.
func WritePublicPage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	options := layoutOptions(r, page.Title, lang, loc, module.Viewer{})
	options.Toast = resolveFlashToast(w, r, loc)

	var buf bytes.Buffer
	if err := webtemplates.PublicLayout(options).Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

func layoutOptions(r *http.Request, title string, lang string, loc webi18n.Localizer, viewer module.Viewer) webtemplates.LayoutOptions {
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
	return options
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.AppToast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(notice.Message)
	if message == "" {
		message = webi18n.Text(loc, notice.Key, notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.AppToast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
