package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/adreach/console/internal/services/web/module"
	flashnotice "github.com/adreach/console/internal/services/web/platform/flash"
)

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile-page", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:      "Profile",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile-page", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:      "Profile",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main"`, `id="fragment-root"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageRendersToastFromFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile-page", nil)
	setFlashCookie(t, req, flashnotice.NoticeSuccess("profile.notice.name_saved"))
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:    "Profile",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	for _, marker := range []string{`data-toast`, `Name updated successfully`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if !responseHasCookieName(rr, flashnotice.CookieName) {
		t.Fatalf("response missing %q clear cookie", flashnotice.CookieName)
	}
}

func TestWriteModulePageHTMXDoesNotConsumeFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile-page", nil)
	req.Header.Set("HX-Request", "true")
	setFlashCookie(t, req, flashnotice.NoticeSuccess("profile.notice.name_saved"))
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:    "Profile",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if strings.Contains(body, `data-toast`) {
		t.Fatalf("htmx body unexpectedly contains toast markup: %q", body)
	}
	if responseHasCookieName(rr, flashnotice.CookieName) {
		t.Fatalf("htmx response unexpectedly set %q cookie", flashnotice.CookieName)
	}
}

func TestWriteModulePageShowsServerMessageToastVerbatim(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	setFlashCookie(t, req, flashnotice.Notice{Kind: flashnotice.KindError, Key: "error.api_failed", Message: "Wallet balance is low"})
	rr := httptest.NewRecorder()

	if err := WriteModulePage(rr, req, nil, ModulePage{Title: "Dashboard"}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Wallet balance is low") {
		t.Fatalf("body missing server message: %q", body)
	}
	if !strings.Contains(body, "toast-error") {
		t.Fatalf("body missing error toast class: %q", body)
	}
}

func TestWriteModulePageRendersViewerChrome(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, stubResolver{viewer: module.Viewer{AdvertiserID: "adv-1", DisplayName: "Asha"}}, ModulePage{Title: "Dashboard"})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	for _, marker := range []string{"Asha", `href="/dashboard/campaigns/adv-1"`, `action="/logout"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWritePublicPageUsesPublicLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr := httptest.NewRecorder()

	err := WritePublicPage(rr, req, nil, ModulePage{
		Title:    "Sign in",
		Fragment: textComponent(`<section id="login-root"></section>`),
	})
	if err != nil {
		t.Fatalf("WritePublicPage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="login-root"`) {
		t.Fatalf("body missing fragment: %q", body)
	}
	if strings.Contains(body, `action="/logout"`) {
		t.Fatalf("public layout must not render the logout form: %q", body)
	}
}

type stubResolver struct {
	viewer module.Viewer
	lang   string
}

func (s stubResolver) ResolveRequestViewer(*http.Request) module.Viewer { return s.viewer }

func (s stubResolver) ResolveRequestLanguage(*http.Request) string { return s.lang }

func setFlashCookie(t *testing.T, req *http.Request, notice flashnotice.Notice) {
	t.Helper()
	seed := httptest.NewRecorder()
	flashnotice.Write(seed, req, notice)
	setCookieHeader := strings.TrimSpace(seed.Header().Get("Set-Cookie"))
	if setCookieHeader == "" {
		t.Fatalf("expected flash cookie header")
	}
	cookie, err := http.ParseSetCookie(setCookieHeader)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)
}

func responseHasCookieName(rr *httptest.ResponseRecorder, name string) bool {
	if rr == nil {
		return false
	}
	for _, cookie := range rr.Result().Cookies() {
		if cookie != nil && cookie.Name == name {
			return true
		}
	}
	return false
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}
