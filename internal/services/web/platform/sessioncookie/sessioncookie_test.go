package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adreach/console/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Session.Read(nil); ok {
		t.Fatalf("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Session.Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Session.Name, Value: "  ws-1  "})
	value, ok := Session.Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "ws-1" {
		t.Fatalf("value = %q, want %q", value, "ws-1")
	}
}

func TestWriteUsesTTLAndSchemePolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://app.example.test", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Flag.Write(rr, req, FlagValue, requestmeta.SchemePolicy{TrustForwardedProto: true})

	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != "login" || cookie.Value != "true" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if cookie.MaxAge != 7*24*60*60 {
		t.Fatalf("max age = %d, want seven days", cookie.MaxAge)
	}
	if !cookie.Secure {
		t.Fatalf("expected secure cookie behind trusted https proxy")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v, want Lax", cookie.SameSite)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	rr := httptest.NewRecorder()
	PendingLogin.Clear(rr, req, requestmeta.SchemePolicy{})

	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != PendingLogin.Name || cookie.MaxAge >= 0 {
		t.Fatalf("cookie = %+v, want expired %s", cookie, PendingLogin.Name)
	}
}

func TestHasFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "false", want: false},
		{value: "TRUE", want: false},
		{value: "", want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.value != "" {
			req.AddCookie(&http.Cookie{Name: Flag.Name, Value: tc.value})
		}
		if got := HasFlag(req); got != tc.want {
			t.Fatalf("HasFlag(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
