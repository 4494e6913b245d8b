package publicauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	"github.com/adreach/console/internal/services/web/platform/modulehandler"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
)

// fakeGateway records login calls and returns canned answers.
type fakeGateway struct {
	mu          sync.Mutex
	requestErr  error
	verifyErr   error
	echoedOTP   string
	user        advapi.User
	requested   []string
	verified    []string
	lastCookies advapi.Credentials
}

func (f *fakeGateway) RequestOTP(_ context.Context, upstream advapi.Credentials, phone string) (Challenge, advapi.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested = append(f.requested, phone)
	if f.requestErr != nil {
		return Challenge{}, upstream, f.requestErr
	}
	return Challenge{Message: "OTP sent", OTP: f.echoedOTP}, advapi.Credentials{Cookies: []advapi.Cookie{{Name: "otp_session", Value: phone}}}, nil
}

func (f *fakeGateway) VerifyOTP(_ context.Context, upstream advapi.Credentials, phone string, otp string) (advapi.User, advapi.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verified = append(f.verified, phone+":"+otp)
	f.lastCookies = upstream
	if f.verifyErr != nil {
		return advapi.User{}, upstream, f.verifyErr
	}
	user := f.user
	if user.ID == "" {
		user = advapi.User{ID: "adv-1", Name: "Asha", Phone: phone}
	}
	return user, advapi.Credentials{Cookies: []advapi.Cookie{{Name: "token", Value: "signed-in"}}}, nil
}

func (f *fakeGateway) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requested)
}

func (f *fakeGateway) verifyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.verified)
}

// fakeSessions mimics the session guard with the login flag cookie.
type fakeSessions struct {
	loginErr  error
	loggedIn  []advapi.User
	upstream  advapi.Credentials
	loggedOut int
}

func (f *fakeSessions) IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie("login")
	return err == nil && cookie.Value == "true"
}

func (f *fakeSessions) Login(_ context.Context, w http.ResponseWriter, _ *http.Request, user advapi.User, upstream advapi.Credentials) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = append(f.loggedIn, user)
	f.upstream = upstream
	http.SetCookie(w, &http.Cookie{Name: "login", Value: "true", Path: "/"})
	return nil
}

func (f *fakeSessions) Logout(_ context.Context, w http.ResponseWriter, _ *http.Request) {
	f.loggedOut++
	http.SetCookie(w, &http.Cookie{Name: "login", Value: "", Path: "/", MaxAge: -1})
}

// loginHarness serves login routes with a controllable clock and carries
// cookies between requests like a browser.
type loginHarness struct {
	mux      *http.ServeMux
	gateway  *fakeGateway
	sessions *fakeSessions
	now      time.Time
	cookies  map[string]*http.Cookie
}

func newLoginHarness(gateway *fakeGateway, devPrefill bool) *loginHarness {
	h := &loginHarness{
		mux:      http.NewServeMux(),
		gateway:  gateway,
		sessions: &fakeSessions{},
		now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		cookies:  map[string]*http.Cookie{},
	}
	svc := newService(gateway, devPrefill)
	svc.now = func() time.Time { return h.now }
	ids := 0
	svc.newID = func() string {
		ids++
		return "pending-" + string(rune('0'+ids))
	}
	handlers := newHandlers(svc, modulehandler.NewTestBase(), h.sessions, requestmeta.SchemePolicy{})
	registerRoutes(h.mux, handlers)
	registerLogoutRoutes(h.mux, handlers)
	return h
}

func (h *loginHarness) do(method string, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if method != http.MethodGet && method != http.MethodHead {
		req.Header.Set("Origin", "http://example.com")
	}
	for _, cookie := range h.cookies {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.mux.ServeHTTP(rr, req)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			delete(h.cookies, cookie.Name)
			continue
		}
		h.cookies[cookie.Name] = cookie
	}
	return rr
}
